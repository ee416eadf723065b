package config

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported values for DBDRIVER.
const (
	DriverSQLServer = "sqlserver"
	DriverMySQL     = "mysql"
)

// Dialector builds the gorm dialector for the configured driver.
// Under APPENV=test it returns a private in-memory sqlite database instead.
func Dialector(cfg *Config) (gorm.Dialector, error) {
	if cfg.IsTest() {
		// Shared cache keeps every pooled connection on the same in-memory database.
		dsn := fmt.Sprintf("file:geresapi_%d?mode=memory&cache=shared", time.Now().UnixNano())
		return sqlite.Open(dsn), nil
	}

	if cfg.DBHost == "" || cfg.DBName == "" || cfg.DBUSER == "" {
		return nil, fmt.Errorf("incomplete database configuration: DBHOST, DBNAME and DBUSER are required")
	}

	switch cfg.DBDriver {
	case DriverSQLServer:
		return sqlserver.Open(SQLServerDSN(cfg)), nil
	case DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUSER, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DBDRIVER %q", cfg.DBDriver)
	}
}

// SQLServerDSN builds a sqlserver:// URL with the credentials escaped.
func SQLServerDSN(cfg *Config) string {
	query := url.Values{}
	query.Set("database", cfg.DBName)
	query.Set("TrustServerCertificate", "true")
	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(cfg.DBUSER, cfg.DBPass),
		Host:     cfg.DBHost + ":" + strconv.Itoa(int(cfg.DBPort)),
		RawQuery: query.Encode(),
	}
	return u.String()
}

// ConnectDatabase opens the database engine using the configuration values.
// The returned handle has not been probed yet.
func ConnectDatabase() (*gorm.DB, error) {
	cfg := LoadConfig()
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{}
	if cfg.IsProduction() {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, err
	}

	return db, nil
}
