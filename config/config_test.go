package config

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freshConfig resets the singleton before and after the test.
func freshConfig(t *testing.T) {
	t.Helper()
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)
}

func TestConfigFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"APPNAME", "APPPORT", "DBDRIVER", "DBPORT", "CORS_ORIGINS", "CERT_TEMPLATE_PATH", "CERT_CITY", "CERT_RATE_WINDOW", "ATENCIONES_MAX_PER_PAGE"} {
		t.Setenv(k, "")
	}

	cfg := configFromEnv()
	assert.Equal(t, "GERESAPI", cfg.AppName)
	assert.Equal(t, uint16(8000), cfg.AppPort)
	assert.Equal(t, DriverSQLServer, cfg.DBDriver)
	assert.Equal(t, uint16(1433), cfg.DBPort)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "Plantillas/certificado.pdf", cfg.CertTemplatePath)
	assert.Equal(t, "Cusco", cfg.CertCity)
	assert.Equal(t, time.Minute, cfg.CertRateWindow)
	assert.Equal(t, 0, cfg.MaxPerPage)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("APPNAME", "Consultas")
	t.Setenv("APPPORT", "9090")
	t.Setenv("DBDRIVER", "MySQL")
	t.Setenv("DBPORT", "3306")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("CERT_RATE_WINDOW", "30s")
	t.Setenv("ATENCIONES_MAX_PER_PAGE", "1000")

	cfg := configFromEnv()
	assert.Equal(t, "Consultas", cfg.AppName)
	assert.Equal(t, uint16(9090), cfg.AppPort)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, uint16(3306), cfg.DBPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.CertRateWindow)
	assert.Equal(t, 1000, cfg.MaxPerPage)
}

func TestConfigFromEnvIgnoresGarbageNumbers(t *testing.T) {
	t.Setenv("APPPORT", "not-a-port")
	t.Setenv("CERT_RATE_LIMIT", "many")

	cfg := configFromEnv()
	assert.Equal(t, uint16(8000), cfg.AppPort)
	assert.Equal(t, 30, cfg.CertRateLimit)
}

func TestSQLServerDSNEscapesCredentials(t *testing.T) {
	cfg := &Config{DBHost: "db.local", DBPort: 1433, DBName: "DBGERESA", DBUSER: "api", DBPass: "p@ss:w/rd"}

	u, err := url.Parse(SQLServerDSN(cfg))
	require.NoError(t, err)
	assert.Equal(t, "sqlserver", u.Scheme)
	assert.Equal(t, "db.local:1433", u.Host)
	pass, _ := u.User.Password()
	assert.Equal(t, "p@ss:w/rd", pass)
	assert.Equal(t, "DBGERESA", u.Query().Get("database"))
	assert.Equal(t, "true", u.Query().Get("TrustServerCertificate"))
}

func TestDialector(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    string
		wantErr string
	}{
		{name: "test env uses sqlite", cfg: Config{AppEnv: "test"}, want: "sqlite"},
		{name: "sqlserver", cfg: Config{DBDriver: DriverSQLServer, DBHost: "h", DBName: "d", DBUSER: "u", DBPort: 1433}, want: "sqlserver"},
		{name: "mysql", cfg: Config{DBDriver: DriverMySQL, DBHost: "h", DBName: "d", DBUSER: "u", DBPort: 3306}, want: "mysql"},
		{name: "missing host", cfg: Config{DBDriver: DriverSQLServer, DBName: "d", DBUSER: "u"}, wantErr: "incomplete database configuration"},
		{name: "unknown driver", cfg: Config{DBDriver: "oracle", DBHost: "h", DBName: "d", DBUSER: "u"}, wantErr: "unsupported DBDRIVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Dialector(&tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name())
		})
	}
}

// Test that LoadConfig returns a non-nil config and respects APPENV=test
func TestLoadConfigAndConnectDatabase_TestEnv(t *testing.T) {
	freshConfig(t)
	t.Setenv("APPENV", "test")

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.True(t, cfg.IsTest())

	db, err := ConnectDatabase()
	require.NoError(t, err)
	require.NotNil(t, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	_ = sqlDB.Close()
}

func TestConnectDatabase_IncompleteConfig(t *testing.T) {
	freshConfig(t)
	t.Setenv("APPENV", "development")
	t.Setenv("DBHOST", "")

	db, err := ConnectDatabase()
	assert.Error(t, err)
	assert.Nil(t, db)
}
