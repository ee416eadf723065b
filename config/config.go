package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	AppName        string   `json:"appname"`
	AppDescription string   `json:"appdescription"`
	AppVersion     string   `json:"appversion"`
	AppEnv         string   `json:"appenv"`
	AppPort        uint16   `json:"appport"`
	GinMode        string   `json:"ginmode"`
	LogLevel       string   `json:"loglevel"`
	DBDriver       string   `json:"dbdriver"`
	DBHost         string   `json:"dbhost"`
	DBPort         uint16   `json:"dbport"`
	DBName         string   `json:"dbname"`
	DBUSER         string   `json:"dbuser"`
	DBPass         string   `json:"-"`
	CORSOrigins    []string `json:"corsorigins"`

	CertTemplatePath string        `json:"certtemplatepath"`
	CertCity         string        `json:"certcity"`
	CertRateLimit    int           `json:"certratelimit"`
	CertRateWindow   time.Duration `json:"certratewindow"`

	// MaxPerPage clamps the per_page parameter of the visit history when > 0.
	MaxPerPage int `json:"maxperpage"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables, optionally from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// A missing .env is fine, deployments usually inject the environment directly.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Error loading .env file: %v", err)
		}
		config = configFromEnv()
	})
	return config
}

// ResetConfigForTest drops the singleton so the next LoadConfig call re-reads the environment.
// This function is only available for testing and should not be used in production code.
func ResetConfigForTest() {
	config = nil
	once = sync.Once{}
}

func configFromEnv() *Config {
	return &Config{
		AppName:          getEnv("APPNAME", "GERESAPI"),
		AppDescription:   getEnv("APPDESCRIPTION", "API para consultas a la base de datos de GERESA."),
		AppVersion:       getEnv("APPVERSION", "1.0.0"),
		AppEnv:           getEnv("APPENV", "development"),
		AppPort:          getUint16("APPPORT", 8000),
		GinMode:          getEnv("GINMODE", "debug"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DBDriver:         strings.ToLower(getEnv("DBDRIVER", DriverSQLServer)),
		DBHost:           os.Getenv("DBHOST"),
		DBPort:           getUint16("DBPORT", 1433),
		DBName:           os.Getenv("DBNAME"),
		DBUSER:           os.Getenv("DBUSER"),
		DBPass:           os.Getenv("DBPASS"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		CertTemplatePath: getEnv("CERT_TEMPLATE_PATH", "Plantillas/certificado.pdf"),
		CertCity:         getEnv("CERT_CITY", "Cusco"),
		CertRateLimit:    getInt("CERT_RATE_LIMIT", 30),
		CertRateWindow:   getDuration("CERT_RATE_WINDOW", time.Minute),
		MaxPerPage:       getInt("ATENCIONES_MAX_PER_PAGE", 0),
	}
}

// IsTest reports whether the application runs under APPENV=test.
func (c *Config) IsTest() bool {
	return c.AppEnv == "test"
}

// IsProduction reports whether the application runs under APPENV=production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func getUint16(key string, fallback uint16) uint16 {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 16)
	if err != nil {
		return fallback
	}
	return uint16(v)
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// splitCSV splits a comma-separated list, dropping blanks.
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
