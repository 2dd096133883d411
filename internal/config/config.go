package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MySQLHost    string
	MySQLPort    string
	MySQLDB      string
	MySQLUser    string
	MySQLPass    string
	MySQLTimeout int
	AutoMigrate  bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	IdempTTLSecs int

	JWTSecret    string
	TxTimeoutSec int

	IncomeDocType   string
	IDDocType       string
	AllowedDocTypes []string

	GCSBucket string

	LogLevel string
	LogFile  string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getbool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return d
}

// Load reads an optional .env from the working directory, then the environment.
// Variables already set in the environment win over the file.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// LoadFile is Load with an explicit env file; a missing file is an error.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return FromEnv(), nil
}

func FromEnv() *Config {
	c := &Config{
		AppPort:      getenv("APP_PORT", "8080"),
		MySQLHost:    getenv("MYSQL_HOST", "mysql"),
		MySQLPort:    getenv("MYSQL_PORT", "3306"),
		MySQLDB:      getenv("MYSQL_DB", "loans"),
		MySQLUser:    getenv("MYSQL_USER", "loans"),
		MySQLPass:    getenv("MYSQL_PASS", "loans"),
		MySQLTimeout: getint("MYSQL_TIMEOUT_SECONDS", 5),
		AutoMigrate:  getbool("AUTO_MIGRATE", false),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getint("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		IdempTTLSecs: getint("IDEMPOTENCY_TTL_SECONDS", 300),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		TxTimeoutSec: getint("TX_TIMEOUT_SECONDS", 10),

		IncomeDocType:   strings.ToLower(getenv("REQUIRED_INCOME_DOC_TYPE", "payslip")),
		IDDocType:       strings.ToLower(getenv("REQUIRED_ID_DOC_TYPE", "id")),
		AllowedDocTypes: splitList(getenv("ALLOWED_DOC_TYPES", "payslip,id,cv,bank_statement")),

		GCSBucket: os.Getenv("GCS_BUCKET"),

		LogLevel: getenv("LOG_LEVEL", "info"),
		LogFile:  os.Getenv("LOG_FILE"),
	}
	return c
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.IncomeDocType == "" || c.IDDocType == "" {
		return errors.New("missing REQUIRED_INCOME_DOC_TYPE/REQUIRED_ID_DOC_TYPE")
	}
	if c.IncomeDocType == c.IDDocType {
		return fmt.Errorf("REQUIRED_INCOME_DOC_TYPE and REQUIRED_ID_DOC_TYPE must differ (both %q)", c.IncomeDocType)
	}
	for _, dt := range []string{c.IncomeDocType, c.IDDocType} {
		if !c.DocTypeAllowed(dt) {
			return fmt.Errorf("required doc type %q not in ALLOWED_DOC_TYPES", dt)
		}
	}
	if c.TxTimeoutSec <= 0 || c.IdempTTLSecs <= 0 {
		return errors.New("TX_TIMEOUT_SECONDS and IDEMPOTENCY_TTL_SECONDS must be positive")
	}
	return nil
}

func (c *Config) DocTypeAllowed(dt string) bool {
	for _, a := range c.AllowedDocTypes {
		if a == dt {
			return true
		}
	}
	return false
}

func (c *Config) TxTimeout() time.Duration { return time.Duration(c.TxTimeoutSec) * time.Second }

func (c *Config) IdempTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME; loc=UTC keeps applied_at/reviewed_at comparable
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4&timeout=%[5]ds&readTimeout=%[5]ds&writeTimeout=%[5]ds",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB, c.MySQLTimeout)
}
