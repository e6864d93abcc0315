package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Store   StoreConfig
	Token   TokenConfig
	Billing BillingConfig
	Jobs    JobsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"parkpass"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"parkpass"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// Empty Addr selects the in-process replay guard and disables the availability cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_AVAILABILITY_TTL" default:"30s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Gate-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"1h"`
	// Empty skips the iss check.
	Issuer   string        `envconfig:"JWT_ISSUER"`
}

type StoreConfig struct {
	// "postgres" or "memory"
	Driver     string        `envconfig:"STORE_DRIVER" default:"postgres"`
	OpTimeout  time.Duration `envconfig:"STORE_OP_TIMEOUT" default:"3s"`
	MaxRetries int           `envconfig:"STORE_MAX_RETRIES" default:"3"`
}

type TokenConfig struct {
	IssuerTag string        `envconfig:"TOKEN_ISSUER_TAG" default:"PARKPASS"`
	Window    time.Duration `envconfig:"TOKEN_WINDOW" default:"2m"`
}

type BillingConfig struct {
	// "reject" or "clamp"
	CapacityPolicy string `envconfig:"CAPACITY_POLICY" default:"reject"`
	TimeZone       string `envconfig:"BILLING_TIMEZONE" default:"UTC"`
	DueDay         int    `envconfig:"BILLING_DUE_DAY" default:"5"`
}

type JobsConfig struct {
	Enabled           bool          `envconfig:"JOBS_ENABLED" default:"true"`
	ReconcileInterval time.Duration `envconfig:"JOBS_RECONCILE_INTERVAL" default:"10m"`
	JobTimeout        time.Duration `envconfig:"JOBS_TIMEOUT" default:"1m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BillingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Store: StoreConfig{
			Driver:     "memory",
			OpTimeout:  time.Second,
			MaxRetries: 3,
		},
		Token: TokenConfig{
			IssuerTag: "PARKPASS",
			Window:    2 * time.Minute,
		},
		Billing: BillingConfig{
			CapacityPolicy: "reject",
			TimeZone:       "UTC",
			DueDay:         5,
		},
		Jobs: JobsConfig{
			Enabled:           false,
			ReconcileInterval: time.Minute,
			JobTimeout:        10 * time.Second,
		},
	}
}
