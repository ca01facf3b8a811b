package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	RateLimit    RateLimitConfig
	CORS         CORSConfig
	SMTP         SMTPConfig
	Seed         SeedConfig
	Cart         CartConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MPR_APP_ENV" required:"true"`
	Port         string `envconfig:"MPR_APP_PORT" default:"4000"`
	LogLevel     string `envconfig:"MPR_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MPR_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MPR_DB_DSN"`
	Driver string `envconfig:"MPR_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MPR_DB_HOST"`
	LegacyPort     int    `envconfig:"MPR_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MPR_DB_USER"`
	LegacyPassword string `envconfig:"MPR_DB_PASSWORD"`
	LegacyName     string `envconfig:"MPR_DB_NAME"`
	LegacySSLMode  string `envconfig:"MPR_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MPR_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MPR_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MPR_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MPR_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DBDriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"MPR_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MPR_REDIS_ADDR"`
	Password     string        `envconfig:"MPR_REDIS_PASSWORD"`
	DB           int           `envconfig:"MPR_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MPR_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MPR_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MPR_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MPR_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MPR_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MPR_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MPR_JWT_ISSUER" default:"mondragonpartyrental"`
	ExpirationMinutes int    `envconfig:"MPR_JWT_EXPIRATION_MINUTES" default:"43200"`
	CookieName        string `envconfig:"MPR_SESSION_COOKIE_NAME" default:"mpr_session"`
}

// SessionTTL returns the access token lifetime.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MPR_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MPR_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MPR_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MPR_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MPR_ARGON_KEY_LEN" default:"32"`
}

type RateLimitConfig struct {
	APIWindow time.Duration `envconfig:"MPR_RATE_LIMIT_API_WINDOW" default:"15m"`
	APILimit  int           `envconfig:"MPR_RATE_LIMIT_API_LIMIT" default:"200"`

	LeadWindow     time.Duration `envconfig:"MPR_RATE_LIMIT_LEAD_WINDOW" default:"1h"`
	LeadIPLimit    int           `envconfig:"MPR_RATE_LIMIT_LEAD_IP_LIMIT" default:"30"`
	LeadEmailLimit int           `envconfig:"MPR_RATE_LIMIT_LEAD_EMAIL_LIMIT" default:"10"`

	LoginWindow     time.Duration `envconfig:"MPR_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginIPLimit    int           `envconfig:"MPR_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	LoginEmailLimit int           `envconfig:"MPR_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
}

type CORSConfig struct {
	// AllowedOrigins is the comma-separated list of browser origins
	// permitted to call the API with credentials.
	AllowedOrigins []string `envconfig:"MPR_CLIENT_ORIGINS" default:"http://localhost:5173"`
}

type SMTPConfig struct {
	Host     string `envconfig:"MPR_SMTP_HOST"`
	Port     int    `envconfig:"MPR_SMTP_PORT" default:"587"`
	User     string `envconfig:"MPR_SMTP_USER"`
	Password string `envconfig:"MPR_SMTP_PASS"`
	From     string `envconfig:"MPR_MAIL_FROM"`
	To       string `envconfig:"MPR_MAIL_TO"`
}

// Enabled reports whether outbound mail is configured at all.
func (s SMTPConfig) Enabled() bool {
	return strings.TrimSpace(s.Host) != ""
}

type SeedConfig struct {
	AdminEmail    string `envconfig:"MPR_ADMIN_EMAIL"`
	AdminPassword string `envconfig:"MPR_ADMIN_PASSWORD"`
}

type CartConfig struct {
	TTL time.Duration `envconfig:"MPR_CART_TTL" default:"720h"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MPR_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" || db.IsSQLite() {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
