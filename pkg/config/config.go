package config

import "time"

type Config struct {
	App          AppConfig          `mapstructure:"app"`
	HTTP         HTTPConfig         `mapstructure:"http"`
	GRPC         GRPCConfig         `mapstructure:"grpc"`
	Ingest       IngestConfig       `mapstructure:"ingest"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	NATS         NATSConfig         `mapstructure:"nats"`
	RabbitMQ     RabbitMQConfig     `mapstructure:"rabbitmq"`
	Vault        VaultConfig        `mapstructure:"vault"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	Prometheus   PrometheusConfig   `mapstructure:"prometheus"`
	Tracing      TracingConfig      `mapstructure:"tracing"`
	Logging      LoggingConfig      `mapstructure:"logging"`
	CORS         CORSConfig         `mapstructure:"cors"`
	Pricing      PricingConfig      `mapstructure:"pricing"`
	Analytics    AnalyticsConfig    `mapstructure:"analytics"`
	Billing      BillingConfig      `mapstructure:"billing"`
	Notification NotificationConfig `mapstructure:"notification"`
	Cache        CacheConfig        `mapstructure:"cache"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port           int           `mapstructure:"port"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
}

type GRPCConfig struct {
	Port int `mapstructure:"port"`
}

// IngestConfig covers the websocket endpoint site gateways push readings to.
type IngestConfig struct {
	Port         int           `mapstructure:"port"`
	PingInterval time.Duration `mapstructure:"ping_interval"`
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	LogQueries      bool          `mapstructure:"log_queries"`
}

type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type NATSConfig struct {
	URL           string        `mapstructure:"url"`
	MaxReconnects int           `mapstructure:"max_reconnects"`
	ReconnectWait time.Duration `mapstructure:"reconnect_wait"`
}

// RabbitMQConfig is the alternative broker; used when Queue.Driver is "rabbitmq".
type RabbitMQConfig struct {
	URL    string `mapstructure:"url"`
	Driver string `mapstructure:"driver"`
}

type VaultConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
	Token   string `mapstructure:"token"`
}

type JWTConfig struct {
	Secret               string        `mapstructure:"secret"`
	AccessTokenDuration  time.Duration `mapstructure:"access_token_duration"`
	RefreshTokenDuration time.Duration `mapstructure:"refresh_token_duration"`
}

type PrometheusConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type TracingConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PricingConfig holds the tariff constants. PerKWh is the projection price
// used for estimated monthly savings, not a billing rate.
type PricingConfig struct {
	PerKWh   float64 `mapstructure:"per_kwh"`
	Currency string  `mapstructure:"currency"`
}

// AnalyticsConfig names the selectable aggregation windows.
type AnalyticsConfig struct {
	WindowsDays []int `mapstructure:"windows_days"`
}

type BillingConfig struct {
	Enabled         bool    `mapstructure:"enabled"`
	StripeSecretKey string  `mapstructure:"stripe_secret_key"`
	DepositPercent  float64 `mapstructure:"deposit_percent"`
	Currency        string  `mapstructure:"currency"`
}

type NotificationConfig struct {
	Email EmailConfig `mapstructure:"email"`
	// OpsEmail receives high-severity alert notifications.
	OpsEmail string `mapstructure:"ops_email"`
}

type EmailConfig struct {
	Provider string `mapstructure:"provider"` // "sendgrid" or "smtp"
	APIKey   string `mapstructure:"api_key"`
	From     string `mapstructure:"from"`
	FromName string `mapstructure:"from_name"`
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
}

type CacheConfig struct {
	DashboardStatsTTL time.Duration `mapstructure:"dashboard_stats_ttl"`
}

// Defaults the reference deployment ships with.
const (
	DefaultPerKWh         = 0.75
	DefaultDepositPercent = 0.30
)

// DefaultWindowsDays are the selectable aggregation windows.
var DefaultWindowsDays = []int{7, 30, 90}
