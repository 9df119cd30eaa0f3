package config

import "time"

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	GRPC     GRPCConfig     `env-prefix:"GRPC_"`
	Database DatabaseConfig `env-prefix:"DB_"`
	Storage  StorageConfig  `env-prefix:"STORAGE_"`
	Auth     AuthConfig     `env-prefix:"AUTH_"`
	Client   ClientConfig   `env-prefix:"CLIENT_"`
}

type HTTPConfig struct {
	Addr           string   `env:"ADDR" env-default:":8081"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type GRPCConfig struct {
	Addr                 string        `env:"ADDR" env-default:":50051"`
	KeepaliveTime        time.Duration `env:"KEEPALIVE_TIME" env-default:"60s"`
	KeepaliveTimeout     time.Duration `env:"KEEPALIVE_TIMEOUT" env-default:"30s"`
	MaxConcurrentStreams uint32        `env:"MAX_CONCURRENT_STREAMS" env-default:"50"`
}

type DatabaseConfig struct {
	Port          string `env:"PORT" env-default:"5432"`
	Host          string `env:"HOST" env-default:"localhost"`
	Name          string `env:"NAME" env-default:"postgres"`
	User          string `env:"USER" env-default:"user"`
	Password      string `env:"PASSWORD"`
	RetryAttempts uint   `env:"RETRY_ATTEMPTS" env-default:"3"`
}

// StorageConfig selects the backend behind the note store.
type StorageConfig struct {
	Driver   string `env:"DRIVER" env-default:"memory"`
	BoltPath string `env:"BOLT_PATH" env-default:"data/board.db"`
	SeedPath string `env:"SEED_PATH"`
	Seed     bool   `env:"SEED" env-default:"true"`
}

type AuthConfig struct {
	Secret       string        `env:"SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" env-default:"24h"`
	MockMemberID string        `env:"MOCK_MEMBER_ID" env-default:"user1"`
}

type ClientConfig struct {
	Addr             string        `env:"ADDR" env-default:"127.0.0.1:50051"`
	Token            string        `env:"TOKEN"`
	PollInterval     time.Duration `env:"POLL_INTERVAL" env-default:"5s"`
	PresenceInterval time.Duration `env:"PRESENCE_INTERVAL" env-default:"60s"`
	Timeout          time.Duration `env:"TIMEOUT" env-default:"10s"`
}

const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
)
