package config

// Settings is the structure of the gostore.yaml configuration file.
// Every field can be overridden by a GOSTORE_ prefixed environment variable.
type Settings struct {
	Store StoreSettings `yaml:"store" envPrefix:"STORE_"`
	Log   LogSettings   `yaml:"log"   envPrefix:"LOG_"`
}

// StoreSettings selects and configures the durable key-value store.
type StoreSettings struct {
	// Backend is one of BackendFile, BackendSQLite or BackendRedis.
	Backend   string `yaml:"backend"    env:"BACKEND"`
	Path      string `yaml:"path"       env:"PATH"`
	RedisAddr string `yaml:"redis_addr" env:"REDIS_ADDR"`
	Key       string `yaml:"key"        env:"KEY"`
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string `yaml:"level" env:"LEVEL"`
}

// Supported store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Defaults returns the settings used when neither the file nor the environment sets a value.
func Defaults() Settings {
	return Settings{
		Store: StoreSettings{
			Backend:   BackendFile,
			Path:      ".gostore",
			RedisAddr: "localhost:6379",
			Key:       "@GoStore",
		},
		Log: LogSettings{Level: "info"},
	}
}
