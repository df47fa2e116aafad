package client

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is environment-only: the library is embedded in mobile apps
// where a config file is impractical. A .env.client next to the binary
// is honored for development.
type Config struct {
	BrokerHost         string        `env:"MQTT_BROKER_HOST" env-default:"127.0.0.1"`
	BrokerPort         int           `env:"MQTT_BROKER_PORT" env-default:"1883"`
	KeepAlive          time.Duration `env:"MQTT_KEEP_ALIVE" env-default:"30s"`
	ConnectTimeout     time.Duration `env:"MQTT_CONNECT_TIMEOUT" env-default:"10s"`
	RequestTimeout     time.Duration `env:"MQTT_REQUEST_TIMEOUT" env-default:"30s"`
	MaxConnectAttempts int           `env:"MQTT_MAX_CONNECT_ATTEMPTS" env-default:"5"`
}

func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env.client")

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
