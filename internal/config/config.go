package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Configuration is read from config.yaml (path via -c or CONFIG_PATH)
// and the environment through cleanenv. A .env.server file next to the
// binary is loaded first so deployments can ship secrets alongside it.

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	MQTT      MQTTConfig      `yaml:"mqtt"`
	CMC       CMCConfig       `yaml:"coinmarketcap"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Logger    LoggerConfig    `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type SchedulerConfig struct {
	Enabled bool `yaml:"enabled" env-default:"true"`
	// Interval between listing fetches; CoinMarketCap free tier allows
	// roughly one call a minute, the default stays well under it.
	Interval time.Duration `yaml:"interval" env:"UPDATE_INTERVAL" env-default:"15m"`
	// ClearRetained drives the retained historical topic clearing loop.
	ClearRetained bool          `yaml:"clear_retained" env-default:"true"`
	ClearWarmup   time.Duration `yaml:"clear_warmup" env-default:"5m"`
	// ClearSymbols are the symbols whose retained historical topics are
	// cleared on each timeframe's cadence.
	ClearSymbols []string `yaml:"clear_symbols" env-default:"BTC,ETH,ADA,SOL,DOT,MATIC,LINK,XRP,LTC,BCH"`
	// WarmSymbols get their 24h and 7d charts published right after
	// startup so early subscribers find retained data.
	WarmSymbols []string `yaml:"warm_symbols" env-default:"BTC,ETH"`
}

type MQTTConfig struct {
	Enabled bool   `yaml:"enabled" env-default:"true"`
	Host    string `yaml:"host" env:"MQTT_BROKER_HOST" env-default:"0.0.0.0"`
	Port    int    `yaml:"port" env:"MQTT_BROKER_PORT" env-default:"1883"`
	// EmbedBroker starts the in-process broker; disable it to publish
	// to an external one instead.
	EmbedBroker    bool          `yaml:"embed_broker" env-default:"true"`
	KeepAlive      time.Duration `yaml:"keep_alive" env-default:"30s"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env-default:"10s"`
	PublishTimeout time.Duration `yaml:"publish_timeout" env-default:"1s"`
}

type CMCConfig struct {
	BaseURL   string        `yaml:"base_url" env-default:"https://pro-api.coinmarketcap.com"`
	APIKey    string        `yaml:"api_key" env:"CMC_API_KEY"`
	Limit     int           `yaml:"limit" env-default:"100"`
	Convert   string        `yaml:"convert" env-default:"USD"`
	Timeout   time.Duration `yaml:"timeout" env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env-default:"coin-crab-server/1.0"`
}

type PostgresConfig struct {
	// Enabled switches the price archive on; the server runs
	// memory-only without it.
	Enabled  bool          `yaml:"enabled" env-default:"false"`
	Host     string        `yaml:"host" env-default:"localhost"`
	Port     int           `yaml:"port" env-default:"5432"`
	User     string        `yaml:"user" env-default:"postgres"`
	Password string        `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DBName   string        `yaml:"dbname" env-default:"coincrab"`
	SSLMode  string        `yaml:"sslmode" env-default:"disable"`
	Timeout  time.Duration `yaml:"timeout" env-default:"5s"`
}

type TelegramConfig struct {
	Enabled             bool   `yaml:"enabled" env-default:"false"`
	Token               string `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
	DefaultAutoInterval int    `yaml:"default_auto_interval" env-default:"10"` // minutes
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"` // debug|info|warn|error
	Format string `yaml:"format" env-default:"json"`                // text|json
}

func LoadConfig() (*Config, error) {
	// best effort, deployments without the file use plain env
	_ = godotenv.Load(".env.server")

	cfg := &Config{}

	configPath := fetchConfigPath()
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
