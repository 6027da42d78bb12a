// Package config предоставляет структуры и функцию загрузки конфигурации сервиса.
//
// Конфигурация читается из YAML-файла по пути CONFIG_PATH, а переменные окружения
// переопределяют значения из файла. Без CONFIG_PATH используется только окружение
// и значения по умолчанию.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env           string        `yaml:"env" env:"ENV" env-default:"local"`
	SkipSeed      bool          `yaml:"skip_seed" env:"SKIP_SEED"`
	HTTPServer    HTTPServer    `yaml:"http_server"`
	Redis         Redis         `yaml:"redis"`
	RabbitMQ      RabbitMQ      `yaml:"rabbitmq"`
	ImageProvider ImageProvider `yaml:"image_provider"`
	RateLimit     RateLimit     `yaml:"rate_limit"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Redis структура для настройки подключения к redis. Пустой адрес отключает кэш.
type Redis struct {
	Address     string        `yaml:"address" env:"REDIS_ADDRESS"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user" env:"REDIS_USER"`
	DB          int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	MaxRetries  int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES" env-default:"3"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	Timeout     time.Duration `yaml:"timeout" env:"REDIS_TIMEOUT" env-default:"2s"`
	TTL         time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"1h"`
}

// RabbitMQ структура для настройки публикации событий. Пустой URL отключает публикацию.
type RabbitMQ struct {
	URL        string        `yaml:"url" env:"RABBITMQ_URL"`
	Exchange   string        `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"tattoo.events"`
	Retries    int           `yaml:"retries" env:"RABBITMQ_RETRIES" env-default:"5"`
	RetryDelay time.Duration `yaml:"retry_delay" env:"RABBITMQ_RETRY_DELAY" env-default:"2s"`
}

// ImageProvider структура для настройки внешнего сервиса генерации изображений.
// Пустой URL включает заглушку.
type ImageProvider struct {
	URL     string        `yaml:"url" env:"IMAGE_PROVIDER_URL"`
	APIKey  string        `yaml:"api_key" env:"IMAGE_PROVIDER_API_KEY"`
	Model   string        `yaml:"model" env:"IMAGE_PROVIDER_MODEL" env-default:"dall-e-2"`
	Size    string        `yaml:"size" env:"IMAGE_PROVIDER_SIZE" env-default:"256x256"`
	Timeout time.Duration `yaml:"timeout" env:"IMAGE_PROVIDER_TIMEOUT" env-default:"30s"`
}

// RateLimit структура для настройки ограничения частоты запросов на запись.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"5"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"10"`
}

// Load читает конфигурацию из файла path (если не пустой) и окружения.
func Load(path string) (*Config, error) {
	const op = "config.Load"
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, path)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad загружает конфигурацию по CONFIG_PATH и завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"SkipSeed: %t\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Redis:\n"+
			"  Address: %s\n"+
			"  DB: %d\n"+
			"  TTL: %s\n"+
			"RabbitMQ:\n"+
			"  Exchange: %s\n"+
			"ImageProvider:\n"+
			"  URL: %s\n"+
			"  Model: %s\n"+
			"RateLimit:\n"+
			"  RPS: %g\n"+
			"  Burst: %d\n",
		c.Env,
		c.SkipSeed,
		c.HTTPServer.Address,
		c.HTTPServer.Timeout,
		c.HTTPServer.IdleTimeout,
		c.Redis.Address,
		c.Redis.DB,
		c.Redis.TTL,
		c.RabbitMQ.Exchange,
		c.ImageProvider.URL,
		c.ImageProvider.Model,
		c.RateLimit.RPS,
		c.RateLimit.Burst,
	)
}
