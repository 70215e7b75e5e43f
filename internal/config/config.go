package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	ErrNegativeLoops = errors.New("wizard loops must not be negative")
	ErrInvalidSpread = errors.New("spread must be a finite number greater than -1")
)

type Config struct {
	Rate       Rate
	HTTPServer HTTPServer
	Log        Log
	Probe      Probe
}

type Rate struct {
	Spread      float64 `env:"SPREAD" env-default:"0" env-description:"fractional markup applied to every rate"`
	WizardLoops int64   `env:"WIZARD_LOOPS" env-default:"100000000" env-description:"busy loop iterations for non EUR/USD pairs"`
}

type HTTPServer struct {
	Host              string        `env:"HTTP_HOST"`
	Port              int           `env:"HTTP_PORT" env-default:"8090"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"30s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

type Probe struct {
	URL     string        `env:"PROBE_URL" env-default:"http://localhost:8090"`
	Timeout time.Duration `env:"PROBE_TIMEOUT" env-default:"30s"`
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config

	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("cfg.Validate: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Rate.WizardLoops < 0 {
		return ErrNegativeLoops
	}

	if math.IsNaN(c.Rate.Spread) || math.IsInf(c.Rate.Spread, 0) || c.Rate.Spread <= -1 {
		return ErrInvalidSpread
	}

	_, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("logrus.ParseLevel: %w", err)
	}

	return nil
}

func (c Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}

func (h HTTPServer) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}
