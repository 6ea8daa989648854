package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type (
	Config struct {
		App     `yaml:"app"`
		HTTP    `yaml:"http"`
		Store   `yaml:"store"`
		Scanner `yaml:"scanner"`
		Log     `yaml:"logger"`
	}

	App struct {
		Env  string `yaml:"env"  env-default:"local" env:"APP_ENV"`
		Name string `yaml:"name" env-default:"clockalert"`
	}

	HTTP struct {
		IP          string        `yaml:"ip"           env-default:"127.0.0.1"`
		Port        string        `yaml:"port"         env-default:"8080"     env:"HTTP_PORT"`
		Timeout     time.Duration `yaml:"timeout"      env-default:"4s"`
		IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
		CORS        struct {
			AllowedOrigins   []string `yaml:"allowed_origins"   env-default:"*"`
			AllowedMethods   []string `yaml:"allowed_methods"   env-default:"GET,POST,DELETE,OPTIONS"`
			AllowedHeaders   []string `yaml:"allowed_headers"   env-default:"Content-Type"`
			AllowCredentials bool     `yaml:"allow_credentials"`
			Debug            bool     `yaml:"debug"`
		} `yaml:"cors"`
	}

	Store struct {
		Path string `yaml:"path" env-default:"ClockAlertDB.sqlite" env:"STORE_PATH"`
	}

	Scanner struct {
		Interval time.Duration `yaml:"interval" env-default:"1s"`
	}

	Log struct {
		Level string `yaml:"log_level" env-default:"info" env:"LOG_LEVEL"`
	}
)

const (
	EnvConfigPathName  = "CONFIG_PATH"
	FlagConfigPathName = "config"
)

// Addr is the listen address of the command API.
func (h HTTP) Addr() string {
	return h.IP + ":" + h.Port
}

// Load reads the config file at path, or only the environment when path is
// empty or the file does not exist.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, cfg); err != nil {
				return nil, fmt.Errorf("config - Load - ReadConfig: %w", err)
			}
			return cfg, nil
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config - Load - ReadEnv: %w", err)
	}
	return cfg, nil
}

// MustLoad parses the -config flag (falling back to CONFIG_PATH) and loads
// the config, printing the env help and exiting on failure.
func MustLoad() *Config {
	var configPath string
	flag.StringVar(&configPath, FlagConfigPathName, "./configs/config.yml", "path to the config file")
	flag.Parse()

	if env := os.Getenv(EnvConfigPathName); env != "" {
		configPath = env
	}

	cfg, err := Load(configPath)
	if err != nil {
		helpText := "clockalert - alarm clock daemon"
		help, _ := cleanenv.GetDescription(&Config{}, &helpText)
		fmt.Fprintln(os.Stderr, help)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}
