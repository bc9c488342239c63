package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultPath = "config.yaml"

const (
	TransportSimple    = "simple"
	TransportGoChannel = "gochannel"
)

type Config struct {
	App    App    `yaml:"app"`
	Log    Log    `yaml:"log"`
	Export Export `yaml:"export"`
	Events Events `yaml:"events"`
}

type App struct {
	Name string `yaml:"name" env:"APP_NAME" env-default:"fleetseed" env-description:"application name attached to every log entry"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info" env-description:"zap level: debug, info, warn, error"`
}

type Export struct {
	Database   string `yaml:"database" env:"EXPORT_DATABASE" env-default:"fleet" env-description:"database selected by the generated script"`
	Format     string `yaml:"format" env:"EXPORT_FORMAT" env-default:"json" env-description:"document format: json or extjson"`
	OutputDir  string `yaml:"output_dir" env:"EXPORT_OUTPUT_DIR" env-default:"jsons" env-description:"directory for per-collection documents"`
	ScriptName string `yaml:"script_name" env:"EXPORT_SCRIPT_NAME" env-default:"script.js" env-description:"file name of the generated script"`
}

type Events struct {
	Transport string `yaml:"transport" env:"EVENTS_TRANSPORT" env-default:"simple" env-description:"event bus: simple or gochannel"`
}

// New lê o arquivo em path e aplica as variáveis de ambiente por cima.
// Sem arquivo, apenas ambiente e valores padrão são usados.
func New(path string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config error: %w", err)
		}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Events.Transport {
	case TransportSimple, TransportGoChannel:
	default:
		return fmt.Errorf("config error: unknown events transport %q", c.Events.Transport)
	}
	if c.Export.ScriptName == "" {
		return fmt.Errorf("config error: export script name is empty")
	}
	return nil
}

// Usage descreve as variáveis de ambiente aceitas.
func Usage() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}
