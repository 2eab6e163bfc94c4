package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/itchan-dev/threadline/shared/domain"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Engine    Engine `yaml:"engine"`
	Input     Input  `yaml:"input"`
	Output    Output `yaml:"output"`
	Api       Api    `yaml:"api"`
	Log       Log    `yaml:"log"`
	Anonymize bool   `yaml:"anonymize"` // hash identifiers before reconstruction
}

// Engine tuning. Omitted keys take the engine defaults; explicit values must be positive.
type Engine struct {
	SignificanceThreshold *time.Duration `yaml:"significance_threshold" validate:"omitnil,gt=0"`
	BurstMultiplier       *float64       `yaml:"burst_multiplier" validate:"omitnil,gt=0"`
	BurstWindow           *time.Duration `yaml:"burst_window" validate:"omitnil,gt=0"`
	TargetAccount         string         `yaml:"target_account"`
	Workers               int            `yaml:"workers" validate:"gte=0"` // 0 uses every CPU
	Timezone              string         `yaml:"timezone" validate:"omitempty,timezone"`
}

type Input struct {
	PostsPath    string `yaml:"posts_path" validate:"required_without=MessagesPath"`
	MessagesPath string `yaml:"messages_path" validate:"required_without=PostsPath"`
}

type Output struct {
	Path string `yaml:"path"` // "-" or empty writes to stdout
}

type Api struct {
	Addr           string    `yaml:"addr"`
	AllowedOrigins []string  `yaml:"allowed_origins"`
	RateLimit      RateLimit `yaml:"rate_limit"`
}

// RateLimit is per client IP; a zero Rps disables limiting.
type RateLimit struct {
	Rps   float64 `yaml:"rps" validate:"gte=0"`
	Burst float64 `yaml:"burst" validate:"gte=0"`
}

type Log struct {
	Level string `yaml:"level"`
	Json  bool   `yaml:"json"`
}

type Private struct {
	Pg           Pg     `yaml:"pg"`
	AnonymizeKey string `yaml:"anonymize_key"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" validate:"required_with=Host"`
	User     string `yaml:"user" validate:"required_with=Host"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required_with=Host"`
}

// PgEnabled reports whether results should be persisted to postgres.
func (c *Config) PgEnabled() bool {
	return c.Private.Pg.Host != ""
}

// Engine projects the engine configuration. Omitted values fall back to defaults.
func (c *Config) Engine() (domain.EngineConfig, error) {
	e := c.Public.Engine
	cfg := domain.EngineConfig{
		TargetAccount: e.TargetAccount,
		Workers:       e.Workers,
	}
	if e.SignificanceThreshold != nil {
		cfg.SignificanceThreshold = *e.SignificanceThreshold
	}
	if e.BurstMultiplier != nil {
		cfg.BurstMultiplier = *e.BurstMultiplier
	}
	if e.BurstWindow != nil {
		cfg.BurstWindow = *e.BurstWindow
	}
	if e.Timezone != "" {
		loc, err := time.LoadLocation(e.Timezone)
		if err != nil {
			return domain.EngineConfig{}, fmt.Errorf("invalid timezone %q: %w", e.Timezone, err)
		}
		cfg.Location = loc
	}
	return cfg.WithDefaults(), nil
}

func (c *Config) validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c.Public); err != nil {
		return err
	}
	if err := validate.Struct(c.Private); err != nil {
		return err
	}
	if c.Public.Anonymize && c.Private.AnonymizeKey == "" {
		return errors.New("anonymize is enabled but anonymize_key is empty")
	}
	return nil
}

func loadPath(configPath string, output interface{}) error {
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

// Load reads public.yaml (required) and private.yaml (optional) from configFolder.
func Load(configFolder string) (*Config, error) {
	var public Public
	if err := loadPath(path.Join(configFolder, "public.yaml"), &public); err != nil {
		return nil, err
	}

	var private Private
	privatePath := path.Join(configFolder, "private.yaml")
	if _, err := os.Stat(privatePath); err == nil {
		if err := loadPath(privatePath, &private); err != nil {
			return nil, err
		}
	}

	cfg := &Config{Public: public, Private: private}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}
