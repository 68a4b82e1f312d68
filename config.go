package caltrainlive

import (
	"errors"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

type UpstreamConfig struct {
	BaseURL    string `yaml:"baseURL" validate:"omitempty,url"`
	APIKey     string `yaml:"apiKey"`
	OperatorID string `yaml:"operator_id"`
	TimeoutMS  int    `yaml:"timeoutMS" validate:"gte=0"`
}

type CacheConfig struct {
	StopsTTLHours      int `yaml:"stopsTTLHours" validate:"gte=0"`
	TravelTimeTTLHours int `yaml:"travelTimeTTLHours" validate:"gte=0"`
}

type DisplayConfig struct {
	Timezone     string `yaml:"timezone"`
	DefaultLimit int    `yaml:"defaultLimit" validate:"gte=0"`
}

type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Cache    CacheConfig    `yaml:"cache"`
	Display  DisplayConfig  `yaml:"display"`
}

var Config AppConfig

// LoadAppConfig loads config.yml if present, applies defaults, and pulls the
// 511 API key from the environment (a local .env file is honored, matching
// how the key is distributed). The config file is optional; the API key is
// not.
func LoadAppConfig() error {
	_ = godotenv.Load()

	var cfg AppConfig
	paths := []string{"config.yml", "./config/config.yml"}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
		break
	}

	if key := os.Getenv("API_KEY"); key != "" {
		cfg.Upstream.APIKey = key
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Upstream.OperatorID == "" {
		cfg.Upstream.OperatorID = "CT"
	}
	if cfg.Upstream.TimeoutMS == 0 {
		cfg.Upstream.TimeoutMS = 15000
	}
	if cfg.Cache.StopsTTLHours == 0 {
		cfg.Cache.StopsTTLHours = 24
	}
	if cfg.Cache.TravelTimeTTLHours == 0 {
		cfg.Cache.TravelTimeTTLHours = 24
	}
	if cfg.Display.Timezone == "" {
		cfg.Display.Timezone = "America/Los_Angeles"
	}
	if cfg.Display.DefaultLimit == 0 {
		cfg.Display.DefaultLimit = 5
	}

	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Upstream); err != nil {
		return err
	}
	if cfg.Upstream.APIKey == "" {
		return errors.New("API_KEY not set; add it to the environment or .env")
	}
	Config = cfg
	return nil
}
