package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Render  RenderConfig  `mapstructure:"render"`
	Limits  LimitsConfig  `mapstructure:"limits"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// RenderConfig carries the defaults applied to render requests that omit a
// field. Color values are hex or CSS color names, parsed at startup.
type RenderConfig struct {
	DefaultSize            int    `mapstructure:"default_size"`
	DefaultForeground      string `mapstructure:"default_foreground"`
	DefaultBackground      string `mapstructure:"default_background"`
	DefaultErrorCorrection string `mapstructure:"default_error_correction"`
	DefaultMargin          int    `mapstructure:"default_margin"`
	DefaultFrame           string `mapstructure:"default_frame"`
	DefaultFrameColor      string `mapstructure:"default_frame_color"`
	DefaultShape           string `mapstructure:"default_shape"`
	DefaultBottomTextColor string `mapstructure:"default_bottom_text_color"`
	DefaultBottomTextSize  int    `mapstructure:"default_bottom_text_size"`
}

type LimitsConfig struct {
	MaxLogoBytes int64 `mapstructure:"max_logo_bytes"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

func Load(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
