package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Library  Library  `json:"library" yaml:"library" mapstructure:"library"`
	Storage  Storage  `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server   Server   `json:"server" yaml:"server" mapstructure:"server"`
	Scanner  Scanner  `json:"scanner" yaml:"scanner" mapstructure:"scanner"`
	Metadata Metadata `json:"metadata" yaml:"metadata" mapstructure:"metadata"`
}

type Library struct {
	MediaDir  string `json:"mediaDir" yaml:"mediaDir" mapstructure:"mediaDir" validate:"required"`
	ConfigDir string `json:"configDir" yaml:"configDir" mapstructure:"configDir" validate:"required"`
}

// Storage selects the document store. FilePath is only used by the sqlite driver.
type Storage struct {
	Driver   string `json:"driver" yaml:"driver" mapstructure:"driver" validate:"oneof=json sqlite"`
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required_if=Driver sqlite"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"min=0,max=65535"`
}

// Scanner controls when rescans happen besides explicit requests
type Scanner struct {
	Watch       bool          `json:"watch" yaml:"watch" mapstructure:"watch"`
	Debounce    time.Duration `json:"debounce" yaml:"debounce" mapstructure:"debounce" validate:"min=0"`
	Schedule    string        `json:"schedule" yaml:"schedule" mapstructure:"schedule"`
	ScanOnStart bool          `json:"scanOnStart" yaml:"scanOnStart" mapstructure:"scanOnStart"`
}

type Metadata struct {
	OMDb        OMDb        `json:"omdb" yaml:"omdb" mapstructure:"omdb"`
	GoogleBooks GoogleBooks `json:"googleBooks" yaml:"googleBooks" mapstructure:"googleBooks"`
}

type OMDb struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme" validate:"omitempty,oneof=http https"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff" validate:"min=0"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries" validate:"min=0"`
}

type GoogleBooks struct {
	Scheme string `json:"scheme" yaml:"scheme" mapstructure:"scheme" validate:"omitempty,oneof=http https"`
	Host   string `json:"host" yaml:"host" mapstructure:"host"`
	APIKey string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// Validate checks the configuration before anything is started with it
func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
