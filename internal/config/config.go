// Package config loads and validates the comparator configuration.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

// EnvPrefix is the prefix of environment variables read by the configuration
const EnvPrefix = "SBOMDIFF"

// Configuration keys. Flags registered under the same names bind onto them.
const (
	KeyOriginalSBOM   = "orgsbom"
	KeyNewSBOM        = "newsbom"
	KeyOutput         = "output"
	KeyOutputBOM      = "output-bom"
	KeyFormat         = "format"
	KeyHTMLOutput     = "html-output"
	KeyPretty         = "pretty"
	KeyKeyring        = "keyring"
	KeyOriginalSig    = "org-sig"
	KeyNewSig         = "new-sig"
	KeyOriginalSHA256 = "org-sha256"
	KeyNewSHA256      = "new-sha256"
	KeyLogLevel       = "log-level"
	KeyLogJSON        = "log-json"
)

// Defaults
const (
	DefaultOutput     = "diff"
	DefaultOutputBOM  = "diffBom"
	DefaultFormat     = "xml"
	DefaultHTMLOutput = "sbomcompared"
	DefaultLogLevel   = "info"
)

// Config holds everything a comparison run needs
type Config struct {
	OriginalSBOM   string `mapstructure:"orgsbom" validate:"required"`
	NewSBOM        string `mapstructure:"newsbom" validate:"required"`
	Output         string `mapstructure:"output" validate:"required"`
	OutputBOM      string `mapstructure:"output-bom" validate:"required"`
	Format         string `mapstructure:"format" validate:"oneof=xml json"`
	HTMLOutput     string `mapstructure:"html-output" validate:"required"`
	Pretty         bool   `mapstructure:"pretty"`
	Keyring        string `mapstructure:"keyring" validate:"required_with=OriginalSig NewSig"`
	OriginalSig    string `mapstructure:"org-sig"`
	NewSig         string `mapstructure:"new-sig"`
	OriginalSHA256 string `mapstructure:"org-sha256" validate:"omitempty,sha256sum"`
	NewSHA256      string `mapstructure:"new-sha256" validate:"omitempty,sha256sum"`
	LogLevel       string `mapstructure:"log-level" validate:"oneof=debug info warn error"`
	LogJSON        bool   `mapstructure:"log-json"`
}

// VerifyConfig holds the inputs of a standalone integrity check
type VerifyConfig struct {
	File      string `mapstructure:"file" validate:"required"`
	SHA256    string `mapstructure:"sha256" validate:"omitempty,sha256sum"`
	Signature string `mapstructure:"sig" validate:"required_without=SHA256"`
	Keyring   string `mapstructure:"keyring" validate:"required_with=Signature"`
	LogLevel  string `mapstructure:"log-level" validate:"oneof=debug info warn error"`
	LogJSON   bool   `mapstructure:"log-json"`
}

// OutputFormat returns the parsed output format
func (c *Config) OutputFormat() entities.OutputFormat {
	format, err := entities.ParseOutputFormat(c.Format)
	if err != nil {
		return entities.FormatXML
	}
	return format
}

// New creates a viper instance with defaults and environment binding
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyOutputBOM, DefaultOutputBOM)
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyHTMLOutput, DefaultHTMLOutput)
	v.SetDefault(KeyPretty, true)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogJSON, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges a YAML config file into v
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Load decodes and validates the comparison configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := unmarshal(v, cfg); err != nil {
		return nil, err
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	cfg.LogLevel = normalizeLevel(cfg.LogLevel)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadVerify decodes and validates the verify configuration held by v
func LoadVerify(v *viper.Viper) (*VerifyConfig, error) {
	cfg := &VerifyConfig{}
	if err := unmarshal(v, cfg); err != nil {
		return nil, err
	}
	cfg.LogLevel = normalizeLevel(cfg.LogLevel)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func unmarshal(v *viper.Viper, out interface{}) error {
	// AutomaticEnv only applies to keys viper already knows about
	t := reflect.TypeOf(out).Elem()
	for i := 0; i < t.NumField(); i++ {
		if key := t.Field(i).Tag.Get("mapstructure"); key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind environment for %s: %w", key, err)
			}
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}
	return nil
}

func normalizeLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return DefaultLogLevel
	}
	return level
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("sha256sum", validateSHA256); err != nil {
		panic(fmt.Sprintf("failed to register sha256sum validator: %v", err))
	}
	return v
}

func validateSHA256(fl validator.FieldLevel) bool {
	sum := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(fl.Field().String())), "sha256:")
	if len(sum) != 64 {
		return false
	}
	_, err := hex.DecodeString(sum)
	return err == nil
}

// Validate checks a configuration struct.
// A missing input document wraps entities.ErrMissingInput and an unknown
// format wraps entities.ErrUnsupportedFormat.
func Validate(cfg interface{}) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required", "required_with", "required_without":
		return fmt.Errorf("%w: %s", entities.ErrMissingInput, describe(fe))
	case "oneof":
		if fe.Field() == KeyFormat {
			return fmt.Errorf("%w: %q (valid values are xml, json)", entities.ErrUnsupportedFormat, fe.Value())
		}
	}
	return fmt.Errorf("invalid configuration: %s", describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("--%s is required", fe.Field())
	case "required_with":
		return fmt.Sprintf("--%s is required when a signature is given", fe.Field())
	case "required_without":
		return fmt.Sprintf("--%s or --%s is required", fe.Field(), strings.ToLower(fe.Param()))
	case "oneof":
		return fmt.Sprintf("--%s must be one of: %s (got %q)", fe.Field(), fe.Param(), fe.Value())
	case "sha256sum":
		return fmt.Sprintf("--%s must be a 64 character hex SHA-256 digest", fe.Field())
	default:
		return fmt.Sprintf("--%s failed %s validation", fe.Field(), fe.Tag())
	}
}
