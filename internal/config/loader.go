package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

// ConfigLoader assembles the runtime configuration from defaults, an
// optional YAML file, and the process environment, in that order.
type ConfigLoader interface {
	Load(path string) (*Config, error)
	LoadWithDefaults(path string) (*Config, error)
}

// viperConfigLoader implements ConfigLoader using Viper.
type viperConfigLoader struct {
	validator ConfigValidator
}

// NewConfigLoader creates a new ConfigLoader instance.
func NewConfigLoader(validator ConfigValidator) ConfigLoader {
	return &viperConfigLoader{
		validator: validator,
	}
}

// Load loads configuration from the specified file path, overlays the
// environment, and validates the result. Returns an error if the file
// doesn't exist or cannot be parsed.
func (l *viperConfigLoader) Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED,
			"failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED,
			"failed to unmarshal config", err)
	}

	applyInterpolation(cfg)
	ApplyEnv(cfg)

	if err := l.validator.Validate(cfg); err != nil {
		return nil, types.WrapError(types.CONFIG_VALIDATION_FAILED,
			"configuration validation failed", err)
	}

	return cfg, nil
}

// LoadWithDefaults behaves like Load but tolerates a missing file: defaults
// plus the environment must then satisfy validation on their own. This is
// the path taken when the loader runs purely from environment variables.
func (l *viperConfigLoader) LoadWithDefaults(path string) (*Config, error) {
	if path == "" {
		return l.fromEnvironment()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return l.fromEnvironment()
	}

	return l.Load(path)
}

func (l *viperConfigLoader) fromEnvironment() (*Config, error) {
	cfg := DefaultConfig()
	ApplyEnv(cfg)

	if err := l.validator.Validate(cfg); err != nil {
		return nil, types.WrapError(types.CONFIG_VALIDATION_FAILED,
			"configuration validation failed", err)
	}

	return cfg, nil
}

// applyInterpolation expands ${VAR_NAME} references in every string setting.
func applyInterpolation(cfg *Config) {
	cfg.Neo4j.URI = interpolateString(cfg.Neo4j.URI)
	cfg.Neo4j.Username = interpolateString(cfg.Neo4j.Username)
	cfg.Neo4j.Password = interpolateString(cfg.Neo4j.Password)
	cfg.Neo4j.Database = interpolateString(cfg.Neo4j.Database)

	cfg.CSV.Hospitals = interpolateString(cfg.CSV.Hospitals)
	cfg.CSV.Payers = interpolateString(cfg.CSV.Payers)
	cfg.CSV.Physicians = interpolateString(cfg.CSV.Physicians)
	cfg.CSV.Patients = interpolateString(cfg.CSV.Patients)
	cfg.CSV.Visits = interpolateString(cfg.CSV.Visits)
	cfg.CSV.Reviews = interpolateString(cfg.CSV.Reviews)

	cfg.Logging.Level = interpolateString(cfg.Logging.Level)
	cfg.Logging.Format = interpolateString(cfg.Logging.Format)
}

// interpolateString replaces ${VAR_NAME} with environment variable values.
func interpolateString(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")

		if envValue := os.Getenv(varName); envValue != "" {
			return envValue
		}

		// If not found, return original match
		return match
	})
}
