package config

import (
	"time"
)

// Config is the root configuration for the hospital graph loader.
// It is assembled once at process start and passed by reference into the
// run orchestrator; nothing reads the environment after assembly.
type Config struct {
	Neo4j   Neo4jConfig   `mapstructure:"neo4j" yaml:"neo4j" validate:"required"`
	CSV     CSVConfig     `mapstructure:"csv" yaml:"csv" validate:"required"`
	Retry   RetryConfig   `mapstructure:"retry" yaml:"retry"`
	Load    LoadConfig    `mapstructure:"load" yaml:"load"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// Neo4jConfig contains the connection settings for the target graph store.
type Neo4jConfig struct {
	URI      string `mapstructure:"uri" yaml:"uri" validate:"required"`
	Username string `mapstructure:"username" yaml:"username" validate:"required"`
	Password string `mapstructure:"password" yaml:"password" validate:"required"`
	Database string `mapstructure:"database" yaml:"database"`
}

// CSVConfig names the six source extracts. Every path is required; the
// loader refuses to start a run with a partial input set.
type CSVConfig struct {
	Hospitals  string `mapstructure:"hospitals" yaml:"hospitals" validate:"required"`
	Payers     string `mapstructure:"payers" yaml:"payers" validate:"required"`
	Physicians string `mapstructure:"physicians" yaml:"physicians" validate:"required"`
	Patients   string `mapstructure:"patients" yaml:"patients" validate:"required"`
	Visits     string `mapstructure:"visits" yaml:"visits" validate:"required"`
	Reviews    string `mapstructure:"reviews" yaml:"reviews" validate:"required"`
}

// RetryConfig bounds the whole-run retry loop. An attempt that fails with a
// transient store error is repeated from scratch after Delay, up to
// MaxAttempts total attempts.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" yaml:"max_attempts" validate:"min=1,max=1000"`
	Delay       time.Duration `mapstructure:"delay" yaml:"delay" validate:"min=0"`
}

// LoadConfig tunes row batching and node-phase parallelism.
// Workers=1 keeps the baseline sequential behavior.
type LoadConfig struct {
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size" validate:"min=1,max=5000"`
	Workers   int `mapstructure:"workers" yaml:"workers" validate:"min=1,max=16"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// PathFor resolves a source extract name to its configured path.
// Returns the empty string for unknown names.
func (c CSVConfig) PathFor(source string) string {
	switch source {
	case "hospitals":
		return c.Hospitals
	case "payers":
		return c.Payers
	case "physicians":
		return c.Physicians
	case "patients":
		return c.Patients
	case "visits":
		return c.Visits
	case "reviews":
		return c.Reviews
	default:
		return ""
	}
}
