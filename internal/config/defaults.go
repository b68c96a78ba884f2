package config

import (
	"os"
	"time"
)

// Environment variable names understood by ApplyEnv. The CSV and connection
// names are the long-standing interface of the loader and must not change.
const (
	EnvNeo4jURI      = "NEO4J_URI"
	EnvNeo4jUsername = "NEO4J_USERNAME"
	EnvNeo4jPassword = "NEO4J_PASSWORD"
	EnvNeo4jDatabase = "NEO4J_DATABASE"

	EnvHospitalsCSV  = "HOSPITALS_CSV_PATH"
	EnvPayersCSV     = "PAYERS_CSV_PATH"
	EnvPhysiciansCSV = "PHYSICIANS_CSV_PATH"
	EnvPatientsCSV   = "PATIENTS_CSV_PATH"
	EnvVisitsCSV     = "VISITS_CSV_PATH"
	EnvReviewsCSV    = "REVIEWS_CSV_PATH"
)

// DefaultConfig returns a Config with sensible default values.
// Connection and CSV paths have no defaults; they come from the environment
// or a config file.
func DefaultConfig() *Config {
	return &Config{
		Neo4j: Neo4jConfig{
			Database: "neo4j",
		},
		Retry: RetryConfig{
			MaxAttempts: 100,
			Delay:       10 * time.Second,
		},
		Load: LoadConfig{
			BatchSize: 500,
			Workers:   1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ApplyEnv overlays values from the process environment onto cfg.
// Set variables win over whatever the config file provided; unset variables
// leave the existing value alone.
func ApplyEnv(cfg *Config) {
	setIfPresent(&cfg.Neo4j.URI, EnvNeo4jURI)
	setIfPresent(&cfg.Neo4j.Username, EnvNeo4jUsername)
	setIfPresent(&cfg.Neo4j.Password, EnvNeo4jPassword)
	setIfPresent(&cfg.Neo4j.Database, EnvNeo4jDatabase)

	setIfPresent(&cfg.CSV.Hospitals, EnvHospitalsCSV)
	setIfPresent(&cfg.CSV.Payers, EnvPayersCSV)
	setIfPresent(&cfg.CSV.Physicians, EnvPhysiciansCSV)
	setIfPresent(&cfg.CSV.Patients, EnvPatientsCSV)
	setIfPresent(&cfg.CSV.Visits, EnvVisitsCSV)
	setIfPresent(&cfg.CSV.Reviews, EnvReviewsCSV)
}

func setIfPresent(dst *string, envName string) {
	if v := os.Getenv(envName); v != "" {
		*dst = v
	}
}
