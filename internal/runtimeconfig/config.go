package runtimeconfig

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Driver identifiers accepted by the storage layer.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Config aggregates runtime settings for the sitekit module. Fields use
// simple types so host applications can map their own configuration sources
// onto it.
type Config struct {
	DefaultLanguage string
	Storage         StorageConfig
	HTTP            HTTPConfig
	Logging         LoggingConfig
}

// StorageConfig selects the database driver and connection string.
type StorageConfig struct {
	Driver       string
	DSN          string
	MaxOpenConns int
}

// HTTPConfig captures settings for the HTTP surface.
type HTTPConfig struct {
	BasePath      string
	SessionName   string
	SessionSecret string
	DebugPages    int
}

// LoggingConfig captures the go-logger adapter options.
type LoggingConfig struct {
	Enabled   bool
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the settings used when the host supplies nothing:
// an in-memory sqlite store, Chinese as the default display language, and
// console logging at info.
func DefaultConfig() Config {
	return Config{
		DefaultLanguage: "zh",
		Storage: StorageConfig{
			Driver:       DriverSQLite,
			DSN:          "file::memory:?cache=shared",
			MaxOpenConns: 1,
		},
		HTTP: HTTPConfig{
			BasePath:    "/api",
			SessionName: "sitekit",
			DebugPages:  10,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Format:  "console",
		},
	}
}

// Validate checks the configuration before the module wires itself up.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.DefaultLanguage, validation.Required, validation.In("zh", "en")),
	); err != nil {
		return err
	}

	if err := validation.ValidateStruct(&c.Storage,
		validation.Field(&c.Storage.Driver, validation.Required, validation.In(DriverSQLite, DriverPostgres)),
		validation.Field(&c.Storage.DSN, validation.Required),
		validation.Field(&c.Storage.MaxOpenConns, validation.Min(0)),
	); err != nil {
		return err
	}

	if c.Logging.Enabled {
		if err := validation.ValidateStruct(&c.Logging,
			validation.Field(&c.Logging.Level, validation.In("trace", "debug", "info", "warn", "error", "fatal")),
			validation.Field(&c.Logging.Format, validation.In("json", "console", "pretty")),
		); err != nil {
			return err
		}
	}

	return nil
}
