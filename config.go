package sitekit

import "github.com/goliatone/go-sitekit/internal/runtimeconfig"

// Driver identifiers accepted by StorageConfig.
const (
	DriverSQLite   = runtimeconfig.DriverSQLite
	DriverPostgres = runtimeconfig.DriverPostgres
)

type (
	Config        = runtimeconfig.Config
	StorageConfig = runtimeconfig.StorageConfig
	HTTPConfig    = runtimeconfig.HTTPConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
