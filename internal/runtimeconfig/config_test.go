package runtimeconfig

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "english_default", mutate: func(c *Config) { c.DefaultLanguage = "en" }},
		{name: "postgres_driver", mutate: func(c *Config) {
			c.Storage.Driver = DriverPostgres
			c.Storage.DSN = "postgres://localhost/site"
		}},
		{name: "unknown_language", mutate: func(c *Config) { c.DefaultLanguage = "fr" }, wantErr: true},
		{name: "missing_language", mutate: func(c *Config) { c.DefaultLanguage = "" }, wantErr: true},
		{name: "unknown_driver", mutate: func(c *Config) { c.Storage.Driver = "oracle" }, wantErr: true},
		{name: "missing_dsn", mutate: func(c *Config) { c.Storage.DSN = "" }, wantErr: true},
		{name: "bad_log_level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: true},
		{name: "bad_log_format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
		{name: "logging_disabled_skips_checks", mutate: func(c *Config) {
			c.Logging.Enabled = false
			c.Logging.Level = "verbose"
		}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
