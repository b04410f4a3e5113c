// Package config loads typed configuration structs from the environment,
// optional .env files and YAML files.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into a struct using `env` tags and caches
//     the result per type, so repeated calls are cheap.
//   - LoadFile starts from the same tags and overlays a YAML document
//     (gopkg.in/yaml.v3) using `yaml` tags.
//
// # Usage
//
//	var cfg validator.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//	v, err := validator.NewFromConfig(cfg)
//
// # Error Handling
//
// Errors wrap the sentinels in errors.go and can be matched with errors.Is,
// for example ErrParsingConfig when a required variable is missing.
//
// # Testing Helpers
//
// ResetCache clears the cache between tests and ForceReloadConfig re-parses
// one type after the environment changed.
package config
