package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]any)

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v according to its `env` tags.
// The first successful result for each type is cached, later calls copy the
// cached value into v. A .env file in the working directory is read once,
// if it exists, before the first parse.
//
//	var cfg validator.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	cacheMu.RLock()
	cached, ok := cache[key]
	cacheMu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := parse(v); err != nil {
		return err
	}
	cache[key] = *v
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig parses v from the current environment and replaces the
// cached value for its type.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := parse(v); err != nil {
		return err
	}
	cacheMu.Lock()
	cache[typeKey[T]()] = *v
	cacheMu.Unlock()
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	cacheMu.Lock()
	clear(cache)
	cacheMu.Unlock()
}

// LoadEnv loads the given .env files into the process environment, later
// files overriding earlier ones. Without arguments it loads ./.env.
// Variables already set in the environment are kept.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	values := make(map[string]string)
	for _, path := range paths {
		file, err := godotenv.Read(path)
		if err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		for k, val := range file {
			values[k] = val
		}
	}
	for k, val := range values {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, val); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// LoadFile fills v from its `env` tags and defaults, then overlays the
// YAML document at path. Keys present in the file win. The result is not
// cached.
func LoadFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := parse(v); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingConfigFile, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrParsingConfigFile, err)
	}
	return nil
}

func parse[T any](v *T) error {
	if reflect.TypeFor[T]().Kind() != reflect.Struct {
		return ErrInvalidConfigType
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
