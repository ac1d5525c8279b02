package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load populates v from environment variables using its `env` field tags.
//
// The named dotenv files are read first; variables already present in the
// process environment are never overridden. Without files the default .env
// in the working directory is read when present, its absence is not an
// error. Fields whose variable is unset and has no envDefault keep their
// current value, so v can be pre-filled with defaults. Nothing is cached:
// every call parses the environment again.
//
// Example:
//
//	type StorageConfig struct {
//		Dir string `env:"STORAGE_DIR" envDefault:"./codes"`
//	}
//
//	var cfg StorageConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, files ...string) error {
	return LoadPrefixed(v, "", files...)
}

// LoadPrefixed works like Load but prepends prefix to every variable name,
// including those of nested structs.
func LoadPrefixed[T any](v *T, prefix string, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := loadEnvFiles(files...); err != nil {
		return err
	}
	if err := env.ParseWithOptions(v, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
//
// Example:
//
//	var cfg StorageConfig
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
