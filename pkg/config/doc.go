// Package config loads typed configuration from the environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - dotenv files are merged into the process environment without
//     overriding variables that are already set;
//   - the environment is parsed into any struct annotated with `env` tags,
//     honouring `envDefault`, `required`, separators and nested prefixes.
//
// There is no package-level state. Each call to Load parses afresh, so two
// components may load the same struct type with different environments.
//
// # Usage
//
//	type Config struct {
//		Currency string `env:"CURRENCY" envDefault:"EUR"`
//	}
//
//	var cfg Config
//	if err := config.LoadPrefixed(&cfg, "PAYCODE_"); err != nil {
//		return err
//	}
//
// # Error Handling
//
//	errors.Is(err, config.ErrParsingConfig)  // bad or missing variable
//	errors.Is(err, config.ErrLoadingEnvFile) // named dotenv file unreadable
//	errors.Is(err, config.ErrNilPointer)     // nil destination
package config
