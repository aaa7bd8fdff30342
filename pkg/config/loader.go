package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the given configuration struct from environment variables.
//
// On the first call it also attempts to load a local .env file; a missing
// file is not an error. Parsing is driven by `env` struct tags.
//
// Example:
//
//	type CheckoutConfig struct {
//		EndpointURL string `env:"CHECKOUT_ENDPOINT_URL,required"`
//		SuccessURL  string `env:"CHECKOUT_SUCCESS_URL" envDefault:"/success"`
//	}
//
//	var cfg CheckoutConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional in production environments.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Intended for configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
