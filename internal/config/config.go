// Package config holds the runtime configuration of the cryptkit commands.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"
)

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

// Config holds the configuration of every command. Each command unmarshals
// the whole struct and validates only its own section.
type Config struct {
	// Show prints the configuration and exits
	Show bool

	// Transform configures encrypt and decrypt
	Transform Transform `mapstructure:",squash"`

	// OTP configures hotp
	OTP OTP `mapstructure:",squash"`

	// Digest configures digest
	Digest Digest `mapstructure:",squash"`

	// DES configures des
	DES DES `mapstructure:",squash"`
}

// Display returns the value of the Show field.
func (c Config) Display() bool {
	return c.Show
}

// crossChecker is implemented by sections with rules the struct tags cannot express.
type crossChecker interface {
	check() error
}

// Validate checks config against its struct tags and cross-field rules.
// It returns a wrapped ErrUsage if any rule is violated.
func (c Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	if err := registerHexBytes(validator); err != nil {
		return fmt.Errorf("registering hexbytes: %w", err)
	}

	errs := validator.Validate(config)

	if checker, ok := config.(crossChecker); ok && errs == nil {
		if err := checker.check(); err != nil {
			errs = append(errs, err)
		}
	}

	switch {
	case errs == nil:
		return nil
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	default:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}
}
