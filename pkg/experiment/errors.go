package experiment

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/noahbean33/hash-function-simulation/pkg/generate"
	"github.com/noahbean33/hash-function-simulation/pkg/hashfunc"
)

// ConfigurationError informs that sweep parameters failed eager validation.
// No input is generated and no experiment runs once one is found, so a sweep
// never partially completes on a bad parameter.
type ConfigurationError struct {
	msg string
}

// Error - Used to notify about invalid sweep configuration.
func (e ConfigurationError) Error() string {
	return e.msg
}

func configurationErrorf(format string, a ...interface{}) ConfigurationError {
	return ConfigurationError{msg: fmt.Sprintf(format, a...)}
}

// InvalidInputError informs that an input sequence is too small to compute a
// collision probability over. A zero-length run surfaces as an error rather
// than a zero probability, which would misrepresent "no data" as
// "no collisions".
type InvalidInputError struct {
	msg string
}

// Error - Used to notify about an unusable input sequence.
func (e InvalidInputError) Error() string {
	return e.msg
}

func invalidInputErrorf(format string, a ...interface{}) InvalidInputError {
	return InvalidInputError{msg: fmt.Sprintf(format, a...)}
}

// IsConfigurationError reports whether err, or the cause it wraps, is a
// configuration error from this package or from the hashfunc and generate
// packages.
func IsConfigurationError(err error) bool {
	switch errors.Cause(err).(type) {
	case ConfigurationError, hashfunc.ConfigurationError, generate.ConfigurationError:
		return true
	}
	return false
}

// IsInvalidInputError reports whether err, or the cause it wraps, is an
// InvalidInputError.
func IsInvalidInputError(err error) bool {
	_, ok := errors.Cause(err).(InvalidInputError)
	return ok
}
