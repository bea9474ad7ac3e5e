// Package generate produces the input sequences consumed by collision
// experiments. Randomness is injected: callers own a *rand.Rand and the
// package never touches the process-wide source, which keeps seeded runs
// reproducible and per-cell regeneration testable.
package generate

import (
	"fmt"
	"math/rand"
)

// Alphabet is the symbol set random strings are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Selector names accepted by New.
const (
	RandomIntegersName = "random-integers"
	RandomStringsName  = "random-strings"
	StructuredName     = "structured"
)

// ConfigurationError informs that a distribution was requested with invalid
// parameters, e.g. an empty integer range or an unknown selector name.
type ConfigurationError struct {
	msg string
}

// Error - Used to notify about invalid distribution configuration.
func (e ConfigurationError) Error() string {
	return e.msg
}

func configurationErrorf(format string, a ...interface{}) ConfigurationError {
	return ConfigurationError{msg: fmt.Sprintf(format, a...)}
}

// IsConfigurationError reports whether err is a ConfigurationError from this
// package.
func IsConfigurationError(err error) bool {
	_, ok := err.(ConfigurationError)
	return ok
}

// Config carries the distribution parameters supplied on the command line.
// Each distribution reads only the fields it needs.
type Config struct {
	// Low and High bound the random-integers distribution, both inclusive.
	Low  int
	High int
	// Length is the exact length of every random string.
	Length int
}

// Distribution produces a finite ordered sequence of input values. A
// distribution is immutable configuration, created once per sweep.
type Distribution interface {
	// Name returns the selector name the distribution is registered under.
	Name() string

	// Validate reports configuration errors before any value is generated.
	Validate() error

	// Generate returns n freshly drawn values, n >= 0. The sequence is owned
	// by the caller and never reused by the distribution.
	Generate(r *rand.Rand, n int) ([]interface{}, error)
}

// New returns the distribution registered under the given selector name.
func New(name string, cfg Config) (Distribution, error) {
	switch name {
	case RandomIntegersName:
		return RandomIntegers{Low: cfg.Low, High: cfg.High}, nil
	case RandomStringsName:
		return RandomStrings{Length: cfg.Length}, nil
	case StructuredName:
		return Structured{}, nil
	}
	return nil, configurationErrorf("unknown distribution %q, expected one of %v", name, Names())
}

// Names returns all selector names accepted by New.
func Names() []string {
	return []string{RandomIntegersName, RandomStringsName, StructuredName}
}

func checkCount(n int) error {
	if n < 0 {
		return configurationErrorf("number of inputs must not be negative, got %d", n)
	}
	return nil
}

// RandomIntegers draws uniformly, with replacement, from the closed range
// [Low, High].
type RandomIntegers struct {
	Low  int
	High int
}

// Name returns the random-integers selector name.
func (RandomIntegers) Name() string { return RandomIntegersName }

// Validate rejects an empty range.
func (d RandomIntegers) Validate() error {
	if d.Low > d.High {
		return configurationErrorf("integer range is empty: low %d > high %d", d.Low, d.High)
	}
	return nil
}

// Generate returns n uniform draws from [Low, High].
func (d RandomIntegers) Generate(r *rand.Rand, n int) ([]interface{}, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := checkCount(n); err != nil {
		return nil, err
	}

	span := d.High - d.Low + 1
	values := make([]interface{}, n)
	for i := range values {
		values[i] = d.Low + r.Intn(span)
	}
	return values, nil
}

// RandomStrings draws strings of exactly Length characters, each character
// uniform over the 62-symbol alphanumeric alphabet.
type RandomStrings struct {
	Length int
}

// Name returns the random-strings selector name.
func (RandomStrings) Name() string { return RandomStringsName }

// Validate rejects a negative string length. Length 0 is degenerate but
// legal: every draw is the empty string.
func (d RandomStrings) Validate() error {
	if d.Length < 0 {
		return configurationErrorf("string length must not be negative, got %d", d.Length)
	}
	return nil
}

// Generate returns n random alphanumeric strings.
func (d RandomStrings) Generate(r *rand.Rand, n int) ([]interface{}, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := checkCount(n); err != nil {
		return nil, err
	}

	values := make([]interface{}, n)
	buf := make([]byte, d.Length)
	for i := range values {
		for j := range buf {
			buf[j] = Alphabet[r.Intn(len(Alphabet))]
		}
		values[i] = string(buf)
	}
	return values, nil
}

// Structured produces the dense sequence 0, 1, ..., n-1. It consumes no
// entropy and is collision free under an identity-like hash with a large
// enough table, which makes it a useful baseline.
type Structured struct{}

// Name returns the structured selector name.
func (Structured) Name() string { return StructuredName }

// Validate always succeeds; the distribution has no parameters.
func (Structured) Validate() error { return nil }

// Generate returns the integers 0 through n-1 in order.
func (Structured) Generate(_ *rand.Rand, n int) ([]interface{}, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}

	values := make([]interface{}, n)
	for i := range values {
		values[i] = i
	}
	return values, nil
}
