// Package hashfunc provides the family of bucket selection functions used by
// the collision experiments. Every function maps a value and a table size to
// a bucket index in [0, tableSize).
//
// The "builtin" selector is implemented as 64-bit FNV-1a over the value's
// textual representation. The analysis this package reproduces used a
// language-provided general purpose hash that is randomized per process; a
// fixed, documented algorithm is substituted here so identical runs produce
// identical bucket assignments.
package hashfunc

import (
	"fmt"
	"hash/fnv"
	"strconv"
)

// Selector names accepted by New.
const (
	ModuloName     = "modulo"
	PolynomialName = "polynomial"
	BuiltInName    = "builtin"
)

// DefaultPolynomialBase is the base of the polynomial rolling hash when none
// is configured.
const DefaultPolynomialBase = 31

// ConfigurationError informs that a hash function was requested with invalid
// parameters, e.g. a non-positive table size or an unknown selector name.
type ConfigurationError struct {
	msg string
}

// Error - Used to notify about invalid hash function configuration.
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

// HashFunction - Interface that maps a value and a table size to a bucket
// index. Implementations are pure: the same value, table size and parameters
// always produce the same bucket, and no state is shared between calls.
type HashFunction interface {
	// Name returns the selector name the function is registered under.
	Name() string

	// Hash returns a bucket index in [0, tableSize) for the given value.
	// A non-positive tableSize is a ConfigurationError.
	Hash(value interface{}, tableSize int) (int, error)
}

// New returns the hash function registered under the given selector name.
func New(name string) (HashFunction, error) {
	switch name {
	case ModuloName:
		return Modulo{}, nil
	case PolynomialName:
		polynomial, err := NewPolynomialRolling(DefaultPolynomialBase)
		if err != nil {
			return nil, err
		}
		return polynomial, nil
	case BuiltInName:
		return FNV{}, nil
	}
	return nil, configurationErrorf("unknown hash function %q, expected one of %v", name, Names())
}

// Names returns all selector names accepted by New.
func Names() []string {
	return []string{ModuloName, PolynomialName, BuiltInName}
}

// canonicalText is the textual representation values are hashed by when a
// function works on text rather than integers. Integers render in base 10, so
// the int 42 and the string "42" land in the same bucket.
func canonicalText(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func checkTableSize(tableSize int) error {
	if tableSize <= 0 {
		return configurationErrorf("table size must be positive, got %d", tableSize)
	}
	return nil
}

// Modulo buckets integer values by their non-negative remainder, so negative
// integers stay inside the table. Values that are not integers fall back to
// an FNV-1a hash of their text, reduced modulo the table size.
type Modulo struct{}

// Name returns the modulo selector name.
func (Modulo) Name() string { return ModuloName }

// Hash returns value mod tableSize for integers and a reduced FNV-1a hash
// otherwise.
func (Modulo) Hash(value interface{}, tableSize int) (int, error) {
	if err := checkTableSize(tableSize); err != nil {
		return 0, err
	}

	switch v := value.(type) {
	case int:
		return ((v % tableSize) + tableSize) % tableSize, nil
	case int64:
		size := int64(tableSize)
		return int(((v % size) + size) % size), nil
	}
	return fnvBucket(canonicalText(value), tableSize), nil
}

// PolynomialRolling folds the text of a value left to right, multiplying the
// accumulator by Base and adding each code point, reducing modulo the table
// size at every step so the accumulator never grows unbounded. The empty
// string lands in bucket 0.
type PolynomialRolling struct {
	Base int
}

// NewPolynomialRolling returns a polynomial rolling hash with the given base.
func NewPolynomialRolling(base int) (PolynomialRolling, error) {
	if base <= 0 {
		return PolynomialRolling{}, configurationErrorf("polynomial base must be positive, got %d", base)
	}
	return PolynomialRolling{Base: base}, nil
}

// Name returns the polynomial selector name.
func (PolynomialRolling) Name() string { return PolynomialName }

// Hash folds the value's text into a bucket index.
func (p PolynomialRolling) Hash(value interface{}, tableSize int) (int, error) {
	if err := checkTableSize(tableSize); err != nil {
		return 0, err
	}

	base := p.Base
	if base == 0 {
		base = DefaultPolynomialBase
	}

	h := 0
	for _, codePoint := range canonicalText(value) {
		h = (h*base + int(codePoint)) % tableSize
	}
	return h, nil
}

// FNV is the general purpose "builtin" function: a fixed 64-bit FNV-1a over
// the value's text, reduced modulo the table size.
type FNV struct{}

// Name returns the builtin selector name.
func (FNV) Name() string { return BuiltInName }

// Hash returns the reduced FNV-1a hash of the value's text.
func (FNV) Hash(value interface{}, tableSize int) (int, error) {
	if err := checkTableSize(tableSize); err != nil {
		return 0, err
	}
	return fnvBucket(canonicalText(value), tableSize), nil
}

func fnvBucket(text string, tableSize int) int {
	h := fnv.New64a()
	// The stdlib hash.Hash Write never returns an error.
	h.Write([]byte(text))
	return int(h.Sum64() % uint64(tableSize))
}
