package experiment

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/noahbean33/hash-function-simulation/pkg/generate"
	"github.com/noahbean33/hash-function-simulation/pkg/hashfunc"
)

// SweepConfig describes a full cross-product sweep.
type SweepConfig struct {
	// Function is the hash function under test, shared by every cell.
	Function hashfunc.HashFunction

	// TableSizes and InputSizes span the sweep; one experiment runs per
	// (table size, input size) combination.
	TableSizes []int
	InputSizes []int

	// Distribution generates a fresh input sequence for every cell.
	Distribution generate.Distribution

	// Seed for the sweep's own random source. Zero seeds from the clock.
	Seed int64

	// OnCell, when set, is called after every finished cell. It lets the
	// caller drive progress reporting without the engine knowing about it.
	OnCell func(CellKey, *Result)
}

func (c SweepConfig) validate() error {
	if c.Function == nil {
		return configurationErrorf("no hash function given")
	}
	if c.Distribution == nil {
		return configurationErrorf("no input distribution given")
	}
	if err := c.Distribution.Validate(); err != nil {
		return errors.Wrapf(err, "distribution %q", c.Distribution.Name())
	}
	if len(c.TableSizes) == 0 {
		return configurationErrorf("no table sizes given")
	}
	if len(c.InputSizes) == 0 {
		return configurationErrorf("no input sizes given")
	}
	for _, tableSize := range c.TableSizes {
		if tableSize <= 0 {
			return configurationErrorf("table size must be positive, got %d", tableSize)
		}
	}
	for _, inputSize := range c.InputSizes {
		if inputSize < 0 {
			return configurationErrorf("input size must not be negative, got %d", inputSize)
		}
		if inputSize == 0 {
			return invalidInputErrorf("input size 0 would make the collision probability undefined")
		}
	}
	return nil
}

// Sweep runs one experiment per (table size, input size) cell and collects
// the outcomes under their cell keys. Inputs are regenerated for every cell,
// so two cells sharing an input size see different draws. The whole
// configuration is validated before the first input is generated, and the
// first failing cell aborts the sweep with its key in the error.
//
// Cell order is fixed (table sizes outer, input sizes inner, in the order
// given) and the sweep owns its random source, so a non-zero seed reproduces
// identical results run to run.
func Sweep(cfg SweepConfig) (SweepResults, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	logrus.Debugf("sweeping %d cells: function %q, distribution %q, seed %d",
		len(cfg.TableSizes)*len(cfg.InputSizes), cfg.Function.Name(), cfg.Distribution.Name(), seed)

	results := SweepResults{}
	for _, tableSize := range cfg.TableSizes {
		for _, inputSize := range cfg.InputSizes {
			key := CellKey{TableSize: tableSize, InputSize: inputSize}

			inputs, err := cfg.Distribution.Generate(r, inputSize)
			if err != nil {
				return nil, errors.Wrapf(err, "generating inputs for cell %s", key)
			}

			result, err := Run(cfg.Function, tableSize, inputs)
			if err != nil {
				return nil, errors.Wrapf(err, "running cell %s", key)
			}

			logrus.Debugf("cell %s: %d collisions, probability %.4f",
				key, result.TotalCollisions, result.CollisionProbability)

			results[key] = result
			if cfg.OnCell != nil {
				cfg.OnCell(key, result)
			}
		}
	}
	return results, nil
}
