// Package experiment runs hash collision experiments: a single bucket
// assignment pass over one input sequence, and sweeps over the cross-product
// of table sizes and input sizes.
package experiment

import (
	"github.com/pkg/errors"

	"github.com/noahbean33/hash-function-simulation/pkg/hashfunc"
)

// Run assigns every input to a bucket using the given hash function and
// tallies collisions. An input collides when its bucket already holds at
// least one earlier input; the occupancy count increments either way. The
// input sequence is not modified and no state survives between calls.
func Run(function hashfunc.HashFunction, tableSize int, inputs []interface{}) (*Result, error) {
	if function == nil {
		return nil, configurationErrorf("no hash function given")
	}
	if tableSize <= 0 {
		return nil, configurationErrorf("table size must be positive, got %d", tableSize)
	}
	if len(inputs) == 0 {
		return nil, invalidInputErrorf("cannot compute a collision probability over an empty input sequence")
	}

	result := &Result{BucketCounts: make([]int, tableSize)}
	for i, value := range inputs {
		bucket, err := function.Hash(value, tableSize)
		if err != nil {
			return nil, errors.Wrapf(err, "hashing input %d of %d", i+1, len(inputs))
		}
		if bucket < 0 || bucket >= tableSize {
			return nil, errors.Errorf("hash function %q produced bucket %d outside a table of size %d",
				function.Name(), bucket, tableSize)
		}

		if result.BucketCounts[bucket] > 0 {
			result.TotalCollisions++
		}
		result.BucketCounts[bucket]++
	}

	result.CollisionProbability = float64(result.TotalCollisions) / float64(len(inputs))
	return result, nil
}
