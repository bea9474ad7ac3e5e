package experiment

import (
	"fmt"
	"sort"
)

// CellKey addresses one sweep cell: a single (table size, input size)
// combination. Results are looked up by this composite key rather than by
// insertion order.
type CellKey struct {
	TableSize int
	InputSize int
}

// String renders the key the way sweep errors and logs refer to a cell.
func (k CellKey) String() string {
	return fmt.Sprintf("(table_size=%d, input_size=%d)", k.TableSize, k.InputSize)
}

// Result holds the outcome of a single collision experiment. It is created
// once per cell and not modified afterwards.
type Result struct {
	// TotalCollisions counts inputs that landed in an already occupied
	// bucket. A bucket receiving k inputs contributes k-1 collisions.
	TotalCollisions int

	// CollisionProbability is TotalCollisions divided by the number of
	// inputs, in [0, 1].
	CollisionProbability float64

	// BucketCounts holds the final occupancy of every bucket; its length is
	// the table size and its sum the number of inputs.
	BucketCounts []int
}

// SweepResults maps every sweep cell to its experiment outcome.
type SweepResults map[CellKey]*Result

// Keys returns the cell keys sorted by table size, then input size.
func (s SweepResults) Keys() []CellKey {
	keys := make([]CellKey, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].TableSize != keys[j].TableSize {
			return keys[i].TableSize < keys[j].TableSize
		}
		return keys[i].InputSize < keys[j].InputSize
	})
	return keys
}

// TableSizes returns the distinct table sizes present, ascending.
func (s SweepResults) TableSizes() []int {
	return s.distinct(func(key CellKey) int { return key.TableSize })
}

// InputSizes returns the distinct input sizes present, ascending.
func (s SweepResults) InputSizes() []int {
	return s.distinct(func(key CellKey) int { return key.InputSize })
}

func (s SweepResults) distinct(field func(CellKey) int) []int {
	seen := map[int]bool{}
	values := []int{}
	for key := range s {
		value := field(key)
		if !seen[value] {
			seen[value] = true
			values = append(values, value)
		}
	}
	sort.Ints(values)
	return values
}
