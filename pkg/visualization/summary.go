package visualization

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/noahbean33/hash-function-simulation/pkg/experiment"
)

// NewSummaryTable builds one row per sweep cell, sorted by table size then
// input size, with the collision counts and bucket occupancy statistics.
func NewSummaryTable(results experiment.SweepResults) (*Table, error) {
	headers := []string{"table size", "input size", "collisions", "probability", "bucket mean", "bucket stddev", "max bucket"}

	data := [][]string{}
	for _, key := range results.Keys() {
		result := results[key]

		bucketStats, err := NewBucketStats(result.BucketCounts)
		if err != nil {
			return nil, errors.Wrapf(err, "summarizing cell %s", key)
		}

		data = append(data, []string{
			strconv.Itoa(key.TableSize),
			strconv.Itoa(key.InputSize),
			strconv.Itoa(result.TotalCollisions),
			fmt.Sprintf("%.4f", result.CollisionProbability),
			fmt.Sprintf("%.2f", bucketStats.Mean),
			fmt.Sprintf("%.2f", bucketStats.StdDev),
			fmt.Sprintf("%.0f", bucketStats.Max),
		})
	}
	return NewTable(headers, data), nil
}

// CollisionsByTableSize builds the collisions and probability series against
// table size for a fixed input size, ascending by table size. Mirrors the
// collisions-vs-table-size plot of the original analysis.
func CollisionsByTableSize(results experiment.SweepResults, inputSize int) *Table {
	headers := []string{"table size", "collisions", "probability"}

	data := [][]string{}
	for _, tableSize := range results.TableSizes() {
		result, ok := results[experiment.CellKey{TableSize: tableSize, InputSize: inputSize}]
		if !ok {
			continue
		}
		data = append(data, []string{
			strconv.Itoa(tableSize),
			strconv.Itoa(result.TotalCollisions),
			fmt.Sprintf("%.4f", result.CollisionProbability),
		})
	}
	return NewTable(headers, data)
}

// ProbabilityByInputSize builds the collision probability series against
// input size for a fixed table size, ascending by input size. Mirrors the
// probability-vs-input-size plot of the original analysis.
func ProbabilityByInputSize(results experiment.SweepResults, tableSize int) *Table {
	headers := []string{"input size", "collisions", "probability"}

	data := [][]string{}
	for _, inputSize := range results.InputSizes() {
		result, ok := results[experiment.CellKey{TableSize: tableSize, InputSize: inputSize}]
		if !ok {
			continue
		}
		data = append(data, []string{
			strconv.Itoa(inputSize),
			strconv.Itoa(result.TotalCollisions),
			fmt.Sprintf("%.4f", result.CollisionProbability),
		})
	}
	return NewTable(headers, data)
}
