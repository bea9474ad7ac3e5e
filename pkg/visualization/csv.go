package visualization

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/noahbean33/hash-function-simulation/pkg/experiment"
)

// WriteCSV exports one row per sweep cell, sorted by cell key, for
// downstream plotting tools.
func WriteCSV(w io.Writer, results experiment.SweepResults) error {
	out := csv.NewWriter(w)

	header := []string{"table_size", "input_size", "total_collisions", "collision_probability"}
	if err := out.Write(header); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}

	for _, key := range results.Keys() {
		result := results[key]
		row := []string{
			strconv.Itoa(key.TableSize),
			strconv.Itoa(key.InputSize),
			strconv.Itoa(result.TotalCollisions),
			strconv.FormatFloat(result.CollisionProbability, 'f', 6, 64),
		}
		if err := out.Write(row); err != nil {
			return errors.Wrapf(err, "writing CSV row for cell %s", key)
		}
	}

	out.Flush()
	return errors.Wrap(out.Error(), "flushing CSV")
}
