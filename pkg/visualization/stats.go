package visualization

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// BucketStats summarizes one cell's bucket occupancy.
type BucketStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// NewBucketStats computes occupancy statistics over a cell's bucket counts.
func NewBucketStats(bucketCounts []int) (BucketStats, error) {
	data := stats.LoadRawData(bucketCounts)

	mean, err := data.Mean()
	if err != nil {
		return BucketStats{}, errors.Wrap(err, "computing mean bucket occupancy")
	}
	stdDev, err := data.StandardDeviation()
	if err != nil {
		return BucketStats{}, errors.Wrap(err, "computing bucket occupancy deviation")
	}
	min, err := data.Min()
	if err != nil {
		return BucketStats{}, errors.Wrap(err, "computing minimum bucket occupancy")
	}
	max, err := data.Max()
	if err != nil {
		return BucketStats{}, errors.Wrap(err, "computing maximum bucket occupancy")
	}

	return BucketStats{Mean: mean, StdDev: stdDev, Min: min, Max: max}, nil
}
