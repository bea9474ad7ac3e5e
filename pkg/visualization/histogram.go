package visualization

import (
	"fmt"
	"io"
	"strings"
)

// DefaultBarWidth is the width of the longest occupancy bar drawn by
// Histogram.
const DefaultBarWidth = 60

// Histogram renders a horizontal bar per bucket showing its occupancy,
// scaled so the fullest bucket spans DefaultBarWidth characters.
func Histogram(w io.Writer, bucketCounts []int, title string) {
	maxCount := 0
	for _, count := range bucketCounts {
		if count > maxCount {
			maxCount = count
		}
	}

	fmt.Fprintln(w, title)
	for bucket, count := range bucketCounts {
		width := 0
		if maxCount > 0 {
			width = count * DefaultBarWidth / maxCount
		}
		fmt.Fprintf(w, "%6d | %-*s %d\n", bucket, DefaultBarWidth, strings.Repeat("#", width), count)
	}
}
