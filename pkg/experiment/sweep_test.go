package experiment

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/noahbean33/hash-function-simulation/pkg/generate"
	"github.com/noahbean33/hash-function-simulation/pkg/hashfunc"
)

func TestSweep(t *testing.T) {
	Convey("While sweeping over table sizes and input sizes", t, func() {
		cfg := SweepConfig{
			Function:     hashfunc.Modulo{},
			TableSizes:   []int{10, 100},
			InputSizes:   []int{50, 200},
			Distribution: generate.RandomIntegers{Low: 0, High: 1000000},
			Seed:         42,
		}

		Convey("Every cell of the cross-product is present and consistent", func() {
			results, err := Sweep(cfg)

			So(err, ShouldBeNil)
			So(len(results), ShouldEqual, 4)
			for _, tableSize := range cfg.TableSizes {
				for _, inputSize := range cfg.InputSizes {
					result, ok := results[CellKey{TableSize: tableSize, InputSize: inputSize}]

					So(ok, ShouldBeTrue)
					So(len(result.BucketCounts), ShouldEqual, tableSize)
					sum := 0
					for _, count := range result.BucketCounts {
						sum += count
					}
					So(sum, ShouldEqual, inputSize)
					So(result.CollisionProbability, ShouldBeBetweenOrEqual, 0.0, 1.0)
				}
			}
		})

		Convey("Keys come back sorted by table size then input size", func() {
			results, err := Sweep(cfg)

			So(err, ShouldBeNil)
			So(results.Keys(), ShouldResemble, []CellKey{
				{TableSize: 10, InputSize: 50},
				{TableSize: 10, InputSize: 200},
				{TableSize: 100, InputSize: 50},
				{TableSize: 100, InputSize: 200},
			})
			So(results.TableSizes(), ShouldResemble, []int{10, 100})
			So(results.InputSizes(), ShouldResemble, []int{50, 200})
		})

		Convey("The same seed reproduces identical results", func() {
			first, err := Sweep(cfg)
			So(err, ShouldBeNil)
			second, err := Sweep(cfg)
			So(err, ShouldBeNil)

			for key, result := range first {
				So(second[key].TotalCollisions, ShouldEqual, result.TotalCollisions)
				So(second[key].BucketCounts, ShouldResemble, result.BucketCounts)
			}
		})

		Convey("Cells are observed as they finish", func() {
			observed := []CellKey{}
			cfg.OnCell = func(key CellKey, result *Result) {
				observed = append(observed, key)
			}

			_, err := Sweep(cfg)

			So(err, ShouldBeNil)
			So(observed, ShouldResemble, []CellKey{
				{TableSize: 10, InputSize: 50},
				{TableSize: 10, InputSize: 200},
				{TableSize: 100, InputSize: 50},
				{TableSize: 100, InputSize: 200},
			})
		})

		Convey("An input size of zero is rejected before anything runs", func() {
			cfg.InputSizes = []int{100, 0}

			_, err := Sweep(cfg)

			So(err, ShouldNotBeNil)
			So(IsInvalidInputError(err), ShouldBeTrue)
		})

		Convey("Empty size lists are configuration errors", func() {
			broken := cfg
			broken.TableSizes = []int{}
			_, err := Sweep(broken)
			So(IsConfigurationError(err), ShouldBeTrue)

			broken = cfg
			broken.InputSizes = nil
			_, err = Sweep(broken)
			So(IsConfigurationError(err), ShouldBeTrue)
		})

		Convey("A non-positive table size names the offending parameter", func() {
			cfg.TableSizes = []int{10, -5}

			_, err := Sweep(cfg)

			So(err, ShouldNotBeNil)
			So(IsConfigurationError(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "-5")
		})

		Convey("A broken distribution fails the sweep eagerly", func() {
			cfg.Distribution = generate.RandomIntegers{Low: 10, High: 5}

			_, err := Sweep(cfg)

			So(err, ShouldNotBeNil)
			So(IsConfigurationError(err), ShouldBeTrue)
		})

		Convey("A zero-length string distribution piles everything into bucket 0", func() {
			polynomial, err := hashfunc.NewPolynomialRolling(31)
			So(err, ShouldBeNil)
			cfg.Function = polynomial
			cfg.Distribution = generate.RandomStrings{Length: 0}
			cfg.TableSizes = []int{16}
			cfg.InputSizes = []int{10}

			results, err := Sweep(cfg)

			So(err, ShouldBeNil)
			result := results[CellKey{TableSize: 16, InputSize: 10}]
			So(result.BucketCounts[0], ShouldEqual, 10)
			So(result.TotalCollisions, ShouldEqual, 9)
		})

		Convey("The structured distribution with large tables has no collisions", func() {
			cfg.Distribution = generate.Structured{}
			cfg.TableSizes = []int{200, 1000}
			cfg.InputSizes = []int{200}

			results, err := Sweep(cfg)

			So(err, ShouldBeNil)
			for _, result := range results {
				So(result.TotalCollisions, ShouldEqual, 0)
			}
		})
	})
}
