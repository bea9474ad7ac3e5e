package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/noahbean33/hash-function-simulation/pkg/conf"
	"github.com/noahbean33/hash-function-simulation/pkg/experiment"
	"github.com/noahbean33/hash-function-simulation/pkg/generate"
	"github.com/noahbean33/hash-function-simulation/pkg/hashfunc"
	"github.com/noahbean33/hash-function-simulation/pkg/utils/errutil"
	"github.com/noahbean33/hash-function-simulation/pkg/visualization"
)

var (
	hashFunctionFlag = conf.NewStringFlag(
		"hash_function",
		"Hash function to profile: modulo, polynomial or builtin.",
		hashfunc.BuiltInName)
	tableSizesFlag = conf.NewIntListFlag(
		"table_sizes",
		"Comma-separated list of hash table sizes.",
		10, 100, 1000, 10000)
	inputSizesFlag = conf.NewIntListFlag(
		"input_sizes",
		"Comma-separated list of input sizes.",
		100, 1000, 10000, 100000)
	distributionFlag = conf.NewStringFlag(
		"distribution",
		"Input distribution: random-integers, random-strings or structured.",
		generate.RandomIntegersName)
	stringLengthFlag = conf.NewIntFlag(
		"string_length",
		"Length of generated strings for the random-strings distribution.",
		10)
	intLowFlag = conf.NewIntFlag(
		"int_low",
		"Lowest value generated by the random-integers distribution.",
		0)
	intHighFlag = conf.NewIntFlag(
		"int_high",
		"Highest value generated by the random-integers distribution.",
		1000000)
	polynomialBaseFlag = conf.NewIntFlag(
		"polynomial_base",
		"Base of the polynomial rolling hash.",
		hashfunc.DefaultPolynomialBase)
	seedFlag = conf.NewInt64Flag(
		"seed",
		"Random seed for reproducible input generation. 0 seeds from the clock.",
		0)
	csvFlag = conf.NewStringFlag(
		"csv",
		"Path to write sweep results as CSV. Empty disables the export.",
		"")
	resultsDirFlag = conf.NewBoolFlag(
		"results_dir",
		"Create a results directory recording the run configuration.",
		false)
)

func newHashFunction() hashfunc.HashFunction {
	if hashFunctionFlag.Value() == hashfunc.PolynomialName {
		function, err := hashfunc.NewPolynomialRolling(polynomialBaseFlag.Value())
		errutil.CheckWithContext(err, "Cannot build polynomial hash function")
		return function
	}

	function, err := hashfunc.New(hashFunctionFlag.Value())
	errutil.CheckWithContext(err, "Cannot build hash function")
	return function
}

func newDistribution() generate.Distribution {
	distribution, err := generate.New(distributionFlag.Value(), generate.Config{
		Low:    intLowFlag.Value(),
		High:   intHighFlag.Value(),
		Length: stringLengthFlag.Value(),
	})
	errutil.CheckWithContext(err, "Cannot build input distribution")
	return distribution
}

func main() {
	conf.SetAppName("collision-profile")
	conf.SetHelp(`Collision profile runs hash bucket assignment experiments over a cross-product
of table sizes and input sizes and reports collision statistics per cell.`)

	errutil.CheckWithContext(conf.ParseFlags(), "Cannot parse command line flags")
	logrus.SetLevel(conf.LogLevel())
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.100"})

	session := experiment.NewSession()
	logrus.Info("Starting collision profile with session ", session.ID)

	if resultsDirFlag.Value() {
		workDir, err := os.Getwd()
		errutil.CheckWithContext(err, "Cannot determine working directory")
		resultsDir, err := session.CreateResultsDir(workDir)
		errutil.CheckWithContext(err, "Cannot create results directory")
		logrus.Info("Recording run configuration in ", resultsDir)
	}

	function := newHashFunction()
	cfg := experiment.SweepConfig{
		Function:     function,
		TableSizes:   tableSizesFlag.Value(),
		InputSizes:   inputSizesFlag.Value(),
		Distribution: newDistribution(),
		Seed:         seedFlag.Value(),
	}

	// NOTE: The bar would interleave with log lines on more verbose levels.
	var bar *pb.ProgressBar
	if conf.LogLevel() == logrus.ErrorLevel {
		bar = pb.StartNew(len(cfg.TableSizes) * len(cfg.InputSizes))
		bar.ShowCounters = false
		bar.ShowTimeLeft = true
		cfg.OnCell = func(experiment.CellKey, *experiment.Result) {
			bar.Increment()
		}
	}

	sweepStart := time.Now()
	results, err := experiment.Sweep(cfg)
	if bar != nil {
		bar.Finish()
	}
	errutil.CheckWithContext(err, "Sweep failed")
	logrus.Infof("Sweep of %d cells finished in %s", len(results), time.Since(sweepStart))

	for _, key := range results.Keys() {
		result := results[key]
		logrus.Infof("Hash Function: %s, Table Size: %d, Inputs: %d, Collisions: %d, Collision Probability: %.4f",
			function.Name(), key.TableSize, key.InputSize, result.TotalCollisions, result.CollisionProbability)
	}

	summary, err := visualization.NewSummaryTable(results)
	errutil.CheckWithContext(err, "Cannot summarize sweep results")
	summary.Draw(os.Stdout)

	minTableSize := results.TableSizes()[0]
	minInputSize := results.InputSizes()[0]

	fmt.Printf("\nCollisions vs. table size (input size %d, function %s)\n", minInputSize, function.Name())
	visualization.CollisionsByTableSize(results, minInputSize).Draw(os.Stdout)

	fmt.Printf("\nCollision probability vs. input size (table size %d, function %s)\n", minTableSize, function.Name())
	visualization.ProbabilityByInputSize(results, minTableSize).Draw(os.Stdout)

	smallestCell := results[experiment.CellKey{TableSize: minTableSize, InputSize: minInputSize}]
	fmt.Println()
	visualization.Histogram(os.Stdout, smallestCell.BucketCounts,
		fmt.Sprintf("Bucket distribution (table size %d, inputs %d, function %s)",
			minTableSize, minInputSize, function.Name()))

	if csvFlag.Value() != "" {
		file, err := os.Create(csvFlag.Value())
		errutil.CheckWithContext(err, "Cannot create CSV file")
		defer file.Close()

		errutil.CheckWithContext(visualization.WriteCSV(file, results), "Cannot write CSV file")
		logrus.Info("Sweep results written to ", csvFlag.Value())
	}
}
