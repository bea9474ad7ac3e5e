// Package conf is a helper for configuring the simulation tools from both the
// command line interface and environment variables.
// It gives the ability to register arguments which will be fetched from
// CLI input OR an environment variable.
// By default it registers the following option:
// <HASHSIM_LOG> --log <Log level: debug, info, warn, error, fatal, panic> Default: error
//
// When `ParseEnv` is executed, only the environment arguments are parsed and
// ready to be used in the flag variables. It can be run multiple times.
//
// When `ParseFlags` is executed, the arguments from both CLI and Env are parsed.
// In case of the --help option it prints help. It is recommended to run it only
// once, after all packages have registered their options.
package conf

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// EnvironmentPrefix is prepended to uppercased flag names to form the
// environment variable each flag can also be set through. For instance
// "table_sizes" can be set with HASHSIM_TABLE_SIZES.
const EnvironmentPrefix = "HASHSIM"

var (
	app = kingpin.New("hashsim", "No help available")

	// Default flags and values.
	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"error", // Default Error log level.
	)
	isEnvParsed = false
)

// SetHelp sets the help message for the CLI.
// We need to expose this function so other packages can set the app help.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
// We need to expose this function so other packages can set the app name.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns specified app name.
func AppName() string {
	return app.Name
}

// LogLevel returns the configured log level from input option or env variable.
// If it cannot parse the configured level, it returns the default value.
func LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(logLevelFlag.defaultValue)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}

// ParseFlags parses both the command line flags of the process and
// environment variables.
func ParseFlags() error {
	_, err := app.Parse(os.Args[1:])
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrapf(err, "could not parse command line flags")
}

// ParseEnv parses the environment for arguments.
func ParseEnv() error {
	_, err := app.Parse([]string{})
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrapf(err, "could not parse environment flags")
}

// GetFlags returns the current value of every defined flag, keyed by flag name.
// Kingpin builtin flags are excluded; their names contain a dash which makes
// them incompatible with environment based configuration.
func GetFlags() map[string]string {
	flagsMap := map[string]string{}
	for _, flag := range app.Model().Flags {
		if strings.Contains(flag.Name, "-") {
			continue
		}
		flagsMap[flag.Name] = flag.Value.String()
	}
	return flagsMap
}
