package conf

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

// flagType is an internal interface for all flags.
// Every flag has a method deriving its environment variable name and a
// `clear` method removing that variable from the environment.
type flagType interface {
	envName() string
	clear()
}

// definedFlags stores all the defined flags. It is used to detect conflicting
// definitions of the same flag name.
var definedFlags = map[string]flagType{}

// cliAndEnvFlag represents an option settable from both CLI and an
// environment variable. It stores the generic data for each defined flag.
type cliAndEnvFlag struct {
	*kingpin.FlagClause
}

func newCliAndEnvFlag(flagName string, description string, defaultValues ...string) *cliAndEnvFlag {
	if definedFlags[flagName] != nil {
		panic(fmt.Sprintf("flag %q was defined twice; flag names must be unique", flagName))
	}

	c := &cliAndEnvFlag{FlagClause: app.Flag(flagName, description)}
	c.OverrideDefaultFromEnvar(c.envName())

	for _, defaultValue := range defaultValues {
		if defaultValue == "" {
			continue
		}
		c.Default(defaultValue)
	}

	return c
}

// envName returns the flag name converted to its environment variable name:
// uppercased with the application prefix, e.g. "seed" becomes "HASHSIM_SEED".
func (f *cliAndEnvFlag) envName() string {
	return fmt.Sprintf("%s_%s", EnvironmentPrefix, strings.ToUpper(f.Model().Name))
}

// clear unsets the corresponding environment variable.
func (f *cliAndEnvFlag) clear() {
	os.Unsetenv(f.envName())
}

// StringFlag represents a flag with a string value.
type StringFlag struct {
	*cliAndEnvFlag
	defaultValue string
	value        *string
}

// NewStringFlag is a constructor of StringFlag struct.
func NewStringFlag(flagName string, description string, defaultValue string) *StringFlag {
	flagDef := &StringFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
		defaultValue:  defaultValue,
	}

	flagDef.value = flagDef.String()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns the value of the defined flag after parse.
// NOTE: If conf is not parsed it returns the default value (!)
func (s StringFlag) Value() string {
	if !isEnvParsed {
		return s.defaultValue
	}

	return *s.value
}

// IntFlag represents a flag with an int value.
type IntFlag struct {
	*cliAndEnvFlag
	defaultValue int
	value        *int
}

// NewIntFlag is a constructor of IntFlag struct.
func NewIntFlag(flagName string, description string, defaultValue int) *IntFlag {
	flagDef := &IntFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.Itoa(defaultValue)),
		defaultValue:  defaultValue,
	}

	flagDef.value = flagDef.Int()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns the value of the defined flag after parse.
// NOTE: If conf is not parsed it returns the default value (!)
func (i IntFlag) Value() int {
	if !isEnvParsed {
		return i.defaultValue
	}

	return *i.value
}

// Int64Flag represents a flag with an int64 value.
type Int64Flag struct {
	*cliAndEnvFlag
	defaultValue int64
	value        *int64
}

// NewInt64Flag is a constructor of Int64Flag struct.
func NewInt64Flag(flagName string, description string, defaultValue int64) *Int64Flag {
	flagDef := &Int64Flag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.FormatInt(defaultValue, 10)),
		defaultValue:  defaultValue,
	}

	flagDef.value = flagDef.Int64()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns the value of the defined flag after parse.
// NOTE: If conf is not parsed it returns the default value (!)
func (i Int64Flag) Value() int64 {
	if !isEnvParsed {
		return i.defaultValue
	}

	return *i.value
}

// BoolFlag represents a flag with a bool value.
type BoolFlag struct {
	*cliAndEnvFlag
	defaultValue bool
	value        *bool
}

// NewBoolFlag is a constructor of BoolFlag struct.
func NewBoolFlag(flagName string, description string, defaultValue bool) *BoolFlag {
	flagDef := &BoolFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.FormatBool(defaultValue)),
		defaultValue:  defaultValue,
	}

	flagDef.value = flagDef.Bool()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns the value of the defined flag after parse.
// NOTE: If conf is not parsed it returns the default value (!)
func (b BoolFlag) Value() bool {
	if !isEnvParsed {
		return b.defaultValue
	}

	return *b.value
}

// IntListFlag represents a flag holding a comma-separated list of integers.
type IntListFlag struct {
	*cliAndEnvFlag
	defaultValue []int
	value        *[]int
}

// NewIntListFlag is a constructor of IntListFlag struct.
func NewIntListFlag(flagName string, description string, elemsInDefaultList ...int) *IntListFlag {
	defaults := make([]string, len(elemsInDefaultList))
	for i, elem := range elemsInDefaultList {
		defaults[i] = strconv.Itoa(elem)
	}

	flagDef := &IntListFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strings.Join(defaults, intListDelimiter)),
		defaultValue:  elemsInDefaultList,
	}

	flagDef.value = IntList(flagDef)
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns the value of the defined flag after parse.
// NOTE: If conf is not parsed it returns the default value (!)
func (i IntListFlag) Value() []int {
	if !isEnvParsed {
		return i.defaultValue
	}

	return *i.value
}
