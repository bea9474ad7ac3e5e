package conf

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const intListDelimiter = ","

// IntListValue is a custom kingpin parser which resolves flag parameters
// consisting of integers delimited by `intListDelimiter`.
// For a flag defined like this:
// `sizes = IntList(kingpin.Flag("table_sizes", "help"))`
//
// specifying `--table_sizes=10,100 --table_sizes=1000` makes `sizes` a slice
// with 10, 100 and 1000 as items. Malformed elements are rejected at parse
// time, before any experiment runs.
//
// Tested in IntListFlag (conf_test.go)
type IntListValue []int

// Set parses the input string and appends its elements to the collected
// slice. Implements kingpin.Value.
func (i *IntListValue) Set(value string) error {
	for _, field := range strings.Split(value, intListDelimiter) {
		parsed, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return errors.Errorf("%q is not a valid integer list element", field)
		}
		*i = append(*i, parsed)
	}
	return nil
}

// String returns the serialized form of IntListValue. Implements kingpin.Value.
func (i *IntListValue) String() string {
	fields := make([]string, len(*i))
	for n, elem := range *i {
		fields[n] = strconv.Itoa(elem)
	}
	return strings.Join(fields, intListDelimiter)
}

// Get returns the collected slice. Implements kingpin.Getter.
func (i *IntListValue) Get() interface{} {
	return []int(*i)
}

// IsCumulative implements the optional interface (kingpin.repeatableFlag) for
// flags that can be repeated.
func (i *IntListValue) IsCumulative() bool {
	return true
}

// IntList is a helper for defining kingpin flags holding integer lists.
func IntList(s kingpin.Settings) (target *[]int) {
	target = new([]int)
	s.SetValue((*IntListValue)(target))
	return
}
