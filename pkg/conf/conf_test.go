package conf

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConf(t *testing.T) {
	testFlag := NewStringFlag("test_name", "Test string flag", "default_value")
	testIntFlag := NewIntFlag("test_count", "Test int flag", 42)
	testListFlag := NewIntListFlag("test_sizes", "Test int list flag", 10, 100)

	Convey("While using conf pkg", t, func() {
		Convey("Log level defaults to error", func() {
			So(LogLevel(), ShouldEqual, logrus.ErrorLevel)
		})

		Convey("Registered flags return their defaults before parsing", func() {
			So(testFlag.Value(), ShouldEqual, "default_value")
			So(testIntFlag.Value(), ShouldEqual, 42)
			So(testListFlag.Value(), ShouldResemble, []int{10, 100})
		})

		Convey("Flags map to prefixed environment variable names", func() {
			So(testFlag.envName(), ShouldEqual, "HASHSIM_TEST_NAME")
		})

		Convey("Registered flags can be fetched from environment", func() {
			os.Setenv(testFlag.envName(), "value_from_env")
			defer testFlag.clear()
			os.Setenv(testListFlag.envName(), "1,2,3")
			defer testListFlag.clear()

			err := ParseEnv()
			So(err, ShouldBeNil)
			So(testFlag.Value(), ShouldEqual, "value_from_env")
			So(testListFlag.Value(), ShouldResemble, []int{1, 2, 3})
		})

		Convey("Current flag values are available as a map", func() {
			flags := GetFlags()
			So(flags, ShouldContainKey, "test_name")
			So(flags, ShouldContainKey, "test_sizes")
		})
	})
}
