package conf

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/alecthomas/kingpin.v2"
)

func TestIntListValue(t *testing.T) {
	Convey("While using the custom IntListValue parser", t, func() {
		intListValue := &IntListValue{}

		Convey("It should implement kingpin.Value interfaces", func() {
			So(intListValue, ShouldImplement, (*kingpin.Value)(nil))
			So(intListValue, ShouldImplement, (*kingpin.Getter)(nil))
		})

		Convey("When parsing inputs it should append them to the integer slice", func() {
			So(intListValue.IsCumulative(), ShouldBeTrue)

			So(intListValue.Set("10"), ShouldBeNil)
			So(intListValue.Get(), ShouldResemble, []int{10})

			So(intListValue.Set("100,1000"), ShouldBeNil)
			So(intListValue.Get(), ShouldResemble, []int{10, 100, 1000})

			So(intListValue.String(), ShouldEqual, "10,100,1000")
		})

		Convey("Surrounding whitespace is tolerated", func() {
			So(intListValue.Set(" 5, 6 "), ShouldBeNil)
			So(intListValue.Get(), ShouldResemble, []int{5, 6})
		})

		Convey("Malformed elements are rejected before any experiment runs", func() {
			So(intListValue.Set("10,banana"), ShouldNotBeNil)
			So(intListValue.Set(""), ShouldNotBeNil)
		})
	})
}
