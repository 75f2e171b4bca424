package conf

import (
	"fmt"
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEnvName(t *testing.T) {
	Convey("Flag should construct proper environment variable name", t, func() {
		clearFlags()
		So(NewStringFlag("test_name", "", "").envName(), ShouldEqual, "DASH_TEST_NAME")
	})
}

func TestFlags(t *testing.T) {
	Convey("While using conf flags", t, func() {
		clearFlags()
		defer clearFlags()

		Convey("When a custom String flag is defined", func() {
			customFlag := NewStringFlag("custom_string_arg", "help", "default")

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldEqual, "default")
			})

			Convey("With environment variable set it should be custom after parse", func() {
				os.Setenv(customFlag.envName(), "customContent")

				So(ParseEnv(), ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, "customContent")
			})

			Convey("Defining it again with the same default returns the same flag", func() {
				So(NewStringFlag("custom_string_arg", "help", "default"), ShouldEqual, customFlag)
			})

			Convey("Defining it again with another default panics", func() {
				So(func() { NewStringFlag("custom_string_arg", "help", "other") }, ShouldPanic)
			})

			Convey("Defining it again with another type panics", func() {
				So(func() { NewIntFlag("custom_string_arg", "help", 1) }, ShouldPanic)
			})
		})

		Convey("When a custom Int flag is defined", func() {
			customFlag := NewIntFlag("custom_int_arg", "help", 23424)

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldEqual, 23424)
			})

			Convey("With environment variable set it should be custom after parse", func() {
				os.Setenv(customFlag.envName(), fmt.Sprintf("%d", 12))

				So(ParseEnv(), ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, 12)
			})

			Convey("Command line wins over environment", func() {
				os.Setenv(customFlag.envName(), "12")

				So(ParseArgs([]string{"--custom_int_arg=13"}), ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, 13)
			})
		})

		Convey("When a custom Bool flag is defined", func() {
			customFlag := NewBoolFlag("custom_bool_arg", "help", false)

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldBeFalse)
			})

			Convey("With environment variable set it should be custom after parse", func() {
				os.Setenv(customFlag.envName(), "true")

				So(ParseEnv(), ShouldBeNil)
				So(customFlag.Value(), ShouldBeTrue)
			})
		})

		Convey("When a custom Duration flag is defined", func() {
			customFlag := NewDurationFlag("custom_duration_arg", "help", 99*time.Millisecond)

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldEqual, 99*time.Millisecond)
			})

			Convey("With environment variable set it should be custom after parse", func() {
				os.Setenv(customFlag.envName(), (1234 * time.Second).String())

				So(ParseEnv(), ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, 1234*time.Second)
			})
		})

		Convey("When a custom IP flag is defined", func() {
			customFlag := NewIPFlag("custom_ip_arg", "help", "0.0.0.0")

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldEqual, "0.0.0.0")
			})

			Convey("With environment variable set it should be custom after parse", func() {
				os.Setenv(customFlag.envName(), "10.0.0.1")

				So(ParseEnv(), ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, "10.0.0.1")
			})

			Convey("With invalid address parse fails", func() {
				os.Setenv(customFlag.envName(), "10.0.0.300")

				So(ParseEnv(), ShouldNotBeNil)
			})
		})
	})
}
