package conf

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// clearFlags drops every defined flag so each test starts with a clean app.
func clearFlags() {
	for _, flag := range definedFlags {
		flag.clear()
	}
	definedFlags = map[string]flagType{}
	app = kingpin.New("test", "No help available")
	isEnvParsed = false
	logLevelFlag = NewStringFlag("log", "Log level", "info")
}

func TestConf(t *testing.T) {
	Convey("While using conf package", t, func() {
		clearFlags()
		defer clearFlags()

		SetAppName("testApp")
		SetHelp("test help")

		Convey("Name and help should match to specified one", func() {
			So(AppName(), ShouldEqual, "testApp")
			So(app.Help, ShouldEqual, "test help")
		})

		Convey("Log level defaults to info", func() {
			So(LogLevel(), ShouldEqual, logrus.InfoLevel)
		})

		Convey("Log level can be fetched from env", func() {
			os.Setenv(logLevelFlag.envName(), "debug")
			defer os.Unsetenv(logLevelFlag.envName())

			So(ParseEnv(), ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("Log level can be fetched from command line", func() {
			So(ParseArgs([]string{"--log", "warn"}), ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.WarnLevel)
		})

		Convey("Unknown log level falls back to default", func() {
			So(ParseArgs([]string{"--log", "loud"}), ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.InfoLevel)
		})

		Convey("Unknown command line flag is an error", func() {
			err := ParseArgs([]string{"--no_such_flag"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldStartWith, "could not parse command line flags")
		})

		Convey("Dump lists every flag as env variable", func() {
			NewIntFlag("dump_port", "port to dump", 5000)
			So(ParseEnv(), ShouldBeNil)

			dump := Dump()
			So(dump, ShouldContainSubstring, "DASH_LOG=info")
			So(dump, ShouldContainSubstring, "# port to dump\nDASH_DUMP_PORT=5000")
			So(GetFlags()["dump_port"], ShouldEqual, "5000")
		})

		Convey("Dump reflects parsed values", func() {
			NewIntFlag("dump_port", "port to dump", 5000)
			So(ParseArgs([]string{"--dump_port", "6000", "--log", "debug"}), ShouldBeNil)

			So(GetFlags(), ShouldResemble, map[string]string{"log": "debug", "dump_port": "6000"})
			dump := Dump()
			So(dump, ShouldContainSubstring, "DASH_LOG=debug")
			So(dump, ShouldContainSubstring, "# port to dump\nDASH_DUMP_PORT=6000")
		})
	})
}
