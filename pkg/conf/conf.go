package conf

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const envPrefix = "DASH"

var (
	app          = kingpin.New("dashboard", "No help available")
	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"info",
	)
	isEnvParsed = false
)

// SetHelp sets the help message for the CLI.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns specified app name.
func AppName() string {
	return app.Name
}

// LogLevel returns configured log level from flag or env variable.
// Unparsable input falls back to the flag default.
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
	panic(errors.Wrap(err, "parsing default log level failed"))
}

// ParseFlags parses both the command line flags of the process and
// environment variables.
func ParseFlags() error {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses given arguments and environment variables.
func ParseArgs(args []string) error {
	if _, err := app.Parse(args); err != nil {
		return errors.Wrap(err, "could not parse command line flags")
	}
	isEnvParsed = true
	return nil
}

// ParseEnv parses only the environment.
func ParseEnv() error {
	if _, err := app.Parse([]string{}); err != nil {
		return errors.Wrap(err, "could not parse environment flags")
	}
	isEnvParsed = true
	return nil
}

// GetFlags returns every defined flag with its current value.
func GetFlags() map[string]string {
	flags := map[string]string{}
	for name, flag := range definedFlags {
		flags[name] = flag.current()
	}
	return flags
}

// Dump returns the current configuration as env file which can be sourced by bash.
func Dump() string {
	values := GetFlags()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	buffer := &bytes.Buffer{}
	buffer.WriteString("set -o allexport\n")
	for _, name := range names {
		flag := definedFlags[name]
		fmt.Fprintf(buffer, "\n# %s\n", flag.Model().Help)
		fmt.Fprintf(buffer, "%s=%s\n", flag.envName(), values[name])
	}
	buffer.WriteString("set +o allexport\n")
	return buffer.String()
}
