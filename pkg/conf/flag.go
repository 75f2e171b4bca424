package conf

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

// flagType is implemented by every flag registered through this package.
type flagType interface {
	envName() string
	clear()
	current() string
	Model() *kingpin.FlagModel
}

// definedFlags holds registered flags by name, so a flag defined twice with
// the same type and default is shared instead of panicking in kingpin.
var definedFlags = map[string]flagType{}

// cliAndEnvFlag is a kingpin flag that can also be set through the environment.
type cliAndEnvFlag struct {
	*kingpin.FlagClause
}

func newCliAndEnvFlag(flagName string, description string, defaultValue string) *cliAndEnvFlag {
	if definedFlags[flagName] != nil {
		panic(fmt.Sprintf("flag %q already defined", flagName))
	}

	c := &cliAndEnvFlag{FlagClause: app.Flag(flagName, description)}
	c.Envar(c.envName())
	if defaultValue != "" {
		c.Default(defaultValue)
	}
	return c
}

// envName returns the environment variable name for the flag, e.g.
// "dashboard_port" is read from "DASH_DASHBOARD_PORT".
func (f *cliAndEnvFlag) envName() string {
	return fmt.Sprintf("%s_%s", envPrefix, strings.ToUpper(f.Model().Name))
}

func (f *cliAndEnvFlag) clear() {
	os.Unsetenv(f.envName())
}

// lookup returns an already registered flag of the same type and default.
func lookup(flagName string, sameDefault func(flagType) bool) flagType {
	existing := definedFlags[flagName]
	if existing == nil {
		return nil
	}
	if !sameDefault(existing) {
		panic(fmt.Sprintf("flag %q redefined with different type or default", flagName))
	}
	return existing
}

// StringFlag represents flag with string value.
type StringFlag struct {
	*cliAndEnvFlag
	defaultValue string
	value        *string
}

// NewStringFlag is a constructor of StringFlag struct.
func NewStringFlag(flagName string, description string, defaultValue string) *StringFlag {
	if f := lookup(flagName, func(f flagType) bool {
		s, ok := f.(*StringFlag)
		return ok && s.defaultValue == defaultValue
	}); f != nil {
		return f.(*StringFlag)
	}

	flag := &StringFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
		defaultValue:  defaultValue,
	}
	flag.value = flag.String()
	definedFlags[flagName] = flag
	isEnvParsed = false
	return flag
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value.
func (s StringFlag) Value() string {
	if !isEnvParsed {
		return s.defaultValue
	}
	return *s.value
}

func (s StringFlag) current() string { return s.Value() }

// IntFlag represents flag with int value.
type IntFlag struct {
	*cliAndEnvFlag
	defaultValue int
	value        *int
}

// NewIntFlag is a constructor of IntFlag struct.
func NewIntFlag(flagName string, description string, defaultValue int) *IntFlag {
	if f := lookup(flagName, func(f flagType) bool {
		i, ok := f.(*IntFlag)
		return ok && i.defaultValue == defaultValue
	}); f != nil {
		return f.(*IntFlag)
	}

	flag := &IntFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, fmt.Sprintf("%d", defaultValue)),
		defaultValue:  defaultValue,
	}
	flag.value = flag.Int()
	definedFlags[flagName] = flag
	isEnvParsed = false
	return flag
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value.
func (i IntFlag) Value() int {
	if !isEnvParsed {
		return i.defaultValue
	}
	return *i.value
}

func (i IntFlag) current() string { return fmt.Sprintf("%d", i.Value()) }

// BoolFlag represents flag with bool value.
type BoolFlag struct {
	*cliAndEnvFlag
	defaultValue bool
	value        *bool
}

// NewBoolFlag is a constructor of BoolFlag struct.
func NewBoolFlag(flagName string, description string, defaultValue bool) *BoolFlag {
	if f := lookup(flagName, func(f flagType) bool {
		b, ok := f.(*BoolFlag)
		return ok && b.defaultValue == defaultValue
	}); f != nil {
		return f.(*BoolFlag)
	}

	flag := &BoolFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, fmt.Sprintf("%v", defaultValue)),
		defaultValue:  defaultValue,
	}
	flag.value = flag.Bool()
	definedFlags[flagName] = flag
	isEnvParsed = false
	return flag
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value.
func (b BoolFlag) Value() bool {
	if !isEnvParsed {
		return b.defaultValue
	}
	return *b.value
}

func (b BoolFlag) current() string { return fmt.Sprintf("%v", b.Value()) }

// DurationFlag represents flag with duration value.
type DurationFlag struct {
	*cliAndEnvFlag
	defaultValue time.Duration
	value        *time.Duration
}

// NewDurationFlag is a constructor of DurationFlag struct.
func NewDurationFlag(flagName string, description string, defaultValue time.Duration) *DurationFlag {
	if f := lookup(flagName, func(f flagType) bool {
		d, ok := f.(*DurationFlag)
		return ok && d.defaultValue == defaultValue
	}); f != nil {
		return f.(*DurationFlag)
	}

	flag := &DurationFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue.String()),
		defaultValue:  defaultValue,
	}
	flag.value = flag.Duration()
	definedFlags[flagName] = flag
	isEnvParsed = false
	return flag
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value.
func (d DurationFlag) Value() time.Duration {
	if !isEnvParsed {
		return d.defaultValue
	}
	return *d.value
}

func (d DurationFlag) current() string { return d.Value().String() }

// IPFlag represents flag with IP value.
type IPFlag struct {
	*cliAndEnvFlag
	defaultValue string
	value        *net.IP
}

// NewIPFlag is a constructor of IPFlag struct.
func NewIPFlag(flagName string, description string, defaultValue string) *IPFlag {
	if f := lookup(flagName, func(f flagType) bool {
		i, ok := f.(*IPFlag)
		return ok && i.defaultValue == defaultValue
	}); f != nil {
		return f.(*IPFlag)
	}

	flag := &IPFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
		defaultValue:  defaultValue,
	}
	flag.value = flag.IP()
	definedFlags[flagName] = flag
	isEnvParsed = false
	return flag
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value.
func (i IPFlag) Value() string {
	if !isEnvParsed {
		return i.defaultValue
	}
	return (*i.value).String()
}

func (i IPFlag) current() string { return i.Value() }
