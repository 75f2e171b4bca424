package conf

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/camelcase"
	"github.com/pkg/errors"
)

const (
	// Help description of the field. Fields without it are not exposed.
	helpTag = "help"
	// Default value for the field. [Optional]
	defaultTag = "default"
	// Name of a string field holding the default value. [Optional]
	defaultFromFieldTag = "defaultFromField"
	// Overrides the name of the field. [Optional]
	nameTag = "name"
	// Marks the flag as required. [Optional]
	requiredTag = "required"
	// Narrows the string type. Only "ip" is supported.
	stringTypeTag = "type"
	stringTypeIP  = "ip"
	// Unexported string field holding the prefix of every flag in the struct.
	prefixFieldName = "flagPrefix"
)

// Process exposes the tagged fields of given struct pointer as flags and
// fills them with the parsed values, or with the defaults when the
// configuration was not parsed yet.
func Process(data interface{}) error {
	value := reflect.ValueOf(data)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return errors.Errorf("argument needs to be a pointer to struct, got %T", data)
	}

	dataValue := value.Elem()
	dataType := dataValue.Type()
	prefix := stringFromField(dataValue.FieldByName(prefixFieldName))

	for i := 0; i < dataValue.NumField(); i++ {
		field := dataValue.Field(i)
		if !field.CanSet() {
			continue
		}
		// Nested structs are not supported.
		if dataType.Field(i).Anonymous && field.Kind() == reflect.Struct {
			continue
		}

		f := &fieldProcessor{
			prefix:      prefix,
			data:        dataValue,
			field:       field,
			fieldStruct: dataType.Field(i),
		}
		if err := f.process(); err != nil {
			return err
		}
	}
	return nil
}

func stringFromField(field reflect.Value) string {
	if field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}

// nameFromFieldName turns e.g. "dashboardShutdownTimeout" into "dashboard_shutdown_timeout".
func nameFromFieldName(name string) string {
	words := []string{}
	for _, word := range camelcase.Split(name) {
		if word == "_" {
			continue
		}
		words = append(words, strings.ToLower(word))
	}
	return strings.Join(words, "_")
}

type fieldProcessor struct {
	prefix      string
	data        reflect.Value
	field       reflect.Value
	fieldStruct reflect.StructField
}

func (f *fieldProcessor) isAnyTagSpecified() bool {
	for _, tag := range []string{nameTag, defaultTag, defaultFromFieldTag, requiredTag, stringTypeTag} {
		if f.fieldStruct.Tag.Get(tag) != "" {
			return true
		}
	}
	return false
}

func (f *fieldProcessor) flagName() string {
	name := f.fieldStruct.Tag.Get(nameTag)
	if name == "" {
		name = f.fieldStruct.Name
	}
	return nameFromFieldName(f.prefix + name)
}

func (f *fieldProcessor) defaultValue() string {
	if value := f.fieldStruct.Tag.Get(defaultTag); value != "" {
		return value
	}
	return stringFromField(f.data.FieldByName(f.fieldStruct.Tag.Get(defaultFromFieldTag)))
}

func (f *fieldProcessor) isDuration() bool {
	return f.field.Type() == reflect.TypeOf(time.Duration(0))
}

func (f *fieldProcessor) process() error {
	help := f.fieldStruct.Tag.Get(helpTag)
	if help == "" {
		if f.isAnyTagSpecified() {
			return errors.Errorf("help tag is missing for field %s", f.fieldStruct.Name)
		}
		return nil
	}

	name := f.flagName()
	defaultValue := f.defaultValue()

	var clause *cliAndEnvFlag
	switch kind := f.field.Kind(); {
	case kind == reflect.String && f.fieldStruct.Tag.Get(stringTypeTag) == stringTypeIP:
		flag := NewIPFlag(name, help, defaultValue)
		f.field.SetString(flag.Value())
		clause = flag.cliAndEnvFlag
	case kind == reflect.String:
		flag := NewStringFlag(name, help, defaultValue)
		f.field.SetString(flag.Value())
		clause = flag.cliAndEnvFlag
	case kind == reflect.Int64 && f.isDuration():
		var duration time.Duration
		if defaultValue != "" {
			var err error
			duration, err = time.ParseDuration(defaultValue)
			if err != nil {
				return errors.Wrap(err, "wrong default value for Duration type flag")
			}
		}
		flag := NewDurationFlag(name, help, duration)
		f.field.SetInt(int64(flag.Value()))
		clause = flag.cliAndEnvFlag
	case kind >= reflect.Int && kind <= reflect.Int64:
		var number int
		if defaultValue != "" {
			var err error
			number, err = strconv.Atoi(defaultValue)
			if err != nil {
				return errors.Wrap(err, "wrong default value for Int type flag")
			}
		}
		flag := NewIntFlag(name, help, number)
		f.field.SetInt(int64(flag.Value()))
		clause = flag.cliAndEnvFlag
	case kind == reflect.Bool:
		var boolean bool
		if defaultValue != "" {
			var err error
			boolean, err = strconv.ParseBool(defaultValue)
			if err != nil {
				return errors.Wrap(err, "wrong default value for Bool type flag")
			}
		}
		flag := NewBoolFlag(name, help, boolean)
		f.field.SetBool(flag.Value())
		clause = flag.cliAndEnvFlag
	default:
		return errors.Errorf("%s type not supported for a flag", f.field.Type().String())
	}

	if f.fieldStruct.Tag.Get(requiredTag) == "true" {
		clause.Required()
	}
	return nil
}
