package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// lookupFunc resolves one environment variable
type lookupFunc func(key string) (string, bool)

// applyEnvOverrides sets every `env`-tagged field of the struct s points to
// whose variable is present. All bad values are reported together.
func applyEnvOverrides(s interface{}, lookup lookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	val := reflect.ValueOf(s)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("env overrides need a pointer to a struct, got %T", s)
	}
	return walkEnvFields(val.Elem(), lookup)
}

func walkEnvFields(val reflect.Value, lookup lookupFunc) error {
	var errs []error
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if field.Kind() == reflect.Struct {
			if err := walkEnvFields(field, lookup); err != nil {
				errs = append(errs, err)
			}
			continue
		}

		key := fieldType.Tag.Get("env")
		if key == "" {
			continue
		}
		raw, ok := lookup(key)
		if !ok {
			continue
		}

		if err := setFieldFromEnv(field, strings.TrimSpace(raw)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

// setFieldFromEnv parses value into field according to its kind
func setFieldFromEnv(field reflect.Value, value string) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		field.SetInt(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", value)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}

	return nil
}
