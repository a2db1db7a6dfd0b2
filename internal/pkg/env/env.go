package env

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
)

// OverrideStruct sets the fields of the struct pointed to by v from the
// environment variables named in their `env` tags. Nested structs and non-nil
// pointers to structs are visited recursively. Unset variables leave the
// field untouched.
func OverrideStruct(v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("override struct: expected a non-nil pointer to a struct, got %T", v)
	}

	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("override struct: expected a pointer to a struct, got %T (%s)", v, val.Kind())
	}

	typ := val.Type()
	for i := range typ.NumField() {
		field := typ.Field(i)
		fieldValue := val.Field(i)

		if !field.IsExported() {
			continue
		}

		switch {
		case fieldValue.Kind() == reflect.Struct && field.Tag.Get("env") == "":
			if err := OverrideStruct(fieldValue.Addr().Interface()); err != nil {
				return fmt.Errorf("override nested struct %s: %w", field.Name, err)
			}
			continue
		case fieldValue.Kind() == reflect.Ptr && fieldValue.Type().Elem().Kind() == reflect.Struct:
			if fieldValue.IsNil() {
				continue
			}
			if err := OverrideStruct(fieldValue.Interface()); err != nil {
				return fmt.Errorf("override nested struct %s: %w", field.Name, err)
			}
			continue
		}

		envVarName := field.Tag.Get("env")
		if envVarName == "" {
			continue
		}

		envVarValue, ok := os.LookupEnv(envVarName)
		if !ok || envVarValue == "" {
			continue
		}

		if err := setField(fieldValue, envVarValue); err != nil {
			return fmt.Errorf("set field %s from env var %s: %w", field.Name, envVarName, err)
		}
		slog.Debug("Config field overridden from environment.", "env", envVarName, "field", field.Name)
	}
	return nil
}

func setField(fieldValue reflect.Value, raw string) error {
	switch fieldValue.Kind() {
	case reflect.String:
		fieldValue.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(raw, 10, fieldValue.Type().Bits())
		if err != nil {
			return err
		}
		fieldValue.SetInt(intValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		fieldValue.SetBool(boolValue)
	default:
		return fmt.Errorf("unsupported field type %s", fieldValue.Kind())
	}
	return nil
}

// Env returns the value of the environment variable named by the key.
// If the variable is not present in the environment, it returns the provided fallback value.
func Env(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
