// Copyright (c) 2020-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package confkey looks for tags on a structure and set values
// based on the tag rather than the struct item names
//
// Defaults are supported and can be overridden from the shell environment,
// the type tag selects conversions like comma splits, durations given in
// milliseconds and paths with a leading ~.
//
//	type Config struct {
//	    Loglevel  string        `confkey:"loglevel" default:"info" validate:"enum=debug,info,warn,error"`
//	    Servers   []string      `confkey:"servers" type:"comma_split" environment:"SERVERS"`
//	    Interval  time.Duration `confkey:"interval_ms" type:"milliseconds" default:"3000"`
//	    StateFile string        `confkey:"state" type:"path_string"`
//	}
package confkey

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/onap/policy-drools-pdp-sub003/internal/util"
	"github.com/onap/policy-drools-pdp-sub003/validator"
)

// Validate validates the struct
func Validate(target any) error {
	_, err := validator.ValidateStruct(target)

	return err
}

// SetStructDefaults extract defaults out of the tags and set them to the key
func SetStructDefaults(target any) error {
	if reflect.TypeOf(target).Kind() != reflect.Ptr {
		return errors.New("pointer is required")
	}

	st := reflect.TypeOf(target).Elem()

	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)

		key, ok := field.Tag.Lookup("confkey")
		if !ok {
			continue
		}

		value, ok := field.Tag.Lookup("default")
		if !ok {
			// environment overrides apply even without a default
			if _, set := lookupEnv(field); !set {
				continue
			}
		}

		err := SetStructFieldWithKey(target, key, value)
		if err != nil {
			return fmt.Errorf("invalid default for %s: %w", key, err)
		}
	}

	return nil
}

// Keys lists all the configuration keys known in target, sorted
func Keys(target any) []string {
	st := reflect.TypeOf(target)
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	}

	var keys []string
	for i := 0; i < st.NumField(); i++ {
		if key, ok := st.Field(i).Tag.Lookup("confkey"); ok {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys
}

// DefaultString is the default value of key as a string
func DefaultString(target any, key string) (string, bool) {
	return KeyTag(target, key, "default")
}

// KeyTag retrieves the tag named tag from the field configured with key
func KeyTag(target any, key string, tag string) (string, bool) {
	field, err := structField(target, key)
	if err != nil {
		return "", false
	}

	return field.Tag.Lookup(tag)
}

// FieldWithKey determines the struct field name that is tagged with key
func FieldWithKey(target any, key string) (string, error) {
	field, err := structField(target, key)
	if err != nil {
		return "", err
	}

	return field.Name, nil
}

// StringFieldWithKey retrieves a string from target that matches key, "" when not found
func StringFieldWithKey(target any, key string) string {
	field, ok := valueWithKey(target, key, reflect.String)
	if !ok {
		return ""
	}

	return field.String()
}

// IntWithKey retrieves an int from target that matches key, 0 when not found
func IntWithKey(target any, key string) int {
	field, ok := valueWithKey(target, key, reflect.Int)
	if !ok {
		return 0
	}

	return int(field.Int())
}

// BoolWithKey retrieves a bool from target that matches key, false when not found
func BoolWithKey(target any, key string) bool {
	field, ok := valueWithKey(target, key, reflect.Bool)
	if !ok {
		return false
	}

	return field.Bool()
}

// SetStructFieldWithKey finds the struct key that matches the confkey on target and assign the value to it
func SetStructFieldWithKey(target any, key string, value string) error {
	if reflect.TypeOf(target).Kind() != reflect.Ptr {
		return errors.New("pointer is required")
	}

	sf, err := structField(target, key)
	if err != nil {
		return err
	}

	if v, ok := lookupEnv(sf); ok {
		value = v
	}

	field := reflect.ValueOf(target).Elem().FieldByName(sf.Name)
	vtype := sf.Tag.Get("type")

	switch field.Kind() {
	case reflect.Slice:
		ptr, ok := field.Addr().Interface().(*[]string)
		if !ok {
			return fmt.Errorf("%s: only string lists are supported", key)
		}

		if vtype == "comma_split" {
			*ptr = []string{}
			for _, v := range strings.Split(value, ",") {
				v = strings.TrimSpace(v)
				if v != "" {
					*ptr = append(*ptr, v)
				}
			}
		} else {
			*ptr = append(*ptr, strings.TrimSpace(value))
		}

	case reflect.Int, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := parseDuration(value, vtype)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			field.SetInt(int64(d))
			break
		}

		i, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q", key, value)
		}
		field.SetInt(i)

	case reflect.String:
		value = strings.TrimSpace(value)

		if vtype == "path_string" {
			value, err = util.ExpandPath(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}

		field.SetString(value)

	case reflect.Bool:
		b, err := util.StrToBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("%s: unsupported type %s", key, field.Kind())
	}

	_, err = validator.ValidateStructField(target, sf.Name)

	return err
}

// durations are in milliseconds for the milliseconds type, otherwise either
// seconds or a go duration string
func parseDuration(value string, vtype string) (time.Duration, error) {
	value = strings.TrimSpace(value)

	if vtype == "milliseconds" {
		return util.StrToMillis(value)
	}

	if i, err := strconv.Atoi(value); err == nil {
		return time.Duration(i) * time.Second, nil
	}

	return time.ParseDuration(value)
}

func lookupEnv(field reflect.StructField) (string, bool) {
	env, ok := field.Tag.Lookup("environment")
	if !ok {
		return "", false
	}

	return os.LookupEnv(env)
}

func structField(target any, key string) (reflect.StructField, error) {
	st := reflect.TypeOf(target)
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	}

	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)

		if k, ok := field.Tag.Lookup("confkey"); ok && k == key {
			return field, nil
		}
	}

	return reflect.StructField{}, fmt.Errorf("can't find any structure element configured with confkey '%s'", key)
}

func valueWithKey(target any, key string, kind reflect.Kind) (reflect.Value, bool) {
	sf, err := structField(target, key)
	if err != nil {
		return reflect.Value{}, false
	}

	v := reflect.ValueOf(target)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	field := v.FieldByName(sf.Name)
	if field.Kind() != kind {
		return reflect.Value{}, false
	}

	return field, true
}
