// Copyright (c) 2020-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// rule checks value against the argument given after = in the tag
type rule func(value reflect.Value, arg string) error

var (
	rules = map[string]rule{
		"enum":      enumRule,
		"maxlength": maxLengthRule,
		"shellsafe": shellSafeRule,
	}

	shellUnsafe = []string{"`", "$", ";", "|", "&&", ">", "<"}
)

// parseRule splits tags like enum=a,b into the rule name and its argument
func parseRule(tag string) (string, string) {
	name, arg, _ := strings.Cut(strings.TrimSpace(tag), "=")

	return strings.TrimSpace(name), strings.TrimSpace(arg)
}

// ShellSafe checks that input can be used in a shell without escapes or redirects,
// identities and bucket names end up in subjects and file names
func ShellSafe(input string) error {
	for _, c := range shellUnsafe {
		if strings.Contains(input, c) {
			return fmt.Errorf("may not contain %q", c)
		}
	}

	return nil
}

func shellSafeRule(value reflect.Value, _ string) error {
	if value.Kind() != reflect.String {
		return fmt.Errorf("only strings can be checked, got %s", value.Kind())
	}

	return ShellSafe(value.String())
}

func enumOptions(arg string) []string {
	var opts []string
	for _, o := range strings.Split(arg, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			opts = append(opts, o)
		}
	}

	return opts
}

func enumRule(value reflect.Value, arg string) error {
	opts := enumOptions(arg)
	if len(opts) == 0 {
		return fmt.Errorf("no allowed values listed, use enum=v1,v2")
	}

	check := func(v string) error {
		for _, o := range opts {
			if o == v {
				return nil
			}
		}

		return fmt.Errorf("%q is not one of %s", v, strings.Join(opts, ", "))
	}

	switch value.Kind() {
	case reflect.String:
		return check(value.String())

	case reflect.Slice:
		items, ok := value.Interface().([]string)
		if !ok {
			return fmt.Errorf("only []string slices can be checked")
		}

		for _, item := range items {
			err := check(item)
			if err != nil {
				return err
			}
		}

		return nil

	default:
		return fmt.Errorf("only strings can be checked, got %s", value.Kind())
	}
}

func maxLengthRule(value reflect.Value, arg string) error {
	limit, err := strconv.Atoi(arg)
	if err != nil || limit < 0 {
		return fmt.Errorf("invalid length %q, use maxlength=n", arg)
	}

	var length int
	var unit string

	switch value.Kind() {
	case reflect.String:
		length, unit = len(value.String()), "characters"
	case reflect.Slice:
		length, unit = value.Len(), "values"
	default:
		return fmt.Errorf("cannot check the length of %s", value.Kind())
	}

	if length > limit {
		return fmt.Errorf("%d %s exceeds the maximum of %d", length, unit, limit)
	}

	return nil
}
