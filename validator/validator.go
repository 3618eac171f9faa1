// Copyright (c) 2020-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package validator validates struct fields using their validate tag.
//
// Supported validations are enum=a,b,c, maxlength=n and shellsafe
package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// ValidateStruct validates all keys in a struct using their validate tag
func ValidateStruct(target any) (bool, error) {
	val := reflect.ValueOf(target)

	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	return validateStructValue(val)
}

// ValidateStructField validates a single named field of target using its validate tag
func ValidateStructField(target any, field string) (bool, error) {
	val := reflect.ValueOf(target)

	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return false, fmt.Errorf("a struct is required")
	}

	typeField, ok := val.Type().FieldByName(field)
	if !ok {
		return false, fmt.Errorf("unknown field %s", field)
	}

	return validateField(val.FieldByName(field), typeField)
}

func validateStructValue(val reflect.Value) (bool, error) {
	for i := 0; i < val.NumField(); i++ {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)

		if valueField.Kind() == reflect.Struct {
			ok, err := validateStructValue(valueField)
			if !ok {
				return ok, err
			}
		}

		ok, err := validateField(valueField, typeField)
		if !ok {
			return ok, err
		}
	}

	return true, nil
}

func validateField(value reflect.Value, field reflect.StructField) (bool, error) {
	tag := strings.TrimSpace(field.Tag.Get("validate"))
	if tag == "" {
		return true, nil
	}

	// enum lists contain commas so a field carries a single rule
	name, arg := parseRule(tag)

	check, ok := rules[name]
	if !ok {
		return false, fmt.Errorf("%s has an unknown validator %q", field.Name, tag)
	}

	err := check(value, arg)
	if err != nil {
		return false, fmt.Errorf("%s failed %s validation: %w", field.Name, name, err)
	}

	return true, nil
}
