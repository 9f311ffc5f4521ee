// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/bureau-foundation/linebind/lib/convert"
	"github.com/bureau-foundation/linebind/lib/shell"
)

// defaultTypes maps field types to the converter used when no type
// tag is given. time.Duration is listed explicitly because its kind is
// int64.
var defaultTypes = map[reflect.Type]convert.Type{
	reflect.TypeFor[string]():        convert.String,
	reflect.TypeFor[bool]():          convert.Bool,
	reflect.TypeFor[int]():           convert.Int,
	reflect.TypeFor[int64]():         convert.Int64,
	reflect.TypeFor[uint]():          convert.Uint,
	reflect.TypeFor[float64]():       convert.Float64,
	reflect.TypeFor[time.Duration](): convert.Duration,
	reflect.TypeFor[[]string]():      convert.Strings,
	reflect.TypeFor[uuid.UUID]():     convert.UUID,
}

// builtinValues maps each builtin converter to the Go type of the values
// it produces, so a field that cannot hold them is rejected when the
// handler is described. Values of registered custom types are checked
// when they are stored.
var builtinValues = map[convert.Type]reflect.Type{
	convert.String:   reflect.TypeFor[string](),
	convert.Bool:     reflect.TypeFor[bool](),
	convert.Int:      reflect.TypeFor[int](),
	convert.Int64:    reflect.TypeFor[int64](),
	convert.Uint:     reflect.TypeFor[uint](),
	convert.Float64:  reflect.TypeFor[float64](),
	convert.Duration: reflect.TypeFor[time.Duration](),
	convert.Strings:  reflect.TypeFor[[]string](),
	convert.UUID:     reflect.TypeFor[uuid.UUID](),
	convert.Bytes:    reflect.TypeFor[uint64](),
}

// field records where a parameter's value is stored in the params
// struct.
type field struct {
	path []int
	name string
}

// layout is the reflected description of a params struct.
type layout struct {
	params []shell.ParamSpec
	fields []field
}

// describeParams reflects over the struct type T and returns one
// ParamSpec per tagged field, in field order.
func describeParams(structType reflect.Type) (*layout, error) {
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("params must be a struct type, got %s", structType)
	}
	result := &layout{}
	if err := collectFields(structType, nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// collectFields walks structType, recursing into embedded structs.
func collectFields(structType reflect.Type, parent []int, result *layout) error {
	for i := range structType.NumField() {
		structField := structType.Field(i)
		path := append(append([]int(nil), parent...), i)

		if structField.Anonymous && structField.Type.Kind() == reflect.Struct {
			if err := collectFields(structField.Type, path, result); err != nil {
				return fmt.Errorf("embedded %s: %w", structField.Name, err)
			}
			continue
		}

		name := structField.Tag.Get("arg")
		if name == "" {
			continue
		}
		if !structField.IsExported() {
			return fmt.Errorf("field %s: tagged field must be exported", structField.Name)
		}

		kind, err := shell.ParseKind(structField.Tag.Get("kind"))
		if err != nil {
			return fmt.Errorf("field %s: %w", structField.Name, err)
		}

		valueType := convert.Type(structField.Tag.Get("type"))
		if valueType == "" {
			defaultType, ok := defaultTypes[structField.Type]
			if !ok {
				return fmt.Errorf("field %s: no default converter for %s, add a type tag",
					structField.Name, structField.Type)
			}
			valueType = defaultType
		}
		if produced, ok := builtinValues[valueType]; ok && !storable(produced, structField.Type) {
			return fmt.Errorf("field %s: type %s produces %s, which cannot be stored in %s",
				structField.Name, valueType, produced, structField.Type)
		}

		result.params = append(result.params, shell.ParamSpec{
			Name:        name,
			Kind:        kind,
			Type:        valueType,
			Description: structField.Tag.Get("desc"),
		})
		result.fields = append(result.fields, field{path: path, name: structField.Name})
	}
	return nil
}

// fill copies converted values from call into the struct target points
// to. Absent values leave the field at its zero value.
func (l *layout) fill(target reflect.Value, call *shell.Call) error {
	for i, field := range l.fields {
		if !call.Present(i) {
			continue
		}
		destination := target.FieldByIndex(field.path)
		if err := store(destination, reflect.ValueOf(call.Args[i])); err != nil {
			return fmt.Errorf("field %s: %w", field.name, err)
		}
	}
	return nil
}

// storable reports whether values of type value can be stored in a
// field of type destination: by assignment, or as a numeric conversion
// that [store] range-checks. Integers widen into floats; floats never
// narrow into integers.
func storable(value, destination reflect.Type) bool {
	if value.AssignableTo(destination) {
		return true
	}
	switch {
	case isInteger(value.Kind()):
		return isInteger(destination.Kind()) || isFloat(destination.Kind())
	case isFloat(value.Kind()):
		return isFloat(destination.Kind())
	}
	return false
}

// store sets destination to value, failing rather than truncating when
// a numeric value does not fit.
func store(destination, value reflect.Value) error {
	if !storable(value.Type(), destination.Type()) {
		return fmt.Errorf("cannot store %s in %s", value.Type(), destination.Type())
	}
	if value.Type().AssignableTo(destination.Type()) {
		destination.Set(value)
		return nil
	}

	overflow := fmt.Errorf("value %v overflows %s", value.Interface(), destination.Type())
	switch destinationKind := destination.Kind(); {
	case isFloat(destinationKind):
		var number float64
		switch {
		case isFloat(value.Kind()):
			number = value.Float()
		case isSigned(value.Kind()):
			number = float64(value.Int())
		default:
			number = float64(value.Uint())
		}
		if destination.OverflowFloat(number) {
			return overflow
		}
		destination.SetFloat(number)

	case isSigned(destinationKind):
		var number int64
		if isSigned(value.Kind()) {
			number = value.Int()
		} else {
			if value.Uint() > math.MaxInt64 {
				return overflow
			}
			number = int64(value.Uint())
		}
		if destination.OverflowInt(number) {
			return overflow
		}
		destination.SetInt(number)

	default:
		var number uint64
		if isSigned(value.Kind()) {
			if value.Int() < 0 {
				return overflow
			}
			number = uint64(value.Int())
		} else {
			number = value.Uint()
		}
		if destination.OverflowUint(number) {
			return overflow
		}
		destination.SetUint(number)
	}
	return nil
}

func isSigned(kind reflect.Kind) bool {
	return kind >= reflect.Int && kind <= reflect.Int64
}

func isInteger(kind reflect.Kind) bool {
	return isSigned(kind) || (kind >= reflect.Uint && kind <= reflect.Uintptr)
}

func isFloat(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}
