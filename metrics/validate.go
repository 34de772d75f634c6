// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"reflect"
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/cast"
	"gonum.org/v1/gonum/mat"
)

var float64Type = reflect.TypeOf(float64(0))

// Validate converts the ground truth and the predictions to one-dimensional vectors
// of the same length.
func Validate(yTrue, yPred any) ([]float64, []float64, error) {
	vectorTrue, err := ToVector(yTrue)
	if err != nil {
		return nil, nil, errors.Annotate(err, "y_true")
	}
	vectorPred, err := ToVector(yPred)
	if err != nil {
		return nil, nil, errors.Annotate(err, "y_pred")
	}
	if len(vectorTrue) != len(vectorPred) {
		return nil, nil, shapeErrorf("inputs must have the same number of elements: "+
			"the first vector has %d elements while the second has %d", len(vectorTrue), len(vectorPred))
	}
	return vectorTrue, vectorPred, nil
}

// ToVector converts a sequence to a numeric vector. A two-dimensional sequence is
// flattened if one of its axes has size 1. The input is never modified.
func ToVector(x any) ([]float64, error) {
	switch v := x.(type) {
	case nil:
		return nil, conversionErrorf("cannot convert nil to a numeric vector")
	case []float64:
		vector := make([]float64, len(v))
		copy(vector, v)
		return vector, nil
	case mat.Matrix:
		if value := reflect.ValueOf(v); value.Kind() == reflect.Pointer && value.IsNil() {
			return nil, conversionErrorf("cannot convert nil %T to a numeric vector", x)
		}
		return matrixToVector(v)
	}
	value := indirect(reflect.ValueOf(x))
	if !isSequence(value) {
		return nil, conversionErrorf("cannot convert %T to a numeric vector", x)
	}
	rows, nested := unwrapRows(value)
	if !nested {
		return sequenceToVector(value)
	}
	return nestedToVector(rows)
}

func matrixToVector(m mat.Matrix) ([]float64, error) {
	r, c := m.Dims()
	if r != 1 && c != 1 {
		return nil, shapeErrorf("inputs must be 1D vectors or column/row matrices, got a %dx%d matrix", r, c)
	}
	vector := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			vector = append(vector, m.At(i, j))
		}
	}
	return vector, nil
}

// unwrapRows returns the elements of a sequence if any of them is a sequence itself.
func unwrapRows(value reflect.Value) ([]reflect.Value, bool) {
	rows := make([]reflect.Value, value.Len())
	nested := false
	for i := range rows {
		rows[i] = indirect(value.Index(i))
		if isSequence(rows[i]) {
			nested = true
		}
	}
	return rows, nested
}

func nestedToVector(rows []reflect.Value) ([]float64, error) {
	numCols := -1
	for i, row := range rows {
		if !isSequence(row) {
			return nil, conversionErrorf("row %d is not a sequence", i)
		}
		if numCols >= 0 && row.Len() != numCols {
			return nil, conversionErrorf("inhomogeneous rows: row %d has %d elements, expected %d", i, row.Len(), numCols)
		}
		numCols = row.Len()
	}
	if len(rows) != 1 && numCols != 1 {
		return nil, shapeErrorf("inputs must be 1D vectors or column/row matrices, got a %dx%d matrix", len(rows), numCols)
	}
	vector := make([]float64, 0, len(rows)*numCols)
	for i, row := range rows {
		for j := 0; j < row.Len(); j++ {
			element := indirect(row.Index(j))
			if isSequence(element) {
				return nil, shapeErrorf("inputs must be 1D vectors or column/row matrices, got more than 2 dimensions")
			}
			f, err := toFloat(element)
			if err != nil {
				return nil, errors.Annotatef(err, "element (%d, %d)", i, j)
			}
			vector = append(vector, f)
		}
	}
	return vector, nil
}

func sequenceToVector(value reflect.Value) ([]float64, error) {
	vector := make([]float64, value.Len())
	for i := range vector {
		f, err := toFloat(indirect(value.Index(i)))
		if err != nil {
			return nil, errors.Annotatef(err, "element %d", i)
		}
		vector[i] = f
	}
	return vector, nil
}

func toFloat(value reflect.Value) (float64, error) {
	if !value.IsValid() {
		return 0, conversionErrorf("nil is not a number")
	}
	switch value.Kind() {
	case reflect.Bool:
		if value.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return value.Convert(float64Type).Float(), nil
	case reflect.String:
		text := strings.TrimSpace(value.String())
		if text == "" {
			return 0, conversionErrorf("empty string is not a number")
		}
		f, err := cast.ToFloat64E(text)
		if err != nil {
			return 0, conversionErrorf("%q is not a number", value.String())
		}
		return f, nil
	}
	f, err := cast.ToFloat64E(value.Interface())
	if err != nil {
		return 0, conversionErrorf("%v (%s) is not a number", value.Interface(), value.Type())
	}
	return f, nil
}

// indirect dereferences pointers and interfaces. It returns the zero Value for nil.
func indirect(value reflect.Value) reflect.Value {
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return reflect.Value{}
		}
		value = value.Elem()
	}
	return value
}

func isSequence(value reflect.Value) bool {
	return value.IsValid() && (value.Kind() == reflect.Slice || value.Kind() == reflect.Array)
}
