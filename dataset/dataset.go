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

package dataset

import (
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gorse-io/metrics/base"
	"github.com/gorse-io/metrics/config"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Dataset holds the ground truth and the predictions read from a delimited file.
type Dataset struct {
	trueName string
	predName string
	yTrue    []string
	yPred    []string
}

// LoadCSV loads ground truth and predictions from a delimited file. For example:
//
//	y_true,y_pred
//	cat,cat
//	dog,cat
func LoadCSV(path string, input config.InputConfig) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	dataset, err := ReadCSV(file, input)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to load %s", path)
	}
	return dataset, nil
}

// ReadCSV reads ground truth and predictions from a delimited stream.
func ReadCSV(r io.Reader, input config.InputConfig) (*Dataset, error) {
	if utf8.RuneCountInString(input.Separator) != 1 {
		return nil, errors.NotValidf("separator %q", input.Separator)
	}
	if input.TrueColumn < 0 || input.PredColumn < 0 {
		return nil, errors.NotValidf("column (%d, %d)", input.TrueColumn, input.PredColumn)
	}
	sep, _ := utf8.DecodeRuneInString(input.Separator)
	numFields := max(input.TrueColumn, input.PredColumn) + 1
	dataset := &Dataset{trueName: "y_true", predName: "y_pred"}
	err := base.ReadLines(r, sep, func(i int, fields []string) error {
		if len(fields) < numFields {
			return errors.Errorf("record %d has %d fields, expected at least %d", i+1, len(fields), numFields)
		}
		trueValue := strings.TrimSpace(fields[input.TrueColumn])
		predValue := strings.TrimSpace(fields[input.PredColumn])
		if i == 0 && input.Header {
			dataset.trueName, dataset.predName = trueValue, predValue
			return nil
		}
		dataset.yTrue = append(dataset.yTrue, trueValue)
		dataset.yPred = append(dataset.yPred, predValue)
		return nil
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return dataset, nil
}

func (d *Dataset) Count() int {
	return len(d.yTrue)
}

// Columns returns the names of the ground truth column and the prediction column.
func (d *Dataset) Columns() (string, string) {
	return d.trueName, d.predName
}

func (d *Dataset) GetTrue() []string {
	return d.yTrue
}

func (d *Dataset) GetPred() []string {
	return d.yPred
}

// EncodeLabels converts class names to numeric labels. Numbers are kept as they
// are unless some value is not a number, in which case every name is encoded
// by its rank in lexical order.
func (d *Dataset) EncodeLabels() ([]float64, []float64, *Labels) {
	yTrue, trueOk := parseNumbers(d.yTrue)
	yPred, predOk := parseNumbers(d.yPred)
	if trueOk && predOk {
		return yTrue, yPred, &Labels{}
	}
	dict := NewFreqDict(append(lo.Uniq(d.yTrue), lo.Uniq(d.yPred)...)...)
	encode := func(name string, _ int) float64 {
		return float64(dict.Id(name))
	}
	return lo.Map(d.yTrue, encode), lo.Map(d.yPred, encode), &Labels{dict: dict}
}

func parseNumbers(values []string) ([]float64, bool) {
	numbers := make([]float64, len(values))
	for i, value := range values {
		if value == "" {
			return nil, false
		}
		number, err := cast.ToFloat64E(value)
		if err != nil {
			return nil, false
		}
		numbers[i] = number
	}
	return numbers, true
}

// Labels maps class names to numeric labels and back.
type Labels struct {
	dict *FreqDict
}

// Encoded returns true if class names are encoded by a dictionary.
func (l *Labels) Encoded() bool {
	return l.dict != nil
}

// Value returns the numeric label of a class name.
func (l *Labels) Value(name string) (float64, error) {
	name = strings.TrimSpace(name)
	if l.dict == nil {
		value, err := cast.ToFloat64E(name)
		if err != nil || name == "" {
			return 0, errors.NotValidf("label %q", name)
		}
		return value, nil
	}
	id, ok := l.dict.Lookup(name)
	if !ok {
		return 0, errors.NotFoundf("label %q", name)
	}
	return float64(id), nil
}

// Name returns the class name of a numeric label.
func (l *Labels) Name(value float64) string {
	if l.dict != nil {
		if name, ok := l.dict.String(int(value)); ok {
			return name
		}
	}
	return strconv.FormatFloat(value, 'g', -1, 64)
}
