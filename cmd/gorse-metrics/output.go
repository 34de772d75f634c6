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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gorse-io/metrics/base"
	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"go.yaml.in/yaml/v3"
)

// row is a single evaluated value. Class is empty for values over all classes.
type row struct {
	Metric string  `json:"metric" yaml:"metric"`
	Class  string  `json:"class,omitempty" yaml:"class,omitempty"`
	Value  float64 `json:"value" yaml:"value"`
}

// result is the output of an evaluation command.
type result struct {
	Task       string `json:"task" yaml:"task"`
	TrueColumn string `json:"true_column" yaml:"true_column"`
	PredColumn string `json:"pred_column" yaml:"pred_column"`
	Count      int    `json:"count" yaml:"count"`
	Average    string `json:"average,omitempty" yaml:"average,omitempty"`
	Rows       []row  `json:"metrics" yaml:"metrics"`
}

func (r *result) add(metric, class string, value float64) {
	r.Rows = append(r.Rows, row{Metric: metric, Class: class, Value: value})
}

func formatValue(value float64, digits int) string {
	return strconv.FormatFloat(value, 'f', digits, 64)
}

// writeResult writes a result in format. Digits only apply to table and csv.
func writeResult(w io.Writer, r *result, format string, digits int) error {
	switch format {
	case "table":
		return writeTable(w, r, digits)
	case "csv":
		return writeCSV(w, r, digits)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return errors.Trace(encoder.Encode(r))
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(r); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(encoder.Close())
	default:
		return errors.NotSupportedf("output format %s", format)
	}
}

func writeTable(w io.Writer, r *result, digits int) error {
	if _, err := fmt.Fprintf(w, "%s: %s vs %s (%d samples)\n", r.Task, r.TrueColumn, r.PredColumn, r.Count); err != nil {
		return errors.Trace(err)
	}
	withClass := lo.SomeBy(r.Rows, func(item row) bool { return item.Class != "" })
	table := tablewriter.NewWriter(w)
	if withClass {
		table.Header("Metric", "Class", "Value")
	} else {
		table.Header("Metric", "Value")
	}
	for _, item := range r.Rows {
		cells := []string{item.Metric, formatValue(item.Value, digits)}
		if withClass {
			cells = []string{item.Metric, item.Class, formatValue(item.Value, digits)}
		}
		if err := table.Append(cells); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Trace(table.Render())
}

func writeCSV(w io.Writer, r *result, digits int) error {
	var builder strings.Builder
	builder.WriteString("metric,class,value\n")
	for _, item := range r.Rows {
		builder.WriteString(base.Escape(item.Metric, ','))
		builder.WriteRune(',')
		builder.WriteString(base.Escape(item.Class, ','))
		builder.WriteRune(',')
		builder.WriteString(formatValue(item.Value, digits))
		builder.WriteRune('\n')
	}
	_, err := io.WriteString(w, builder.String())
	return errors.Trace(err)
}
