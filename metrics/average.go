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
	"fmt"
	"strings"

	"github.com/juju/errors"
	"github.com/samber/lo"
)

// Average is the strategy to reduce per-class outcomes to a score.
type Average int

const (
	// Binary only reports the result for the positive label.
	Binary Average = iota
	// Micro counts the total agreement between ground truth and predictions.
	Micro
	// Macro takes the unweighted mean of per-class scores.
	Macro
	// Weighted takes the mean of per-class scores weighted by support.
	Weighted
	// None returns per-class scores without reduction.
	None
)

var averageNames = [...]string{"binary", "micro", "macro", "weighted", "none"}

func (a Average) String() string {
	if a.valid() {
		return averageNames[a]
	}
	return fmt.Sprintf("Average(%d)", int(a))
}

func (a Average) valid() bool {
	return a >= Binary && a <= None
}

func (a Average) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, invalidAverage(a.String())
	}
	return []byte(a.String()), nil
}

func (a *Average) UnmarshalText(text []byte) error {
	average, err := ParseAverage(string(text))
	if err != nil {
		return errors.Trace(err)
	}
	*a = average
	return nil
}

// ParseAverage parses the name of an averaging mode. Names are case insensitive,
// surrounding whitespaces and commas are ignored. Both "none" and "null" stand for None.
func ParseAverage(text string) (Average, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(text)), ",", "") {
	case "binary":
		return Binary, nil
	case "micro":
		return Micro, nil
	case "macro":
		return Macro, nil
	case "weighted":
		return Weighted, nil
	case "none", "null":
		return None, nil
	default:
		return 0, invalidAverage(text)
	}
}

// AverageOf converts a dynamic value to an averaging mode: nil means None, a string
// is parsed by ParseAverage. Values of other types are rejected with ErrType.
func AverageOf(v any) (Average, error) {
	switch a := v.(type) {
	case nil:
		return None, nil
	case Average:
		if !a.valid() {
			return 0, invalidAverage(a.String())
		}
		return a, nil
	case string:
		return ParseAverage(a)
	default:
		return 0, errors.WithType(errors.Errorf("average must be a string or nil, but got %T", v), ErrType)
	}
}

func invalidAverage(text string) error {
	return errors.WithType(errors.NotValidf(
		`average %q (expected "binary", "micro", "macro", "weighted" or None)`, text), ErrInvalidParameter)
}

// Score is the result of an averaged metric. PerClass (and Classes) are only set
// if the averaging mode is None.
type Score struct {
	Value    float64   `json:"value" yaml:"value"`
	Classes  []float64 `json:"classes,omitempty" yaml:"classes,omitempty"`
	PerClass []float64 `json:"per_class,omitempty" yaml:"per_class,omitempty"`
}

// ratio returns num/den, or 0 if den is 0.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// agreement is the fraction of positions where both vectors are equal.
func agreement(yTrue, yPred []float64) float64 {
	matches := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			matches++
		}
	}
	return ratio(matches, len(yTrue))
}

// scorer turns the counts of a positive class into a score.
type scorer func(tp, fp, fn int) float64

func precisionScorer(tp, fp, _ int) float64 {
	return ratio(tp, tp+fp)
}

func recallScorer(tp, _, fn int) float64 {
	return ratio(tp, tp+fn)
}

// f1Scorer is the harmonic mean of precision and recall, or 0 if both are 0.
func f1Scorer(tp, fp, fn int) float64 {
	precision, recall := precisionScorer(tp, fp, fn), recallScorer(tp, fp, fn)
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

// averageScore dispatches a scorer over validated vectors by averaging mode.
func averageScore(yTrue, yPred []float64, score scorer, o *options) Score {
	switch o.average {
	case Binary:
		counts := CountComponents(yTrue, yPred, []float64{o.posLabel}, TP, FP, FN)[0]
		return Score{Value: score(counts[0], counts[1], counts[2])}
	case Micro:
		return Score{Value: agreement(yTrue, yPred)}
	}
	classes := Classes(yTrue, yPred)
	table := CountComponents(yTrue, yPred, classes, TP, FP, FN, Support)
	perClass := lo.Map(table, func(row []int, _ int) float64 {
		return score(row[0], row[1], row[2])
	})
	supports := lo.Map(table, func(row []int, _ int) int {
		return row[3]
	})
	return reduce(o.average, classes, perClass, supports)
}

// reduce collapses per-class scores according to a multi-class averaging mode.
func reduce(average Average, classes, perClass []float64, supports []int) Score {
	switch average {
	case Macro:
		return Score{Value: lo.Mean(perClass)}
	case Weighted:
		totalSupport := lo.Sum(supports)
		if totalSupport == 0 {
			return Score{}
		}
		var sum float64
		for i := range perClass {
			sum += perClass[i] * float64(supports[i])
		}
		return Score{Value: sum / float64(totalSupport)}
	case None:
		return Score{Classes: classes, PerClass: perClass}
	default:
		panic(fmt.Sprintf("%v is not a multi-class average", average))
	}
}
