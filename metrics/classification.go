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

import "github.com/juju/errors"

// Option customizes precision, recall and F1.
type Option func(*options)

type options struct {
	average  Average
	posLabel float64
	err      error
}

// WithAverage sets the averaging mode.
func WithAverage(average Average) Option {
	return func(o *options) {
		o.average = average
	}
}

// WithAverageOf sets the averaging mode from a dynamic value, see AverageOf.
func WithAverageOf(v any) Option {
	return func(o *options) {
		average, err := AverageOf(v)
		if err != nil {
			o.err = err
			return
		}
		o.average = average
	}
}

// WithPosLabel sets the label treated as positive in Binary mode. It is 1 by default.
func WithPosLabel(label float64) Option {
	return func(o *options) {
		o.posLabel = label
	}
}

func newOptions(average Average, opts []Option) (*options, error) {
	o := &options{average: average, posLabel: 1}
	for _, opt := range opts {
		opt(o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.average.valid() {
		return nil, invalidAverage(o.average.String())
	}
	return o, nil
}

// Accuracy is the fraction of positions where predictions equal the ground truth.
// It is 0 for empty inputs.
func Accuracy(yTrue, yPred any) (float64, error) {
	vectorTrue, vectorPred, err := Validate(yTrue, yPred)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return agreement(vectorTrue, vectorPred), nil
}

// Precision is the fraction of true positives among predicted positives:
//
//	\frac{TP}{TP + FP}
//
// The averaging mode is Binary by default.
func Precision(yTrue, yPred any, opts ...Option) (Score, error) {
	return evaluate(yTrue, yPred, Binary, precisionScorer, opts)
}

// Recall is the fraction of true positives among actual positives:
//
//	\frac{TP}{TP + FN}
//
// Unlike Precision, the averaging mode is Micro by default.
func Recall(yTrue, yPred any, opts ...Option) (Score, error) {
	return evaluate(yTrue, yPred, Micro, recallScorer, opts)
}

// F1 is the harmonic mean of precision and recall. The averaging mode is Binary by default.
func F1(yTrue, yPred any, opts ...Option) (Score, error) {
	return evaluate(yTrue, yPred, Binary, f1Scorer, opts)
}

func evaluate(yTrue, yPred any, average Average, score scorer, opts []Option) (Score, error) {
	o, err := newOptions(average, opts)
	if err != nil {
		return Score{}, errors.Trace(err)
	}
	vectorTrue, vectorPred, err := Validate(yTrue, yPred)
	if err != nil {
		return Score{}, errors.Trace(err)
	}
	return averageScore(vectorTrue, vectorPred, score, o), nil
}
