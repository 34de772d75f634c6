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
	"math"
	"math/rand"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestAccuracy(t *testing.T) {
	accuracy, err := Accuracy([]int{1, 0, 1, 1}, []int{1, 0, 1, 1})
	assert.NoError(t, err)
	assert.Equal(t, 1.0, accuracy)
	accuracy, err = Accuracy([]int{1, 0, 1, 1}, []int{1, 1, 0, 1})
	assert.NoError(t, err)
	assert.Equal(t, 0.5, accuracy)
	accuracy, err = Accuracy([]int{}, []int{})
	assert.NoError(t, err)
	assert.Zero(t, accuracy)
	_, err = Accuracy([]int{1, 0}, []int{1})
	assert.True(t, errors.Is(err, ErrShape))
}

func TestPrecisionBinary(t *testing.T) {
	score, err := Precision([]int{1, 0, 1, 1}, []int{1, 0, 0, 1}, WithAverage(Binary), WithPosLabel(1))
	assert.NoError(t, err)
	assert.Equal(t, 1.0, score.Value)
	assert.Nil(t, score.PerClass)
	// no predicted positives
	score, err = Precision([]int{1, 1, 0}, []int{0, 0, 0}, WithAverage(Binary))
	assert.NoError(t, err)
	assert.Zero(t, score.Value)
	assert.False(t, math.IsNaN(score.Value))
	// another positive label
	score, err = Precision([]int{1, 0, 1, 1}, []int{1, 0, 0, 1}, WithPosLabel(0))
	assert.NoError(t, err)
	assert.Equal(t, 0.5, score.Value)
}

func TestRecallBinary(t *testing.T) {
	score, err := Recall([]int{1, 0, 1, 1}, []int{1, 0, 0, 1}, WithAverage(Binary), WithPosLabel(1))
	assert.NoError(t, err)
	assert.InDelta(t, 0.667, score.Value, 1e-3)
	// no actual positives
	score, err = Recall([]int{0, 0}, []int{1, 0}, WithAverage(Binary))
	assert.NoError(t, err)
	assert.Zero(t, score.Value)
	score, err = Recall([]int{1, 0, 1, 1}, []int{1, 0, 0, 1}, WithAverage(Binary), WithPosLabel(0))
	assert.NoError(t, err)
	assert.Equal(t, 1.0, score.Value)
}

func TestDefaultAverage(t *testing.T) {
	yTrue := []int{0, 1, 2, 2}
	yPred := []int{0, 2, 2, 1}
	// precision is binary by default
	precision, err := Precision(yTrue, yPred)
	assert.NoError(t, err)
	assert.Zero(t, precision.Value)
	// recall is micro by default
	recall, err := Recall(yTrue, yPred)
	assert.NoError(t, err)
	assert.Equal(t, 0.5, recall.Value)
	// f1 is binary by default
	f1, err := F1(yTrue, yPred)
	assert.NoError(t, err)
	assert.Zero(t, f1.Value)
}

func TestMicroEqualsAccuracy(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		n := rng.Intn(20)
		yTrue, yPred := make([]int, n), make([]int, n)
		for j := 0; j < n; j++ {
			yTrue[j] = rng.Intn(4)
			yPred[j] = rng.Intn(4)
		}
		accuracy, err := Accuracy(yTrue, yPred)
		assert.NoError(t, err)
		precision, err := Precision(yTrue, yPred, WithAverage(Micro))
		assert.NoError(t, err)
		recall, err := Recall(yTrue, yPred, WithAverage(Micro))
		assert.NoError(t, err)
		f1, err := F1(yTrue, yPred, WithAverage(Micro))
		assert.NoError(t, err)
		assert.Equal(t, accuracy, precision.Value)
		assert.Equal(t, accuracy, recall.Value)
		assert.Equal(t, accuracy, f1.Value)
	}
}

func TestIdenticalVectors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		y := make([]float64, 1+rng.Intn(20))
		for j := range y {
			y[j] = float64(rng.Intn(5))
		}
		accuracy, err := Accuracy(y, y)
		assert.NoError(t, err)
		assert.Equal(t, 1.0, accuracy)
	}
}

func TestWeighted(t *testing.T) {
	yTrue := []int{0, 1, 2, 0}
	yPred := []int{0, 2, 1, 0}
	precision, err := Precision(yTrue, yPred, WithAverage(Weighted))
	assert.NoError(t, err)
	assert.Equal(t, 0.5, precision.Value)
	recall, err := Recall(yTrue, yPred, WithAverage(Weighted))
	assert.NoError(t, err)
	assert.Equal(t, 0.5, recall.Value)
	f1, err := F1(yTrue, yPred, WithAverage(Weighted))
	assert.NoError(t, err)
	assert.Equal(t, 0.5, f1.Value)
}

func TestMacro(t *testing.T) {
	yTrue := []int{0, 1, 2, 0}
	yPred := []int{0, 2, 1, 0}
	precision, err := Precision(yTrue, yPred, WithAverage(Macro))
	assert.NoError(t, err)
	assert.InDelta(t, 1.0/3, precision.Value, 1e-12)
	recall, err := Recall(yTrue, yPred, WithAverage(Macro))
	assert.NoError(t, err)
	assert.InDelta(t, 1.0/3, recall.Value, 1e-12)
	// classes that are never predicted
	precision, err = Precision([]int{0, 1, 2, 2}, []int{0, 0, 0, 0}, WithAverage(Macro))
	assert.NoError(t, err)
	assert.InDelta(t, 0.25/3, precision.Value, 1e-12)
}

func TestNone(t *testing.T) {
	yTrue := []int{0, 1, 2, 0}
	yPred := []int{0, 2, 1, 3}
	precision, err := Precision(yTrue, yPred, WithAverage(None))
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, precision.Classes)
	assert.Equal(t, []float64{1, 0, 0, 0}, precision.PerClass)
	recall, err := Recall(yTrue, yPred, WithAverageOf(nil))
	assert.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0, 0, 0}, recall.PerClass)
	for _, score := range append(precision.PerClass, recall.PerClass...) {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestZeroDivision(t *testing.T) {
	yTrue := []int{0, 0}
	yPred := []int{1, 1}
	for _, average := range []Average{Macro, Weighted, None} {
		precision, err := Precision(yTrue, yPred, WithAverage(average))
		assert.NoError(t, err)
		recall, err := Recall(yTrue, yPred, WithAverage(average))
		assert.NoError(t, err)
		f1, err := F1(yTrue, yPred, WithAverage(average))
		assert.NoError(t, err)
		for _, score := range []Score{precision, recall, f1} {
			assert.Zero(t, score.Value)
			for _, value := range score.PerClass {
				assert.Zero(t, value)
				assert.False(t, math.IsNaN(value))
				assert.False(t, math.IsInf(value, 0))
			}
		}
	}
}

func TestEmptyInputs(t *testing.T) {
	for _, average := range []Average{Binary, Micro, Macro, Weighted} {
		score, err := Precision([]int{}, []int{}, WithAverage(average))
		assert.NoError(t, err)
		assert.Zero(t, score.Value)
		score, err = Recall([]int{}, []int{}, WithAverage(average))
		assert.NoError(t, err)
		assert.Zero(t, score.Value)
	}
	score, err := Precision([]int{}, []int{}, WithAverage(None))
	assert.NoError(t, err)
	assert.Empty(t, score.PerClass)
}

func TestF1(t *testing.T) {
	score, err := F1([]int{1, 0, 1, 1}, []int{1, 0, 0, 1})
	assert.NoError(t, err)
	assert.InDelta(t, 0.8, score.Value, 1e-12)
	score, err = F1([]int{0, 1, 2, 0}, []int{0, 2, 1, 0}, WithAverage(None))
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0}, score.PerClass)
}

func TestAverageValidatedFirst(t *testing.T) {
	// the averaging mode is checked before the inputs
	_, err := Precision("not a vector", []int{1}, WithAverageOf("median"))
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	_, err = Recall([]int{1, 2}, []int{1}, WithAverageOf(3.5))
	assert.True(t, errors.Is(err, ErrType))
	_, err = F1([]int{1}, []int{1}, WithAverage(Average(10)))
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	// invalid inputs
	_, err = Precision([]int{1, 2}, []int{1}, WithAverage(Macro))
	assert.True(t, errors.Is(err, ErrShape))
	_, err = Recall([]string{"a"}, []string{"b"})
	assert.True(t, errors.Is(err, ErrConversion))
}

func TestNumericStrings(t *testing.T) {
	score, err := Precision([]string{"1", "0", "1", "1"}, []float64{1, 0, 0, 1})
	assert.NoError(t, err)
	assert.Equal(t, 1.0, score.Value)
}
