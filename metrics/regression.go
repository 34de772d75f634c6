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

	"github.com/juju/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// residuals returns yTrue - yPred.
func residuals(yTrue, yPred []float64) []float64 {
	return floats.SubTo(make([]float64, len(yTrue)), yTrue, yPred)
}

func meanSquare(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Dot(x, x) / float64(len(x))
}

// MeanSquaredError is the mean of squared differences. It is 0 for empty inputs.
func MeanSquaredError(yTrue, yPred any) (float64, error) {
	vectorTrue, vectorPred, err := Validate(yTrue, yPred)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return meanSquare(residuals(vectorTrue, vectorPred)), nil
}

// RootMeanSquaredError is the square root of MeanSquaredError.
func RootMeanSquaredError(yTrue, yPred any) (float64, error) {
	mse, err := MeanSquaredError(yTrue, yPred)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return math.Sqrt(mse), nil
}

// MeanAbsoluteError is the mean of absolute differences. It is 0 for empty inputs.
func MeanAbsoluteError(yTrue, yPred any) (float64, error) {
	vectorTrue, vectorPred, err := Validate(yTrue, yPred)
	if err != nil {
		return 0, errors.Trace(err)
	}
	if len(vectorTrue) == 0 {
		return 0, nil
	}
	return floats.Norm(residuals(vectorTrue, vectorPred), 1) / float64(len(vectorTrue)), nil
}

// R2 is the coefficient of determination:
//
//	1 - \frac{mean((y - \hat{y})^2)}{var(y)}
//
// It is undefined (ErrDomain) if the variance of the ground truth is zero.
func R2(yTrue, yPred any) (float64, error) {
	vectorTrue, vectorPred, err := Validate(yTrue, yPred)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return r2(vectorTrue, vectorPred)
}

func r2(yTrue, yPred []float64) (float64, error) {
	if len(yTrue) == 0 {
		return 0, domainErrorf("the coefficient of determination is undefined for empty inputs")
	}
	variance := stat.PopVariance(yTrue, nil)
	if variance == 0 {
		return 0, domainErrorf("the coefficient of determination is undefined when the variance of y_true is zero")
	}
	return 1 - meanSquare(residuals(yTrue, yPred))/variance, nil
}
