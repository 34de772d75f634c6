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
	"github.com/samber/lo"
)

// ClassReport holds the scores of a single class.
type ClassReport struct {
	Class     float64 `json:"class" yaml:"class"`
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
	Support   int     `json:"support" yaml:"support"`
}

// AverageReport holds averaged scores over all classes.
type AverageReport struct {
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
	Support   int     `json:"support" yaml:"support"`
}

// ClassificationReport summarizes classification metrics for every class.
type ClassificationReport struct {
	Classes  []ClassReport `json:"classes" yaml:"classes"`
	Accuracy float64       `json:"accuracy" yaml:"accuracy"`
	Macro    AverageReport `json:"macro_avg" yaml:"macro_avg"`
	Weighted AverageReport `json:"weighted_avg" yaml:"weighted_avg"`
}

// NewClassificationReport computes precision, recall, F1 and support of each class,
// together with accuracy and the macro and weighted averages.
func NewClassificationReport(yTrue, yPred any) (*ClassificationReport, error) {
	vectorTrue, vectorPred, err := Validate(yTrue, yPred)
	if err != nil {
		return nil, errors.Trace(err)
	}
	classes := Classes(vectorTrue, vectorPred)
	table := CountComponents(vectorTrue, vectorPred, classes, TP, FP, FN, Support)
	report := &ClassificationReport{
		Classes: lo.Map(table, func(row []int, i int) ClassReport {
			return ClassReport{
				Class:     classes[i],
				Precision: precisionScorer(row[0], row[1], row[2]),
				Recall:    recallScorer(row[0], row[1], row[2]),
				F1:        f1Scorer(row[0], row[1], row[2]),
				Support:   row[3],
			}
		}),
		Accuracy: agreement(vectorTrue, vectorPred),
	}
	supports := lo.Map(report.Classes, func(c ClassReport, _ int) int { return c.Support })
	summarize := func(average Average) AverageReport {
		column := func(score func(ClassReport) float64) float64 {
			return reduce(average, classes, lo.Map(report.Classes, func(c ClassReport, _ int) float64 {
				return score(c)
			}), supports).Value
		}
		return AverageReport{
			Precision: column(func(c ClassReport) float64 { return c.Precision }),
			Recall:    column(func(c ClassReport) float64 { return c.Recall }),
			F1:        column(func(c ClassReport) float64 { return c.F1 }),
			Support:   len(vectorTrue),
		}
	}
	report.Macro = summarize(Macro)
	report.Weighted = summarize(Weighted)
	return report, nil
}

// RegressionReport summarizes regression metrics. R2 is nil if the ground truth
// has zero variance.
type RegressionReport struct {
	MSE   float64  `json:"mse" yaml:"mse"`
	RMSE  float64  `json:"rmse" yaml:"rmse"`
	MAE   float64  `json:"mae" yaml:"mae"`
	R2    *float64 `json:"r2,omitempty" yaml:"r2,omitempty"`
	Count int      `json:"count" yaml:"count"`
}

// NewRegressionReport computes MSE, RMSE, MAE and R2 at once.
func NewRegressionReport(yTrue, yPred any) (*RegressionReport, error) {
	vectorTrue, vectorPred, err := Validate(yTrue, yPred)
	if err != nil {
		return nil, errors.Trace(err)
	}
	report := &RegressionReport{Count: len(vectorTrue)}
	report.MSE = meanSquare(residuals(vectorTrue, vectorPred))
	report.RMSE = math.Sqrt(report.MSE)
	if report.MAE, err = MeanAbsoluteError(vectorTrue, vectorPred); err != nil {
		return nil, errors.Trace(err)
	}
	score, err := r2(vectorTrue, vectorPred)
	switch {
	case err == nil:
		report.R2 = &score
	case !errors.Is(err, ErrDomain):
		return nil, errors.Trace(err)
	}
	return report, nil
}
