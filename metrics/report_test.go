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
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassificationReport(t *testing.T) {
	report, err := NewClassificationReport([]int{0, 1, 2, 0}, []int{0, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []ClassReport{
		{Class: 0, Precision: 1, Recall: 1, F1: 1, Support: 2},
		{Class: 1, Precision: 0, Recall: 0, F1: 0, Support: 1},
		{Class: 2, Precision: 0, Recall: 0, F1: 0, Support: 1},
	}, report.Classes)
	assert.Equal(t, 0.5, report.Accuracy)
	assert.InDelta(t, 1.0/3, report.Macro.Precision, 1e-12)
	assert.InDelta(t, 1.0/3, report.Macro.Recall, 1e-12)
	assert.InDelta(t, 1.0/3, report.Macro.F1, 1e-12)
	assert.Equal(t, 4, report.Macro.Support)
	assert.Equal(t, AverageReport{Precision: 0.5, Recall: 0.5, F1: 0.5, Support: 4}, report.Weighted)

	// consistent with the metric functions
	precision, err := Precision([]int{0, 1, 2, 0}, []int{0, 2, 1, 0}, WithAverage(Macro))
	require.NoError(t, err)
	assert.Equal(t, precision.Value, report.Macro.Precision)

	_, err = NewClassificationReport([]int{0}, []int{0, 1})
	assert.True(t, errors.Is(err, ErrShape))
}

func TestRegressionReport(t *testing.T) {
	report, err := NewRegressionReport([]float64{1, 2, 3}, []float64{1, 2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, report.MSE, 1e-12)
	assert.InDelta(t, 0.57735, report.RMSE, 1e-5)
	assert.InDelta(t, 1.0/3, report.MAE, 1e-12)
	require.NotNil(t, report.R2)
	assert.InDelta(t, 0.5, *report.R2, 1e-12)
	assert.Equal(t, 3, report.Count)

	// undefined R2
	report, err = NewRegressionReport([]float64{1, 1, 1}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Nil(t, report.R2)
	assert.InDelta(t, 5.0/3, report.MSE, 1e-12)

	_, err = NewRegressionReport([]float64{1}, "1")
	assert.True(t, errors.Is(err, ErrConversion))
}
