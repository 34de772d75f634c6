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
	"os"

	"github.com/gorse-io/metrics/base/log"
	"github.com/gorse-io/metrics/config"
	"github.com/gorse-io/metrics/dataset"
	"github.com/gorse-io/metrics/metrics"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var classifyCommand = &cobra.Command{
	Use:   "classify [csv file]",
	Short: "Evaluate predictions of a classification model",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conf := setup(cmd, classificationTask)
		progress, _ := cmd.Flags().GetBool("progress")
		data, err := loadDataset(args[0], conf.Input, progress)
		if err != nil {
			log.Logger().Fatal("failed to load dataset", zap.String("csv_file", args[0]), zap.Error(err))
		}
		log.Logger().Info("load dataset", zap.String("csv_file", args[0]), zap.Int("n_samples", data.Count()))
		report, _ := cmd.Flags().GetBool("report")
		var r *result
		if report {
			r, err = classificationReport(data)
		} else {
			r, err = classify(data, &conf.Evaluation)
		}
		if err != nil {
			log.Logger().Fatal("failed to evaluate", zap.Error(err))
		}
		if err = writeResult(os.Stdout, r, conf.Output.Format, conf.Output.Digits); err != nil {
			log.Logger().Fatal("failed to write result", zap.Error(err))
		}
	},
}

func init() {
	addClassifyFlags(classifyCommand.Flags())
}

func addClassifyFlags(flags *pflag.FlagSet) {
	flags.String("average", "", "averaging mode (binary, micro, macro, weighted or none)")
	flags.String("pos-label", "1", "positive label in binary mode")
	flags.StringSlice("metrics", nil, "metrics to evaluate (accuracy, precision, recall and f1)")
	flags.Bool("report", false, "evaluate precision, recall and F1 of every class")
}

// usesBinary returns true if any configured metric is evaluated in binary mode.
func usesBinary(evaluation *config.EvaluationConfig) bool {
	if evaluation.Average != nil {
		return *evaluation.Average == metrics.Binary
	}
	// precision and F1 default to binary mode
	for _, name := range evaluation.ClassificationMetrics {
		if name == "precision" || name == "f1" {
			return true
		}
	}
	return false
}

func classify(data *dataset.Dataset, evaluation *config.EvaluationConfig) (*result, error) {
	yTrue, yPred, labels := data.EncodeLabels()
	var posLabel float64
	if usesBinary(evaluation) {
		var err error
		if posLabel, err = labels.Value(evaluation.PosLabel); err != nil {
			return nil, errors.Annotate(err, "positive label")
		}
	}
	opts := evaluation.Options(posLabel)
	r := newResult(classificationTask, data)
	if evaluation.Average != nil {
		r.Average = evaluation.Average.String()
	}
	for _, name := range evaluation.ClassificationMetrics {
		var score metrics.Score
		var err error
		switch name {
		case "accuracy":
			score.Value, err = metrics.Accuracy(yTrue, yPred)
		case "precision":
			score, err = metrics.Precision(yTrue, yPred, opts...)
		case "recall":
			score, err = metrics.Recall(yTrue, yPred, opts...)
		case "f1":
			score, err = metrics.F1(yTrue, yPred, opts...)
		default:
			return nil, errors.NotSupportedf("classification metric %s", name)
		}
		if err != nil {
			return nil, errors.Annotatef(err, "failed to evaluate %s", name)
		}
		if score.PerClass == nil {
			r.add(name, "", score.Value)
			continue
		}
		for i, class := range score.Classes {
			r.add(name, labels.Name(class), score.PerClass[i])
		}
	}
	return r, nil
}

func classificationReport(data *dataset.Dataset) (*result, error) {
	yTrue, yPred, labels := data.EncodeLabels()
	report, err := metrics.NewClassificationReport(yTrue, yPred)
	if err != nil {
		return nil, errors.Trace(err)
	}
	r := newResult(classificationTask, data)
	for _, class := range report.Classes {
		name := labels.Name(class.Class)
		r.add("precision", name, class.Precision)
		r.add("recall", name, class.Recall)
		r.add("f1", name, class.F1)
		r.add("support", name, float64(class.Support))
	}
	r.add("accuracy", "", report.Accuracy)
	for _, average := range []struct {
		name   string
		report metrics.AverageReport
	}{
		{metrics.Macro.String(), report.Macro},
		{metrics.Weighted.String(), report.Weighted},
	} {
		r.add("precision", average.name+" avg", average.report.Precision)
		r.add("recall", average.name+" avg", average.report.Recall)
		r.add("f1", average.name+" avg", average.report.F1)
	}
	return r, nil
}

func newResult(task string, data *dataset.Dataset) *result {
	trueColumn, predColumn := data.Columns()
	return &result{
		Task:       task,
		TrueColumn: trueColumn,
		PredColumn: predColumn,
		Count:      data.Count(),
	}
}
