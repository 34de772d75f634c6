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

var regressCommand = &cobra.Command{
	Use:   "regress [csv file]",
	Short: "Evaluate predictions of a regression model",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conf := setup(cmd, regressionTask)
		progress, _ := cmd.Flags().GetBool("progress")
		data, err := loadDataset(args[0], conf.Input, progress)
		if err != nil {
			log.Logger().Fatal("failed to load dataset", zap.String("csv_file", args[0]), zap.Error(err))
		}
		log.Logger().Info("load dataset", zap.String("csv_file", args[0]), zap.Int("n_samples", data.Count()))
		r, err := regress(data, &conf.Evaluation)
		if err != nil {
			log.Logger().Fatal("failed to evaluate", zap.Error(err))
		}
		if err = writeResult(os.Stdout, r, conf.Output.Format, conf.Output.Digits); err != nil {
			log.Logger().Fatal("failed to write result", zap.Error(err))
		}
	},
}

func init() {
	addRegressFlags(regressCommand.Flags())
}

func addRegressFlags(flags *pflag.FlagSet) {
	flags.StringSlice("metrics", nil, "metrics to evaluate (mse, rmse, mae and r2)")
}

func regress(data *dataset.Dataset, evaluation *config.EvaluationConfig) (*result, error) {
	report, err := metrics.NewRegressionReport(data.GetTrue(), data.GetPred())
	if err != nil {
		return nil, errors.Trace(err)
	}
	r := newResult(regressionTask, data)
	for _, name := range evaluation.RegressionMetrics {
		switch name {
		case "mse":
			r.add(name, "", report.MSE)
		case "rmse":
			r.add(name, "", report.RMSE)
		case "mae":
			r.add(name, "", report.MAE)
		case "r2":
			if report.R2 == nil {
				log.Logger().Warn("r2 is undefined since ground truth is constant")
				continue
			}
			r.add(name, "", *report.R2)
		default:
			return nil, errors.NotSupportedf("regression metric %s", name)
		}
	}
	return r, nil
}
