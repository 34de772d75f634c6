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
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorse-io/metrics/base/log"
	"github.com/gorse-io/metrics/cmd/version"
	"github.com/gorse-io/metrics/config"
	"github.com/gorse-io/metrics/dataset"
	"github.com/gorse-io/metrics/metrics"
	"github.com/juju/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	classificationTask = "classification"
	regressionTask     = "regression"
)

var rootCommand = &cobra.Command{
	Use:   "gorse-metrics",
	Short: "Evaluate predictions of classification and regression models.",
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion, _ := cmd.PersistentFlags().GetBool("version"); showVersion {
			fmt.Println(version.BuildInfo())
			return
		}
		_ = cmd.Help()
	},
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Show the version of gorse-metrics",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.BuildInfo())
	},
}

func init() {
	log.AddFlags(rootCommand.PersistentFlags())
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCommand.PersistentFlags().BoolP("version", "v", false, "gorse-metrics version")
	addCommonFlags(rootCommand.PersistentFlags())
	rootCommand.AddCommand(versionCommand, classifyCommand, regressCommand)
}

// addCommonFlags adds flags shared by evaluation commands.
func addCommonFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "configuration file path")
	// input
	flags.String("csv-sep", ",", "load CSV file with separator")
	flags.Bool("csv-header", false, "load CSV file with header")
	flags.Int("true-column", 0, "column of ground truth")
	flags.Int("pred-column", 1, "column of predictions")
	flags.Bool("progress", false, "show progress of loading CSV file")
	// output
	flags.StringP("output", "o", "table", "output format (table, json, yaml or csv)")
	flags.Int("digits", 4, "number of digits after the decimal point")
}

func main() {
	defer log.CloseLogger()
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}

// setup initializes the logger and loads the config of a command.
func setup(cmd *cobra.Command, task string) *config.Config {
	debug, _ := cmd.Flags().GetBool("debug")
	log.SetLogger(cmd.Flags(), debug)
	conf, err := loadConfig(cmd.Flags(), task)
	if err != nil {
		log.Logger().Fatal("failed to load config", zap.Error(err))
	}
	log.Logger().Debug("load config", zap.Any("config", conf))
	return conf
}

// loadConfig loads the config file and overrides it by flags set on the command line.
func loadConfig(flags *pflag.FlagSet, task string) (*config.Config, error) {
	configPath, _ := flags.GetString("config")
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, errors.Trace(err)
	}
	// input
	if flags.Changed("csv-sep") {
		conf.Input.Separator, _ = flags.GetString("csv-sep")
	}
	if flags.Changed("csv-header") {
		conf.Input.Header, _ = flags.GetBool("csv-header")
	}
	if flags.Changed("true-column") {
		conf.Input.TrueColumn, _ = flags.GetInt("true-column")
	}
	if flags.Changed("pred-column") {
		conf.Input.PredColumn, _ = flags.GetInt("pred-column")
	}
	// evaluation
	if flags.Changed("average") {
		text, _ := flags.GetString("average")
		average, err := metrics.ParseAverage(text)
		if err != nil {
			return nil, errors.Trace(err)
		}
		conf.Evaluation.Average = &average
	}
	if flags.Changed("pos-label") {
		conf.Evaluation.PosLabel, _ = flags.GetString("pos-label")
	}
	if flags.Changed("metrics") {
		names, _ := flags.GetStringSlice("metrics")
		switch task {
		case classificationTask:
			conf.Evaluation.ClassificationMetrics = names
		case regressionTask:
			conf.Evaluation.RegressionMetrics = names
		}
	}
	// output
	if flags.Changed("output") {
		conf.Output.Format, _ = flags.GetString("output")
	}
	if flags.Changed("digits") {
		conf.Output.Digits, _ = flags.GetInt("digits")
	}
	if err = conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return conf, nil
}

// loadDataset loads a CSV file. A progress bar is printed to stderr if progress is set.
func loadDataset(path string, input config.InputConfig, progress bool) (*dataset.Dataset, error) {
	if !progress {
		return dataset.LoadCSV(path, input)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return nil, errors.Trace(err)
	}
	pbReader := progressbar.NewReader(file, progressbar.DefaultBytes(
		info.Size(),
		"Loading "+filepath.Base(path),
	))
	data, err := dataset.ReadCSV(&pbReader, input)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to load %s", path)
	}
	return data, nil
}
