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

package config

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/go-viper/mapstructure/v2"
	"github.com/gorse-io/metrics/metrics"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var (
	ClassificationMetrics = mapset.NewSet("accuracy", "precision", "recall", "f1")
	RegressionMetrics     = mapset.NewSet("mse", "rmse", "mae", "r2")
	OutputFormats         = mapset.NewSet("table", "json", "yaml", "csv")
)

// Config is the configuration for gorse-metrics.
type Config struct {
	Input      InputConfig      `mapstructure:"input"`
	Evaluation EvaluationConfig `mapstructure:"evaluation"`
	Output     OutputConfig     `mapstructure:"output"`
}

// InputConfig describes where ground truth and predictions are stored in a delimited file.
type InputConfig struct {
	Separator  string `mapstructure:"separator" validate:"len=1"`
	Header     bool   `mapstructure:"header"`
	TrueColumn int    `mapstructure:"true_column" validate:"gte=0"`
	PredColumn int    `mapstructure:"pred_column" validate:"gte=0,nefield=TrueColumn"`
}

type EvaluationConfig struct {
	ClassificationMetrics []string `mapstructure:"classification_metrics" validate:"required"`
	RegressionMetrics     []string `mapstructure:"regression_metrics" validate:"required"`
	// Average overrides the default averaging mode of each metric if set.
	Average *metrics.Average `mapstructure:"average"`
	// PosLabel is the positive label in binary mode, either a number or a class name.
	PosLabel string `mapstructure:"pos_label" validate:"required"`
}

// Options converts the evaluation config to metric options. The positive label
// must be resolved by the caller since it depends on how labels are encoded.
func (config *EvaluationConfig) Options(posLabel float64) []metrics.Option {
	opts := []metrics.Option{metrics.WithPosLabel(posLabel)}
	if config.Average != nil {
		opts = append(opts, metrics.WithAverage(*config.Average))
	}
	return opts
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	Digits int    `mapstructure:"digits" validate:"gte=0,lte=17"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Separator:  ",",
			TrueColumn: 0,
			PredColumn: 1,
		},
		Evaluation: EvaluationConfig{
			ClassificationMetrics: []string{"accuracy", "precision", "recall", "f1"},
			RegressionMetrics:     []string{"mse", "rmse", "mae", "r2"},
			PosLabel:              "1",
		},
		Output: OutputConfig{
			Format: "table",
			Digits: 4,
		},
	}
}

func setDefault(v *viper.Viper) {
	defaultConfig := GetDefaultConfig()
	// [input]
	v.SetDefault("input.separator", defaultConfig.Input.Separator)
	v.SetDefault("input.header", defaultConfig.Input.Header)
	v.SetDefault("input.true_column", defaultConfig.Input.TrueColumn)
	v.SetDefault("input.pred_column", defaultConfig.Input.PredColumn)
	// [evaluation]
	v.SetDefault("evaluation.classification_metrics", defaultConfig.Evaluation.ClassificationMetrics)
	v.SetDefault("evaluation.regression_metrics", defaultConfig.Evaluation.RegressionMetrics)
	v.SetDefault("evaluation.pos_label", defaultConfig.Evaluation.PosLabel)
	// [output]
	v.SetDefault("output.format", defaultConfig.Output.Format)
	v.SetDefault("output.digits", defaultConfig.Output.Digits)
}

// LoadConfig loads configuration from a TOML, YAML or JSON file. Every option could be
// overridden by environment variables such as GORSE_METRICS_EVALUATION_AVERAGE. Defaults
// are used if path is empty.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefault(v)
	v.SetEnvPrefix("gorse_metrics")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("evaluation.average"); err != nil {
		return nil, errors.Trace(err)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Annotatef(err, "failed to read config %s", path)
		}
	}
	var conf Config
	if err := v.Unmarshal(&conf, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	))); err != nil {
		return nil, errors.Annotate(err, "failed to parse config")
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}

func (config *Config) Validate() error {
	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return errors.Trace(err)
	}
	if err := validate.Struct(config); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := lo.Map(validationErrors, func(fieldError validator.FieldError, _ int) string {
				return fieldError.Translate(trans)
			})
			return errors.NewNotValid(err, "invalid config: "+strings.Join(messages, "; "))
		}
		return errors.NewNotValid(err, "invalid config")
	}
	if err := validateSubset("evaluation.classification_metrics", config.Evaluation.ClassificationMetrics, ClassificationMetrics); err != nil {
		return errors.Trace(err)
	}
	if err := validateSubset("evaluation.regression_metrics", config.Evaluation.RegressionMetrics, RegressionMetrics); err != nil {
		return errors.Trace(err)
	}
	if !OutputFormats.Contains(config.Output.Format) {
		return errors.NotValidf("value of `output.format` must be one of %v, but the current value is %s",
			OutputFormats, config.Output.Format)
	}
	return nil
}

func validateSubset(name string, values []string, expected mapset.Set[string]) error {
	if !mapset.NewSet(values...).IsSubset(expected) {
		return errors.NotValidf("value of `%s` must be a subset of %v, but the current value is [%s]",
			name, expected, strings.Join(values, ","))
	}
	return nil
}
