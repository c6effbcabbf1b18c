/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	"fmt"
	"os"
	"strconv"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/cecbench/pkg/singleobjective/framework"
)

// Instance is one (suite, problem, dimension) triple of a run.
type Instance struct {
	Suite     framework.Suite
	ID        int
	Dimension int
	// Points are the explicit points of the instance.
	Points [][]float64
}

// Load reads, defaults and validates a BenchmarkConfig file.
func Load(path string) (*BenchmarkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a YAML or JSON BenchmarkConfig, rejecting unknown fields,
// then defaults and validates it.
func Decode(data []byte) (*BenchmarkConfig, error) {
	cfg := &BenchmarkConfig{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, err
	}
	SetDefaults_BenchmarkConfig(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns every problem of cfg aggregated into one error.
func Validate(cfg *BenchmarkConfig) error {
	return ValidateBenchmarkConfig(cfg).ToAggregate()
}

// ValidateBenchmarkConfig lists the invalid fields of cfg.
func ValidateBenchmarkConfig(cfg *BenchmarkConfig) field.ErrorList {
	allErrs := field.ErrorList{}
	if cfg.APIVersion != SchemeGroupVersion.String() {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("apiVersion"), cfg.APIVersion, []string{SchemeGroupVersion.String()}))
	}
	if cfg.Kind != Kind {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("kind"), cfg.Kind, []string{Kind}))
	}
	if cfg.Samples != nil && *cfg.Samples < 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("samples"), *cfg.Samples, "must not be negative"))
	}
	if cfg.Workers != nil && *cfg.Workers < 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("workers"), *cfg.Workers, "must not be negative"))
	}
	if cfg.PlotResolution != nil && *cfg.PlotResolution < 2 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("plotResolution"), *cfg.PlotResolution, "must be at least 2"))
	}

	problemsPath := field.NewPath("problems")
	if len(cfg.Problems) == 0 {
		allErrs = append(allErrs, field.Required(problemsPath, "at least one entry is required"))
	}
	for i, p := range cfg.Problems {
		allErrs = append(allErrs, validateProblem(problemsPath.Index(i), p)...)
	}
	return allErrs
}

func validateProblem(path *field.Path, p ProblemSpec) field.ErrorList {
	suite, err := framework.ParseSuite(p.Suite)
	if err != nil {
		var valid []string
		for _, s := range framework.Suites() {
			valid = append(valid, s.String())
		}
		return field.ErrorList{field.NotSupported(path.Child("suite"), p.Suite, valid)}
	}
	allErrs := field.ErrorList{}
	if len(p.Dimensions) == 0 {
		allErrs = append(allErrs, field.Required(path.Child("dimensions"), "at least one dimension is required"))
	}
	for i, dim := range p.Dimensions {
		if err := suite.Validate(1, dim); err != nil {
			allErrs = append(allErrs, field.NotSupported(path.Child("dimensions").Index(i), dim, dimensionNames(suite)))
		}
	}
	for i, id := range p.IDs {
		if id < 1 || id > suite.Problems() {
			allErrs = append(allErrs, field.Invalid(path.Child("ids").Index(i), id, fmt.Sprintf("%v has problems 1 to %d", suite, suite.Problems())))
		}
	}
	return allErrs
}

func dimensionNames(suite framework.Suite) []string {
	var out []string
	for _, dim := range suite.Dimensions() {
		out = append(out, strconv.Itoa(dim))
	}
	return out
}

// Instances expands the problems of a validated cfg.
func (cfg *BenchmarkConfig) Instances() ([]Instance, error) {
	var out []Instance
	for _, p := range cfg.Problems {
		suite, err := framework.ParseSuite(p.Suite)
		if err != nil {
			return nil, err
		}
		ids := p.IDs
		if len(ids) == 0 {
			for id := 1; id <= suite.Problems(); id++ {
				ids = append(ids, id)
			}
		}
		for _, id := range ids {
			for _, dim := range p.Dimensions {
				inst := Instance{Suite: suite, ID: id, Dimension: dim}
				for _, x := range p.Points {
					if len(x) == dim {
						inst.Points = append(inst.Points, x)
					}
				}
				out = append(out, inst)
			}
		}
	}
	return out, nil
}
