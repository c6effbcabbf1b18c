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

// Package v1alpha1 holds the versioned configuration of a batch benchmark run.
package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// GroupName is the API group of the configuration types.
const GroupName = "config.cecbench.io"

// Kind is the kind of BenchmarkConfig documents.
const Kind = "BenchmarkConfig"

// SchemeGroupVersion is the group version accepted by this package.
var SchemeGroupVersion = schema.GroupVersion{Group: GroupName, Version: "v1alpha1"}

// BenchmarkConfig describes a batch of problem instances to build, sample
// and optionally plot.
type BenchmarkConfig struct {
	metav1.TypeMeta `json:",inline"`

	// DataDir holds the official text tables. When empty, deterministic
	// synthetic tables are generated from Seed.
	DataDir string `json:"dataDir,omitempty"`

	// CheckOrthogonality verifies M·Mᵀ = I for every loaded rotation matrix
	CheckOrthogonality bool `json:"checkOrthogonality,omitempty"`

	// Seed drives the synthetic tables and the sampled points
	Seed *uint64 `json:"seed,omitempty"`

	// Samples is the number of uniform points evaluated per instance
	Samples *int32 `json:"samples,omitempty"`

	// Workers bounds the concurrent evaluations. Zero uses one worker per CPU.
	Workers *int32 `json:"workers,omitempty"`

	// PlotDir receives a landscape heat map of every 2-D instance when set
	PlotDir string `json:"plotDir,omitempty"`

	// PlotResolution is the number of grid points per axis of a heat map
	PlotResolution *int32 `json:"plotResolution,omitempty"`

	// Problems lists the instances of the run
	Problems []ProblemSpec `json:"problems"`
}

// ProblemSpec selects problem instances of one suite
type ProblemSpec struct {
	// Suite is CEC2013 or CEC2014
	Suite string `json:"suite"`

	// IDs lists the problem numbers. Empty selects every problem of the suite.
	IDs []int `json:"ids,omitempty"`

	// Dimensions lists the dimensions each problem is built with
	Dimensions []int `json:"dimensions"`

	// Points are evaluated exactly, in addition to the sampled ones. Only
	// points matching the instance dimension are used.
	Points [][]float64 `json:"points,omitempty"`
}
