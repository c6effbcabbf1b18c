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
	"k8s.io/utils/ptr"
)

const (
	DefaultSeed           uint64 = 2014
	DefaultSamples        int32  = 1000
	DefaultWorkers        int32  = 0
	DefaultPlotResolution int32  = 100
)

// SetDefaults_BenchmarkConfig fills the unset fields of obj.
func SetDefaults_BenchmarkConfig(obj *BenchmarkConfig) {
	if len(obj.APIVersion) == 0 {
		obj.APIVersion = SchemeGroupVersion.String()
	}
	if len(obj.Kind) == 0 {
		obj.Kind = Kind
	}
	if obj.Seed == nil {
		obj.Seed = ptr.To(DefaultSeed)
	}
	if obj.Samples == nil {
		obj.Samples = ptr.To(DefaultSamples)
	}
	if obj.Workers == nil {
		obj.Workers = ptr.To(DefaultWorkers)
	}
	if obj.PlotResolution == nil {
		obj.PlotResolution = ptr.To(DefaultPlotResolution)
	}
}
