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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/cecbench/pkg/singleobjective/framework"
)

func TestSetDefaults(t *testing.T) {
	cfg := &BenchmarkConfig{Samples: ptr.To[int32](5)}
	SetDefaults_BenchmarkConfig(cfg)

	want := &BenchmarkConfig{
		TypeMeta:       metav1.TypeMeta{APIVersion: SchemeGroupVersion.String(), Kind: Kind},
		Seed:           ptr.To(DefaultSeed),
		Samples:        ptr.To[int32](5),
		Workers:        ptr.To(DefaultWorkers),
		PlotResolution: ptr.To(DefaultPlotResolution),
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("SetDefaults_BenchmarkConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode(t *testing.T) {
	data := []byte(`
apiVersion: config.cecbench.io/v1alpha1
kind: BenchmarkConfig
dataDir: /data/cec2014
samples: 100
problems:
- suite: CEC2014
  ids: [1, 17]
  dimensions: [2, 10]
  points:
  - [1, 2]
- suite: cec2013
  dimensions: [5]
`)
	cfg, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "/data/cec2014", cfg.DataDir)
	assert.Equal(t, int32(100), *cfg.Samples)
	assert.Equal(t, DefaultSeed, *cfg.Seed)

	instances, err := cfg.Instances()
	require.NoError(t, err)
	require.Len(t, instances, 4+28)
	want := []Instance{
		{Suite: framework.CEC2014, ID: 1, Dimension: 2, Points: [][]float64{{1, 2}}},
		{Suite: framework.CEC2014, ID: 1, Dimension: 10},
		{Suite: framework.CEC2014, ID: 17, Dimension: 2, Points: [][]float64{{1, 2}}},
		{Suite: framework.CEC2014, ID: 17, Dimension: 10},
	}
	if diff := cmp.Diff(want, instances[:4]); diff != "" {
		t.Errorf("Instances() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Instance{Suite: framework.CEC2013, ID: 28, Dimension: 5}, instances[len(instances)-1])
}

func TestDecodeRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"unknown field", "problems: []\nbogus: 1\n", "bogus"},
		{"no problems", "problems: []\n", "at least one entry"},
		{"wrong kind", "kind: Pod\nproblems: [{suite: CEC2014, dimensions: [10]}]\n", "kind"},
		{"unknown suite", "problems: [{suite: CEC2017, dimensions: [10]}]\n", "problems[0].suite"},
		{"bad dimension", "problems: [{suite: CEC2014, dimensions: [5]}]\n", "problems[0].dimensions[0]"},
		{"bad id", "problems: [{suite: CEC2013, ids: [29], dimensions: [10]}]\n", "problems[0].ids[0]"},
		{"missing dimensions", "problems: [{suite: CEC2013}]\n", "at least one dimension"},
		{"negative samples", "samples: -1\nproblems: [{suite: CEC2013, dimensions: [10]}]\n", "samples"},
		{"tiny plot", "plotResolution: 1\nproblems: [{suite: CEC2013, dimensions: [10]}]\n", "plotResolution"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("problems: [{suite: CEC2014, ids: [3], dimensions: [30]}]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	instances, err := cfg.Instances()
	require.NoError(t, err)
	assert.Equal(t, []Instance{{Suite: framework.CEC2014, ID: 3, Dimension: 30}}, instances)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateBenchmarkConfigFieldPaths(t *testing.T) {
	cfg := &BenchmarkConfig{Problems: []ProblemSpec{
		{Suite: "CEC2014", IDs: []int{3, 31}, Dimensions: []int{10, 7}},
		{Suite: "CEC2017", Dimensions: []int{10}},
	}}
	cfg.Workers = ptr.To[int32](-2)
	SetDefaults_BenchmarkConfig(cfg)

	var got []string
	for _, err := range ValidateBenchmarkConfig(cfg) {
		got = append(got, string(err.Type)+" "+err.Field)
	}
	want := []string{
		string(field.ErrorTypeInvalid) + " workers",
		string(field.ErrorTypeNotSupported) + " problems[0].dimensions[1]",
		string(field.ErrorTypeInvalid) + " problems[0].ids[1]",
		string(field.ErrorTypeNotSupported) + " problems[1].suite",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ValidateBenchmarkConfig() mismatch (-want +got):\n%s", diff)
	}

	cfg.Workers = ptr.To[int32](0)
	cfg.Problems = cfg.Problems[:1]
	cfg.Problems[0].IDs = []int{3}
	cfg.Problems[0].Dimensions = []int{10}
	assert.Empty(t, ValidateBenchmarkConfig(cfg))
	assert.NoError(t, Validate(cfg))
}
