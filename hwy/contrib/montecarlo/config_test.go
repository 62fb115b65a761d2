// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package montecarlo

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, DefaultIterations, cfg.Iterations)
	assert.Empty(t, cfg.Sampler)
	assert.False(t, cfg.AllowScalar)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"ok", Config{Workers: 1, Iterations: 1}, nil},
		{"zero_workers", Config{Workers: 0, Iterations: 1}, ErrInvalidWorkers},
		{"negative_workers", Config{Workers: -3, Iterations: 1}, ErrInvalidWorkers},
		{"zero_iterations", Config{Workers: 1, Iterations: 0}, ErrInvalidIterations},
		{"unknown_sampler", Config{Workers: 1, Iterations: 1, Sampler: "mmx"}, ErrUnknownSampler},
		{"sample_overflow", Config{Workers: 4, Iterations: math.MaxInt64 / 8}, ErrInvalidIterations},
		{"sample_overflow_two_workers", Config{Workers: 2, Iterations: math.MaxUint64 / 8}, ErrInvalidIterations},
		{"scalar_by_name", Config{Workers: 1, Iterations: 1, Sampler: "scalar"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateSampleLimit(t *testing.T) {
	const workers = 4
	limit := math.MaxUint64 / SamplesPerIteration / workers
	cfg := Config{Workers: workers, Iterations: int(limit)}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, uint64(limit)*workers*SamplesPerIteration, cfg.TotalSamples())

	cfg.Iterations++
	require.ErrorIs(t, cfg.Validate(), ErrInvalidIterations)
}

func TestTotalSamples(t *testing.T) {
	cfg := Config{Workers: 13, Iterations: DefaultIterations}
	assert.Equal(t, uint64(DefaultIterations)*13*8, cfg.TotalSamples())
}
