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

import "errors"

var (
	// ErrInvalidWorkers is returned when the worker count is below one.
	ErrInvalidWorkers = errors.New("montecarlo: workers must be at least 1")

	// ErrInvalidIterations is returned when the iteration count is below one.
	ErrInvalidIterations = errors.New("montecarlo: iterations must be at least 1")

	// ErrUnknownSampler is returned when a sampler name is not registered.
	ErrUnknownSampler = errors.New("montecarlo: unknown sampler")

	// ErrNoVectorSupport is returned when only the scalar kernel is available
	// and the configuration does not allow it.
	ErrNoVectorSupport = errors.New("montecarlo: no vector sampling kernel for this CPU")
)
