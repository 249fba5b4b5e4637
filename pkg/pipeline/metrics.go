// Copyright (c) 2025, the cylindo-feed authors.
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

package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cyfeed_generate_duration_seconds",
			Help:    "Duration of full feed generation runs in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	rowsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cyfeed_rows_generated_total",
			Help: "Total number of generated feed rows by resolution outcome",
		},
		[]string{"resolution"},
	)

	configWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cyfeed_config_warnings_total",
			Help: "Total number of configuration warnings raised during generation",
		},
	)
)

// Row resolution outcomes used as metric label values.
const (
	resolutionMatched    = "matched"
	resolutionAmbiguous  = "ambiguous"
	resolutionUnresolved = "unresolved"
)
