// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package api

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cookwire/cookwire/pkg/errors"
)

const outcomeSuccess = "success"

var (
	conversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookwire_conversions_total",
			Help: "Total number of recipe and aisle conversions by outcome",
		},
		[]string{"operation", "outcome"},
	)

	conversionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cookwire_conversion_duration_seconds",
			Help:    "Time spent converting a single document",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)

	batchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookwire_batch_size",
			Help:    "Number of recipes per batch request",
			Buckets: prometheus.LinearBuckets(1, 10, 10),
		},
	)
)

// outcome is the metric label for err: "success" or the lowercased code.
func outcome(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	return strings.ToLower(string(errors.CodeOf(err)))
}

func observeConversion(operation string, start time.Time, err error) {
	conversionsTotal.WithLabelValues(operation, outcome(err)).Inc()
	conversionDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
