// Copyright 2023 ecodeclub
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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder web 和 admin 两个 server 共用同一组指标，用 server 区分
type MetricsBuilder struct {
	server     string
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

var (
	summaryVec = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: "project52",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
		},
		[]string{"server", "method", "path", "status_code"},
	)
	counterVec = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "project52",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"server", "method", "path", "status_code"},
	)
)

func init() {
	prometheus.MustRegister(summaryVec, counterVec)
}

func NewMetricsBuilder(server string) *MetricsBuilder {
	return &MetricsBuilder{
		server:     server,
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		duration := time.Since(start).Seconds()
		method := ctx.Request.Method
		// 用路由模板，避免 path 参数把标签撑爆
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())
		a.summaryVec.WithLabelValues(a.server, method, path, statusCode).Observe(duration)
		a.counterVec.WithLabelValues(a.server, method, path, statusCode).Inc()
	}
}
