// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三类：
//   - HTTP请求：请求总数、耗时分布、处理中的请求数（由gin中间件记录）
//   - 图书写操作：按operation（create/update/partial_update/delete）和result统计
//   - 批量导入：按result（loaded/skipped）统计行数
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾（_seconds）。
// 标签只使用有限取值（method、路由模板、结果），不要用图书ID之类的高基数值。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板，如/books/:id/）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// BookWritesTotal 图书写操作总数
	// 标签：operation、result（ok或错误码）
	BookWritesTotal *prometheus.CounterVec

	// LoaderRowsTotal 批量导入处理的行数
	// 标签：result（loaded/skipped）
	LoaderRowsTotal *prometheus.CounterVec

	// EventsPublishedTotal 目录变更事件发布总数
	// 标签：routing_key、result（success/failure）
	EventsPublishedTotal *prometheus.CounterVec
)

// InitMetrics 注册所有指标，可重复调用
func InitMetrics() {
	once.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		BookWritesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_writes_total",
				Help: "图书写操作总数",
			},
			[]string{"operation", "result"},
		)

		LoaderRowsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loader_rows_total",
				Help: "批量导入处理的行数",
			},
			[]string{"result"},
		)

		EventsPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalogue_events_published_total",
				Help: "目录变更事件发布总数",
			},
			[]string{"routing_key", "result"},
		)
	})
}

// IncCounterVec 递增带标签的Counter
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// ObserveHistogramVec 记录带标签的Histogram观测值
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}

// RecordBookWrite 记录一次图书写操作的结果
// result为"ok"或错误码字符串（如"40011"）
func RecordBookWrite(operation, result string) {
	InitMetrics()
	IncCounterVec(BookWritesTotal, map[string]string{
		"operation": operation,
		"result":    result,
	})
}

// RecordLoaderRow 记录一行导入结果
func RecordLoaderRow(result string) {
	InitMetrics()
	IncCounterVec(LoaderRowsTotal, map[string]string{"result": result})
}

// RecordEventPublished 记录一次事件发布
func RecordEventPublished(routingKey string, success bool) {
	InitMetrics()
	result := "success"
	if !success {
		result = "failure"
	}
	IncCounterVec(EventsPublishedTotal, map[string]string{
		"routing_key": routingKey,
		"result":      result,
	})
}
