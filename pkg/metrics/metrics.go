// Package metrics 提供基于Prometheus的指标收集
//
// 核心概念：
// 1. **Counter（计数器）**：只增不减的累计值
//   - 示例：HTTP请求总数、借出总数、归还总数
//
// 2. **Gauge（仪表盘）**：可增可减的瞬时值
//   - 示例：正在处理的HTTP请求数
//
// 3. **Histogram（直方图）**：观测值的分布
//   - 示例：借书事务耗时（自动计算P50、P90、P99）
//
// 使用示例：
//
//	// 1. 初始化Metrics
//	metrics.InitMetrics()
//
//	// 2. 在HTTP服务中暴露/metrics端点（Prometheus定期抓取）
//
//	// 3. 在业务代码中记录指标
//	start := time.Now()
//	if err := checkout(ctx); err != nil {
//	    metrics.IncCounterVec(metrics.LoanCheckoutsTotal, map[string]string{"result": "rejected"})
//	    return err
//	}
//	metrics.IncCounterVec(metrics.LoanCheckoutsTotal, map[string]string{"result": "success"})
//	metrics.ObserveHistogram(metrics.LoanTransactionDuration, time.Since(start).Seconds())
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/v1/loans）、status（200/409）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 借阅业务指标

	// LoanCheckoutsTotal 借出请求总数（Counter）
	// 标签：result（success/rejected/error）
	// rejected是正常的业务拒绝（上限、无副本），error是系统故障
	LoanCheckoutsTotal *prometheus.CounterVec

	// LoanReturnsTotal 归还请求总数（Counter）
	// 标签：result（success/rejected/error）
	LoanReturnsTotal *prometheus.CounterVec

	// LoanTransactionDuration 借还事务耗时（Histogram）
	// 事务内包含行锁等待时间，是观察锁竞争的关键指标
	LoanTransactionDuration prometheus.Histogram
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次，用于注册所有指标到全局Registry
//
// 设计要点：
// 1. 使用promauto.New*自动注册到默认Registry
// 2. Counter使用*Vec支持标签（多维度统计）
// 3. Histogram的Buckets根据业务场景定制
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
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

	// 借阅业务指标
	LoanCheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_checkouts_total",
			Help: "借出请求总数",
		},
		[]string{"result"},
	)

	LoanReturnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_returns_total",
			Help: "归还请求总数",
		},
		[]string{"result"},
	)

	LoanTransactionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "loan_transaction_duration_seconds",
			Help: "借还事务耗时（秒）",
			// 借还是短临界区，桶集中在毫秒级
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
}

// 便捷函数说明:
// 指标未初始化时(如单元测试不调用InitMetrics)静默跳过,
// 业务代码无需关心指标是否注册

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter == nil {
		return
	}
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	if histogram == nil {
		return
	}
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}
