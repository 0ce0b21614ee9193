package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	// 验证所有指标已创建
	require.NotNil(t, HTTPRequestsTotal, "HTTPRequestsTotal未初始化")
	require.NotNil(t, HTTPRequestDuration, "HTTPRequestDuration未初始化")
	require.NotNil(t, HTTPRequestsInProgress, "HTTPRequestsInProgress未初始化")
	require.NotNil(t, LoanCheckoutsTotal, "LoanCheckoutsTotal未初始化")
	require.NotNil(t, LoanReturnsTotal, "LoanReturnsTotal未初始化")
	require.NotNil(t, LoanTransactionDuration, "LoanTransactionDuration未初始化")

	// 重复初始化不应panic（防止重复注册）
	InitMetrics()
}

// TestCheckoutCounter 测试借出计数器
func TestCheckoutCounter(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(LoanCheckoutsTotal.WithLabelValues("success"))

	IncCounterVec(LoanCheckoutsTotal, map[string]string{"result": "success"})
	IncCounterVec(LoanCheckoutsTotal, map[string]string{"result": "success"})
	IncCounterVec(LoanCheckoutsTotal, map[string]string{"result": "rejected"})

	assert.Equal(t, before+2, testutil.ToFloat64(LoanCheckoutsTotal.WithLabelValues("success")), "success计数错误")
	assert.GreaterOrEqual(t, testutil.ToFloat64(LoanCheckoutsTotal.WithLabelValues("rejected")), 1.0, "rejected计数错误")
}

// TestGauge 测试Gauge增减
func TestGauge(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(HTTPRequestsInProgress)

	IncGauge(HTTPRequestsInProgress)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsInProgress))

	DecGauge(HTTPRequestsInProgress)
	assert.Equal(t, before, testutil.ToFloat64(HTTPRequestsInProgress))
}
