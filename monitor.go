package probability

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics 性能指标收集器
type Metrics struct {
	// 计算操作统计
	TotalEvaluations      int64 `json:"total_evaluations"`      // 总计算次数
	SuccessfulEvaluations int64 `json:"successful_evaluations"` // 成功计算次数
	FailedEvaluations     int64 `json:"failed_evaluations"`     // 失败计算次数

	// 枚举统计
	Enumerations       int64 `json:"enumerations"`        // 样本空间构建次数
	OutcomesEnumerated int64 `json:"outcomes_enumerated"` // 枚举的结果总数

	// 模拟统计
	Simulations     int64 `json:"simulations"`      // 模拟次数
	SimulatedTrials int64 `json:"simulated_trials"` // 模拟抽样总数

	// 性能统计
	AverageEvalTime int64 `json:"average_eval_time"` // 平均计算时间(纳秒)
	TotalEvalTime   int64 `json:"total_eval_time"`   // 总计算时间(纳秒)

	// 时间戳
	StartTime      int64 `json:"start_time"`       // 开始时间
	LastUpdateTime int64 `json:"last_update_time"` // 最后更新时间
}

// GetSuccessRate 获取成功率
func (m *Metrics) GetSuccessRate() float64 {
	total := atomic.LoadInt64(&m.TotalEvaluations)
	if total == 0 {
		return 0.0
	}
	successful := atomic.LoadInt64(&m.SuccessfulEvaluations)
	return float64(successful) / float64(total) * 100.0
}

// GetThroughput 获取吞吐量(每秒计算次数)
func (m *Metrics) GetThroughput() float64 {
	startTime := atomic.LoadInt64(&m.StartTime)
	lastUpdate := atomic.LoadInt64(&m.LastUpdateTime)
	if startTime == 0 || lastUpdate <= startTime {
		return 0.0
	}

	duration := time.Duration(lastUpdate - startTime)
	total := atomic.LoadInt64(&m.TotalEvaluations)

	return float64(total) / duration.Seconds()
}

// Reset 重置性能指标
func (m *Metrics) Reset() {
	atomic.StoreInt64(&m.TotalEvaluations, 0)
	atomic.StoreInt64(&m.SuccessfulEvaluations, 0)
	atomic.StoreInt64(&m.FailedEvaluations, 0)
	atomic.StoreInt64(&m.Enumerations, 0)
	atomic.StoreInt64(&m.OutcomesEnumerated, 0)
	atomic.StoreInt64(&m.Simulations, 0)
	atomic.StoreInt64(&m.SimulatedTrials, 0)
	atomic.StoreInt64(&m.AverageEvalTime, 0)
	atomic.StoreInt64(&m.TotalEvalTime, 0)
	atomic.StoreInt64(&m.StartTime, time.Now().UnixNano())
	atomic.StoreInt64(&m.LastUpdateTime, time.Now().UnixNano())
}

// ================================================================================

// Monitor 性能监控器
type Monitor struct {
	metrics *Metrics
	mu      sync.RWMutex
	enabled bool
}

// NewMonitor 创建新的性能监控器
func NewMonitor() *Monitor {
	m := &Monitor{
		metrics: &Metrics{},
		enabled: true,
	}
	m.metrics.Reset()
	return m
}

// Enable 启用性能监控
func (m *Monitor) Enable() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = true
}

// Disable 禁用性能监控
func (m *Monitor) Disable() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = false
}

// IsEnabled 检查是否启用了性能监控
func (m *Monitor) IsEnabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.enabled
}

// RecordEvaluation 记录一次计算
func (m *Monitor) RecordEvaluation(success bool, duration time.Duration) {
	if !m.IsEnabled() {
		return
	}

	atomic.AddInt64(&m.metrics.TotalEvaluations, 1)
	atomic.AddInt64(&m.metrics.TotalEvalTime, int64(duration))

	if success {
		atomic.AddInt64(&m.metrics.SuccessfulEvaluations, 1)
	} else {
		atomic.AddInt64(&m.metrics.FailedEvaluations, 1)
	}

	// 更新平均计算时间
	total := atomic.LoadInt64(&m.metrics.TotalEvaluations)
	totalTime := atomic.LoadInt64(&m.metrics.TotalEvalTime)
	atomic.StoreInt64(&m.metrics.AverageEvalTime, totalTime/total)

	atomic.StoreInt64(&m.metrics.LastUpdateTime, time.Now().UnixNano())
}

// RecordEnumeration 记录一次样本空间构建
func (m *Monitor) RecordEnumeration(outcomes int) {
	if !m.IsEnabled() {
		return
	}

	atomic.AddInt64(&m.metrics.Enumerations, 1)
	atomic.AddInt64(&m.metrics.OutcomesEnumerated, int64(outcomes))
	atomic.StoreInt64(&m.metrics.LastUpdateTime, time.Now().UnixNano())
}

// RecordSimulation 记录一次蒙特卡洛模拟
func (m *Monitor) RecordSimulation(trials int) {
	if !m.IsEnabled() {
		return
	}

	atomic.AddInt64(&m.metrics.Simulations, 1)
	atomic.AddInt64(&m.metrics.SimulatedTrials, int64(trials))
	atomic.StoreInt64(&m.metrics.LastUpdateTime, time.Now().UnixNano())
}

// GetMetrics 获取性能指标的副本
func (m *Monitor) GetMetrics() Metrics {
	return Metrics{
		TotalEvaluations:      atomic.LoadInt64(&m.metrics.TotalEvaluations),
		SuccessfulEvaluations: atomic.LoadInt64(&m.metrics.SuccessfulEvaluations),
		FailedEvaluations:     atomic.LoadInt64(&m.metrics.FailedEvaluations),
		Enumerations:          atomic.LoadInt64(&m.metrics.Enumerations),
		OutcomesEnumerated:    atomic.LoadInt64(&m.metrics.OutcomesEnumerated),
		Simulations:           atomic.LoadInt64(&m.metrics.Simulations),
		SimulatedTrials:       atomic.LoadInt64(&m.metrics.SimulatedTrials),
		AverageEvalTime:       atomic.LoadInt64(&m.metrics.AverageEvalTime),
		TotalEvalTime:         atomic.LoadInt64(&m.metrics.TotalEvalTime),
		StartTime:             atomic.LoadInt64(&m.metrics.StartTime),
		LastUpdateTime:        atomic.LoadInt64(&m.metrics.LastUpdateTime),
	}
}

// ResetMetrics 重置性能指标
func (m *Monitor) ResetMetrics() { m.metrics.Reset() }
