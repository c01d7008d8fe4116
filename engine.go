package probability

import (
	"math/big"
	"strings"
	"sync"
	"time"
)

// Engine is an instrumented facade over the package functions for
// string-labelled sample spaces. It logs every operation, records metrics
// and applies the configured outcome cap. An Engine is safe for concurrent use.
type Engine struct {
	configManager *ConfigManager
	logger        Logger
	monitor       *Monitor
	mu            sync.RWMutex // 保护配置和logger的并发访问
}

// NewEngine creates a new engine with the default configuration
func NewEngine() *Engine {
	return NewEngineWithConfig(NewDefaultConfigManager())
}

// NewEngineWithConfig creates a new engine with custom configuration
func NewEngineWithConfig(cm *ConfigManager) *Engine {
	return NewEngineWithConfigAndLogger(cm, NewDefaultLogger(cm.config.Engine.LogLevel))
}

// NewEngineWithLogger creates a new engine with custom logger
func NewEngineWithLogger(logger Logger) *Engine {
	return NewEngineWithConfigAndLogger(NewDefaultConfigManager(), logger)
}

// NewEngineWithConfigAndLogger creates a new engine with custom configuration and logger
func NewEngineWithConfigAndLogger(cm *ConfigManager, logger Logger) *Engine {
	monitor := NewMonitor()
	if !cm.config.Engine.MonitorEnabled {
		monitor.Disable()
	}

	return &Engine{
		configManager: cm,
		logger:        logger,
		monitor:       monitor,
	}
}

// GetConfig returns the current engine configuration
func (e *Engine) GetConfig() *Config {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.configManager.config
}

// UpdateConfig updates the engine configuration at runtime. A logger that
// supports it (DefaultLogger does) switches to the new log level.
func (e *Engine) UpdateConfig(newConfig *Config) error {
	logger := e.GetLogger()
	logger.Debug("UpdateConfig called")

	if newConfig == nil {
		logger.Error("UpdateConfig failed: nil configuration")
		return ErrConfigInvalid.WithDetails("config cannot be nil")
	}

	if err := newConfig.Validate(); err != nil {
		logger.Error("UpdateConfig validation failed: %v", err)
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.configManager.config = newConfig
	if newConfig.Engine.MonitorEnabled {
		e.monitor.Enable()
	} else {
		e.monitor.Disable()
	}
	if l, ok := e.logger.(levelSetter); ok {
		l.SetLevel(newConfig.Engine.LogLevel)
	}

	e.logger.Info("Configuration updated successfully: MaxOutcomes=%d, LogLevel=%s, Trials=%d, Seed=%d",
		newConfig.Engine.MaxOutcomes, newConfig.Engine.LogLevel,
		newConfig.Simulation.Trials, newConfig.Simulation.Seed)
	return nil
}

// SetMaxOutcomes updates the outcome cap of Combinations at runtime
func (e *Engine) SetMaxOutcomes(limit int) error {
	logger := e.GetLogger()
	logger.Debug("SetMaxOutcomes called with limit=%d", limit)

	if limit < MinMaxOutcomes || limit > MaxOutcomes {
		logger.Error("SetMaxOutcomes failed: invalid limit %d (must be between %d and %d)", limit, MinMaxOutcomes, MaxOutcomes)
		return ErrConfigInvalid.WithDetails("max_outcomes must be between %d and %d, got %d", MinMaxOutcomes, MaxOutcomes, limit)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	engine := *e.configManager.config.Engine
	engine.MaxOutcomes = limit
	e.configManager.config = &Config{Engine: &engine, Simulation: e.configManager.config.Simulation}

	e.logger.Info("Max outcomes updated to %d", limit)
	return nil
}

// SetLogger updates the logger at runtime
func (e *Engine) SetLogger(logger Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if logger != nil && logger != e.logger {
		e.logger.Info("Logger updated")
		e.logger = logger
		e.logger.Info("New logger activated")
	}
}

// GetLogger returns the current logger
func (e *Engine) GetLogger() Logger {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.logger
}

// GetMetrics returns a snapshot of the engine metrics
func (e *Engine) GetMetrics() Metrics { return e.monitor.GetMetrics() }

// Monitor returns the engine's performance monitor
func (e *Engine) Monitor() *Monitor { return e.monitor }

// Probability evaluates P(event) over space
func (e *Engine) Probability(event Set[string], space Space[string]) (*big.Rat, error) {
	start := time.Now()
	e.GetLogger().Debug("Probability called with |event|=%d, |space|=%d", event.Len(), spaceLen(space))

	p, err := Probability(event, space)
	e.observe("Probability", start, err)
	if err != nil {
		return nil, err
	}

	e.GetLogger().Debug("Probability result: %s", p.RatString())
	return p, nil
}

// Conditional evaluates P(event | given) over space
func (e *Engine) Conditional(event, given Set[string], space Space[string]) (*big.Rat, error) {
	start := time.Now()
	e.GetLogger().Debug("Conditional called with |event|=%d, |given|=%d, |space|=%d",
		event.Len(), given.Len(), spaceLen(space))

	p, err := Conditional(event, given, space)
	e.observe("Conditional", start, err)
	if err != nil {
		return nil, err
	}

	e.GetLogger().Debug("Conditional result: %s", p.RatString())
	return p, nil
}

// Combinations builds the space of all k-item combinations of items,
// capped by the configured MaxOutcomes
func (e *Engine) Combinations(items []string, k int) (Set[string], error) {
	start := time.Now()
	limit := e.GetConfig().Engine.MaxOutcomes
	e.GetLogger().Debug("Combinations called with n=%d, k=%d, limit=%d", len(items), k, limit)

	space, err := combinations(items, k, limit)
	e.observe("Combinations", start, err)
	if err != nil {
		return nil, err
	}

	e.monitor.RecordEnumeration(space.Len())
	e.GetLogger().Info("Built %d combinations of %d items in %v", space.Len(), len(items), time.Since(start))
	return space, nil
}

// Select returns the outcomes of space satisfying pred
func (e *Engine) Select(space Space[string], pred Predicate[string]) Set[string] {
	start := time.Now()

	event := Select(space, pred)
	e.observe("Select", start, nil)

	e.GetLogger().Debug("Select kept %d of %d outcomes", event.Len(), spaceLen(space))
	return event
}

// Choose returns the binomial coefficient C(n, k)
func (e *Engine) Choose(n, k int64) (*big.Int, error) {
	start := time.Now()

	c, err := Choose(n, k)
	e.observe("Choose", start, err)
	return c, err
}

// Simulate estimates P(event) by sampling space. A non-positive trials count
// uses the configured default. A configured non-zero seed makes runs reproducible.
func (e *Engine) Simulate(event Set[string], space Space[string], trials int) (*Estimate, error) {
	start := time.Now()
	sim := e.GetConfig().Simulation
	if trials <= 0 {
		trials = sim.Trials
	}
	e.GetLogger().Debug("Simulate called with trials=%d, seed=%d", trials, sim.Seed)

	var src RandomSource
	if sim.Seed != DefaultSimulationSeed {
		src = NewSeededRandomSource(sim.Seed)
	} else {
		src = NewSecureRandomSource(sim.CacheSize)
	}

	est, err := SimulateOrdered(event, space, trials, src, strings.Compare)
	e.observe("Simulate", start, err)
	if err != nil {
		return nil, err
	}

	e.monitor.RecordSimulation(trials)
	e.GetLogger().Info("Simulated %d trials: p≈%.6f ± %.6f", est.Trials, est.Probability, est.StdErr)
	return est, nil
}

// observe records the outcome of one operation
func (e *Engine) observe(op string, start time.Time, err error) {
	e.monitor.RecordEvaluation(err == nil, time.Since(start))
	if err != nil {
		e.GetLogger().Error("%s failed: %v", op, err)
	}
}

func spaceLen(space Space[string]) int {
	if space == nil {
		return 0
	}
	return space.Len()
}
