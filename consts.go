package probability

const (
	// Separator joins the items of one combination into a single outcome label
	Separator = " "

	// MaxOutcomes is the largest sample space the combination generator will build
	MaxOutcomes = 1 << 26

	// MinMaxOutcomes is the smallest outcome cap an Engine may be configured with
	MinMaxOutcomes = 1

	// DefaultLogLevel is the default log level for the engine logger
	DefaultLogLevel = "info"

	// DefaultMonitorEnabled is the default switch for engine metrics
	DefaultMonitorEnabled = true
)

const (
	// DefaultSimulationTrials is the default number of Monte Carlo trials
	DefaultSimulationTrials = 100_000

	// MaxSimulationTrials is the maximum number of Monte Carlo trials allowed
	MaxSimulationTrials = 100_000_000

	// DefaultSimulationSeed of 0 selects the secure random source
	DefaultSimulationSeed = 0

	// DefaultRandomSourceCacheSize is the default cache size of SecureRandomSource
	DefaultRandomSourceCacheSize = 1024

	// MinSimulationBatches is the minimum number of batches an estimate is split into
	MinSimulationBatches = 2
)
