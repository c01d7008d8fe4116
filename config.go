package probability

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config 引擎配置结构
type Config struct {
	// Engine config
	Engine *EngineConfig `mapstructure:"engine"`

	// 蒙特卡洛模拟配置
	Simulation *SimulationConfig `mapstructure:"simulation"`
}

// EngineConfig controls the instrumented Engine
type EngineConfig struct {
	MaxOutcomes    int    `mapstructure:"max_outcomes"`
	LogLevel       string `mapstructure:"log_level"`
	MonitorEnabled bool   `mapstructure:"monitor_enabled"`
}

// SimulationConfig controls Monte Carlo cross-checks
type SimulationConfig struct {
	Trials    int   `mapstructure:"trials"`
	Seed      int64 `mapstructure:"seed"`
	CacheSize int   `mapstructure:"cache_size"`
}

// Validate checks every section of the configuration
func (c *Config) Validate() error {
	if c.Engine == nil || c.Simulation == nil {
		return ErrConfigInvalid.WithDetails("missing engine or simulation section")
	}

	// 验证引擎配置
	if c.Engine.MaxOutcomes < MinMaxOutcomes || c.Engine.MaxOutcomes > MaxOutcomes {
		return ErrConfigInvalid.WithDetails("max_outcomes must be between %d and %d, got %d",
			MinMaxOutcomes, MaxOutcomes, c.Engine.MaxOutcomes)
	}
	if _, err := logrus.ParseLevel(c.Engine.LogLevel); err != nil {
		return ErrConfigInvalid.WithDetails("log_level %q", c.Engine.LogLevel).WithCause(err)
	}

	// 验证模拟配置
	if err := ValidateTrials(c.Simulation.Trials); err != nil {
		return ErrConfigInvalid.WithDetails("simulation trials %d", c.Simulation.Trials).WithCause(err)
	}
	if c.Simulation.CacheSize < 0 {
		return ErrConfigInvalid.WithDetails("cache_size cannot be negative, got %d", c.Simulation.CacheSize)
	}

	return nil
}

// DefaultEngineConfig returns the default engine configuration
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		MaxOutcomes:    MaxOutcomes,
		LogLevel:       DefaultLogLevel,
		MonitorEnabled: DefaultMonitorEnabled,
	}
}

// DefaultSimulationConfig returns the default simulation configuration
func DefaultSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		Trials:    DefaultSimulationTrials,
		Seed:      DefaultSimulationSeed,
		CacheSize: DefaultRandomSourceCacheSize,
	}
}

// DefaultConfig returns a configuration made of default sections
func DefaultConfig() *Config {
	return &Config{
		Engine:     DefaultEngineConfig(),
		Simulation: DefaultSimulationConfig(),
	}
}

// ConfigManager 配置管理器
type ConfigManager struct {
	viper  *viper.Viper
	config *Config
}

// NewConfigManager 创建配置管理器
func NewConfigManager() *ConfigManager {
	v := viper.New()

	// 设置配置文件名和路径
	v.SetConfigName("probability")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.probability")

	// 设置环境变量前缀
	v.SetEnvPrefix("PROBABILITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &ConfigManager{
		viper: v,
	}
}

// SetConfigFile makes the manager read path instead of searching the config paths.
// A missing file is then an error.
func (cm *ConfigManager) SetConfigFile(path string) {
	cm.viper.SetConfigFile(path)
}

// LoadConfig 加载配置
func (cm *ConfigManager) LoadConfig() (*Config, error) {
	// 设置默认值
	cm.setDefaults()

	// 读取配置文件
	if err := cm.viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// 配置文件不存在时使用默认配置
	}

	config, err := cm.decode()
	if err != nil {
		return nil, err
	}

	cm.config = config
	return config, nil
}

// decode unmarshals and validates the current viper state
func (cm *ConfigManager) decode() (*Config, error) {
	config := &Config{}
	if err := cm.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

// setDefaults 设置默认配置值
func (cm *ConfigManager) setDefaults() {
	// 引擎默认配置
	cm.viper.SetDefault("engine.max_outcomes", MaxOutcomes)
	cm.viper.SetDefault("engine.log_level", DefaultLogLevel)
	cm.viper.SetDefault("engine.monitor_enabled", DefaultMonitorEnabled)

	// 模拟默认配置
	cm.viper.SetDefault("simulation.trials", DefaultSimulationTrials)
	cm.viper.SetDefault("simulation.seed", DefaultSimulationSeed)
	cm.viper.SetDefault("simulation.cache_size", DefaultRandomSourceCacheSize)
}

// WatchConfig 监听配置变化
//
// Invalid updates are ignored and the previous configuration stays in effect.
func (cm *ConfigManager) WatchConfig(callback func(*Config)) {
	cm.viper.OnConfigChange(func(e fsnotify.Event) {
		config, err := cm.decode()
		if err != nil {
			return
		}

		cm.config = config
		if callback != nil {
			callback(config)
		}
	})
	cm.viper.WatchConfig()
}

// GetConfig 获取当前配置
func (cm *ConfigManager) GetConfig() *Config { return cm.config }

// ReloadConfig 重新加载配置
func (cm *ConfigManager) ReloadConfig() (*Config, error) { return cm.LoadConfig() }

// NewDefaultConfigManager 创建默认配置管理器
func NewDefaultConfigManager() *ConfigManager {
	cm := NewConfigManager()
	cm.setDefaults()
	cm.config = DefaultConfig()
	return cm
}

// NewConfigManagerFromConfig 从已有配置创建配置管理器
func NewConfigManagerFromConfig(config *Config) (*ConfigManager, error) {
	if config == nil {
		return nil, ErrConfigInvalid.WithDetails("config cannot be nil")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cm := NewConfigManager()
	cm.setDefaults()
	cm.config = config
	return cm, nil
}
