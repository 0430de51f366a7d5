package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultRedisAddr       = "localhost:6379"
	defaultLogLevel        = "info"
	defaultTableExpiration = 120
)

// Config 配置
type Config struct {
	Redis RedisConfig `yaml:"redis"`
	Log   LogConfig   `yaml:"log"`
	Table TableConfig `yaml:"table"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LogConfig 日志配置
type LogConfig struct {
	Dir   string `yaml:"dir"`   // 为空时使用 ~/.fight-the-landlord
	Level string `yaml:"level"` // debug, info, warn, error
}

// TableConfig 牌桌配置
type TableConfig struct {
	Expiration int    `yaml:"expiration"` // 牌桌快照过期时间（分钟）
	Seed       uint64 `yaml:"seed"`       // 非零时用固定种子洗牌，便于复现
}

// ExpirationDuration 返回牌桌快照过期时长
func (c *TableConfig) ExpirationDuration() time.Duration {
	return time.Duration(c.Expiration) * time.Minute
}

// Load 加载配置文件，环境变量优先于文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = defaultRedisAddr
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if cfg.Table.Expiration <= 0 {
		cfg.Table.Expiration = defaultTableExpiration
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TABLE_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Table.Seed = seed
		}
	}
}
