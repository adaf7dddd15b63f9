package config

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"gopkg.in/yaml.v3"
)

type DetectorConfig struct {
	WindowSize int      `yaml:"windowsize"`
	MinY       *float64 `yaml:"miny"`
}

type SmoothConfig struct {
	Enable bool `yaml:"enable"`
	Window int  `yaml:"window"`
}

type LiteratureConfig struct {
	Rows        int     `yaml:"rows"`
	ToleranceEV float64 `yaml:"toleranceev"`
	TimeoutSec  int     `yaml:"timeoutsec"`
}

type Config struct {
	Detector   DetectorConfig   `yaml:"detector"`
	Smooth     SmoothConfig     `yaml:"smooth"`
	Literature LiteratureConfig `yaml:"literature"`
	LogPath    string           `yaml:"logpath"`
}

// 用 atomic.Value 存当前配置，支持热更新时无锁读取
var cfgValue atomic.Value // stores *Config

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	// 默认值与校验
	if c.Detector.WindowSize == 0 {
		c.Detector.WindowSize = 10
	}
	if c.Detector.WindowSize < 2 {
		return nil, fmt.Errorf("invalid windowsize: %d", c.Detector.WindowSize)
	}
	if c.Smooth.Enable && c.Smooth.Window < 2 {
		return nil, fmt.Errorf("invalid smooth window: %d", c.Smooth.Window)
	}
	if c.Literature.Rows <= 0 {
		c.Literature.Rows = 5
	}
	if c.Literature.ToleranceEV <= 0 {
		c.Literature.ToleranceEV = 0.1
	}
	if c.Literature.TimeoutSec <= 0 {
		c.Literature.TimeoutSec = 10
	}
	return &c, nil
}

func Init(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	cfgValue.Store(c)
	return nil
}

func current() *Config {
	cAny := cfgValue.Load()
	if cAny == nil {
		return nil
	}
	return cAny.(*Config)
}

// O(1) 读取: 未初始化时返回默认值
func GetWindowSize(def int) int {
	if c := current(); c != nil {
		return c.Detector.WindowSize
	}
	return def
}

func GetMinY() *float64 {
	if c := current(); c != nil {
		return c.Detector.MinY
	}
	return nil
}

func GetTolerance(def float64) float64 {
	if c := current(); c != nil {
		return c.Literature.ToleranceEV
	}
	return def
}

func GetLiteratureRows(def int) int {
	if c := current(); c != nil {
		return c.Literature.Rows
	}
	return def
}

func GetTimeout(def time.Duration) time.Duration {
	if c := current(); c != nil {
		return time.Duration(c.Literature.TimeoutSec) * time.Second
	}
	return def
}

func GetSmooth() (bool, int) {
	if c := current(); c != nil {
		return c.Smooth.Enable, c.Smooth.Window
	}
	return false, 0
}

func GetLogPath() string {
	if c := current(); c != nil {
		return c.LogPath
	}
	return ""
}
