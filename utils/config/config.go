package config

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "config")

// Default 默认配置
// 说明：min_green=5，max_green=40，yellow=3，all_red=1，随机流量范围[0, 100]
func Default() Config {
	return Config{
		Signal: Signal{
			MinGreen:   5,
			MaxGreen:   40,
			YellowTime: 3,
			AllRedTime: 1,
		},
		Random: Random{Max: 100},
	}
}

// RuntimeConfig 运行时配置
// 功能：合并文件配置与交互式输入，作为一次运行的不可变配置视图
type RuntimeConfig struct {
	All Config // 全部配置

	Signal   Signal // 信号灯时长
	Cycles   int    // 仿真周期数
	Realtime bool   // 是否实时模式
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 参数：c-文件配置，cycles-仿真周期数，realtime-是否实时模式
// 返回：初始化的运行时配置指针
// 说明：配置不变量（max_green >= min_green >= 0等）是前置条件，
// 违反时在此处panic而不是在控制器内部做运行时检查
func NewRuntimeConfig(c Config, cycles int, realtime bool) *RuntimeConfig {
	if c.Signal.MinGreen < 0 || c.Signal.MaxGreen < c.Signal.MinGreen {
		log.Panicf("bad green bounds: min_green=%d max_green=%d", c.Signal.MinGreen, c.Signal.MaxGreen)
	}
	if c.Signal.YellowTime < 0 {
		log.Panicf("bad yellow_time: %d", c.Signal.YellowTime)
	}
	if c.Signal.AllRedTime < 0 {
		log.Panicf("bad all_red_time: %d", c.Signal.AllRedTime)
	}
	if c.Random.Max < 0 {
		log.Panicf("bad random.max: %d", c.Random.Max)
	}
	if cycles < 0 {
		log.Panicf("bad cycle count: %d", cycles)
	}
	return &RuntimeConfig{
		All:      c,
		Signal:   c.Signal,
		Cycles:   cycles,
		Realtime: realtime,
	}
}
