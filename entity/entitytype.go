package entity

import (
	"github.com/tsinghua-fib-lab/intersection-sim-oss/clock"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/utils/config"
)

// 依赖倒置，表达实体对任务上下文与输入来源的接口需求

// ITaskContext 任务上下文接口
type ITaskContext interface {
	Clock() *clock.Clock                  // 仿真时钟
	Waiter() clock.Waiter                 // 相位等待器
	RuntimeConfig() *config.RuntimeConfig // 运行时配置
}

// IDensitySource 流量密度来源接口
// 说明：每个仿真周期消费一对非负流量密度（南北向、东西向）
type IDensitySource interface {
	Next() (nsDensity, ewDensity int) // 取出下一周期的流量密度对
}
