package task

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/clock"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/entity"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/entity/junction"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/utils/config"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/utils/input"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/utils/randengine"
)

var log = logrus.WithField("module", "task")

// Context 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态，替代全局变量
// 说明：独占持有时钟、等待器、路口与配置；相位切换事件经由
// 本上下文渲染为人类可读的输出行
type Context struct {
	// 任务名
	job string
	// 运行标识
	runID string

	// 时钟
	clock *clock.Clock
	// 相位等待器
	waiter clock.Waiter

	// 路口
	junction *junction.Junction
	// 流量密度来源
	source entity.IDensitySource

	// 运行时配置
	runtimeConfig *config.RuntimeConfig
	// 交互式输入结果
	session *input.Session

	// 输出流
	out io.Writer
	// 本次运行的全部相位切换事件
	events []trafficlight.Event
	// 已完成的周期数
	cyclesDone int
}

// NewContext 创建新的仿真任务上下文
// 参数：
//   - job: 任务名称
//   - c: 文件配置（含信号灯时长与随机流量范围）
//   - session: 交互式输入结果
//   - seed: 随机流量模式的随机数种子
//   - out: 相位切换输出流
//
// 返回：初始化完成的Context实例
// 说明：配置不变量在NewRuntimeConfig中前置校验，违反时panic
func NewContext(
	job string,
	c config.Config,
	session *input.Session,
	seed uint64,
	out io.Writer,
) *Context {
	ctx := &Context{
		job:           job,
		runID:         uuid.NewString(),
		runtimeConfig: config.NewRuntimeConfig(c, session.Cycles, session.Realtime),
		session:       session,
		out:           out,
	}
	ctx.clock = clock.New(ctx.runtimeConfig.Realtime)
	ctx.waiter = clock.NewWaiter(ctx.clock, func(seconds int) {
		fmt.Fprintf(ctx.out, "   (simulated %ds)\n", seconds)
	})

	if session.Mode == input.ModeManual {
		ctx.source = junction.NewFixedSource(session.NSDensity, session.EWDensity)
	} else {
		ctx.source = junction.NewRandomSource(randengine.New(seed), c.Random.Max)
	}
	ctx.junction = junction.New(ctx, ctx.onEvent)

	log.Infof("job %s run %s: %d cycles, realtime=%v", ctx.job, ctx.runID,
		ctx.runtimeConfig.Cycles, ctx.runtimeConfig.Realtime)
	return ctx
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) Waiter() clock.Waiter {
	return ctx.waiter
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

func (ctx *Context) Junction() *junction.Junction {
	return ctx.junction
}

func (ctx *Context) RunID() string {
	return ctx.runID
}

// Events 获取本次运行已产生的全部相位切换事件
func (ctx *Context) Events() []trafficlight.Event {
	return ctx.events
}

// CyclesDone 获取已完成的周期数
func (ctx *Context) CyclesDone() int {
	return ctx.cyclesDone
}

// onEvent 相位切换事件回调
// 功能：记录事件并渲染为一行输出
// 说明：交还通行权的红灯不展示数字时长（红灯持续到另一方向拿到绿灯）
func (ctx *Context) onEvent(ev trafficlight.Event) {
	ctx.events = append(ctx.events, ev)
	if ev.HandOff {
		fmt.Fprintf(ctx.out, "[%s] %s -> %s (will last until other gets greens)\n",
			ctx.clock.Stamp(), ev.Direction, ev.State)
	} else {
		fmt.Fprintf(ctx.out, "[%s] %s -> %s (will last %ds)\n",
			ctx.clock.Stamp(), ev.Direction, ev.State, ev.Duration)
	}
}
