package task

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/utils/input"
)

// prepare 准备阶段，每周期执行一次
// 功能：取出本周期的流量密度对并完成绿灯时长分配
// 说明：随机模式下先输出本周期的随机流量横幅
func (ctx *Context) prepare(cycle int) {
	if ctx.session.Mode != input.ModeManual {
		fmt.Fprintf(ctx.out, "--- Random densities for cycle %d ---\n", cycle)
	}
	nsDensity, ewDensity := ctx.source.Next()
	log.Infof("cycle %d densities: NS=%d EW=%d", cycle, nsDensity, ewDensity)
	fmt.Fprintf(ctx.out, "=== Cycle %d ===\n", cycle)
	ctx.junction.Prepare(nsDensity, ewDensity)
}

// update 更新阶段，每周期执行一次
// 功能：推进一个完整周期的相位切换
func (ctx *Context) update() {
	ctx.junction.Update()
	ctx.cyclesDone++
}

// Run 运行
// 功能：按配置的周期数逐周期执行 prepare/update，周期之间严格串行
// 说明：周期数为0时不产生任何相位事件，直接正常结束
func (ctx *Context) Run() {
	if ctx.session.Mode == input.ModeManual {
		fmt.Fprintf(ctx.out, "\nSimulating %d cycles with densities: NS=%d  EW=%d\n\n",
			ctx.runtimeConfig.Cycles, ctx.session.NSDensity, ctx.session.EWDensity)
	} else {
		fmt.Fprintf(ctx.out, "\nSimulating %d cycles with random densities in [0, %d]\n\n",
			ctx.runtimeConfig.Cycles, ctx.runtimeConfig.All.Random.Max)
	}
	for cycle := 1; cycle <= ctx.runtimeConfig.Cycles; cycle++ {
		ctx.prepare(cycle)
		ctx.update()
		fmt.Fprintln(ctx.out)
	}
	log.Infof("run %s complete: %d cycles, %d phase events, %d simulated seconds",
		ctx.runID, ctx.cyclesDone, len(ctx.events),
		lo.SumBy(ctx.events, func(ev trafficlight.Event) int { return ev.Duration }))
}
