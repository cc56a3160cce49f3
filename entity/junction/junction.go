package junction

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/entity"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/entity/junction/trafficlight"
)

// 两个通行方向的标签
const (
	DirectionNS = "North-South"
	DirectionEW = "East-West"
)

// Junction 单个四向路口
// 功能：独占持有两盏信号灯与相位推进器，逐周期完成
// 绿灯时长分配与相位推进
// 说明：南北向固定先行，整个运行期内不交换角色
type Junction struct {
	ctx entity.ITaskContext

	ns        *trafficlight.Light    // 南北向信号灯，先行
	ew        *trafficlight.Light    // 东西向信号灯，后行
	sequencer *trafficlight.Sequencer
}

// New 创建并初始化路口
// 参数：ctx-任务上下文，sink-相位切换事件的接收回调（可为nil）
// 返回：初始化完成的Junction实例
func New(ctx entity.ITaskContext, sink trafficlight.EventSink) *Junction {
	cfg := ctx.RuntimeConfig().Signal
	j := &Junction{
		ctx: ctx,
		ns:  trafficlight.NewLight(DirectionNS, cfg.YellowTime),
		ew:  trafficlight.NewLight(DirectionEW, cfg.YellowTime),
	}
	j.sequencer = trafficlight.NewSequencer(cfg.AllRedTime, ctx.Waiter(), sink)
	log.Debugf("junction lights: %v", lo.Map(j.Lights(), func(l *trafficlight.Light, _ int) string {
		return l.Name
	}))
	return j
}

// Prepare 准备阶段，写入本周期的绿灯时长
// 功能：用本周期的流量密度对运行分配算法，结果写入两盏信号灯
// 参数：nsDensity/ewDensity-本周期的非负流量密度
func (j *Junction) Prepare(nsDensity, ewDensity int) {
	cfg := j.ctx.RuntimeConfig().Signal
	j.ns.GreenDuration, j.ew.GreenDuration = trafficlight.AllocateGreen(
		nsDensity, ewDensity, cfg.MinGreen, cfg.MaxGreen,
	)
	log.Debugf("allocated green: %s=%ds %s=%ds",
		j.ns.Name, j.ns.GreenDuration, j.ew.Name, j.ew.GreenDuration)
}

// Update 更新阶段，推进一个完整周期的相位切换
func (j *Junction) Update() {
	j.sequencer.RunCycle(j.ns, j.ew)
}

// Lights 获取路口的两盏信号灯（先行方向在前）
func (j *Junction) Lights() []*trafficlight.Light {
	return []*trafficlight.Light{j.ns, j.ew}
}
