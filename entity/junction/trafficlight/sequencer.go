package trafficlight

import (
	"github.com/tsinghua-fib-lab/intersection-sim-oss/clock"
)

// Event 一次相位切换事件
// 功能：向观察方描述某个方向切换到的新相位及其持续时长
type Event struct {
	Direction string     // 方向标签
	State     LightState // 新相位
	Duration  int        // 相位持续时长（秒）
	HandOff   bool       // 是否为交还通行权的红灯（时长为全红间隔，展示时不给出数字）
}

// EventSink 相位切换事件的接收回调
type EventSink func(Event)

// Sequencer 相位推进器
// 功能：驱动一个周期内两方向信号灯按固定六步顺序切换相位，
// 每次切换先通知事件接收方，再通过等待器度过该相位的时长
// 说明：先行方向固定在先（整个运行期内不交换角色），只有时长随周期变化
type Sequencer struct {
	allRedTime int          // 全红安全间隔时长
	waiter     clock.Waiter // 相位等待器
	sink       EventSink    // 事件接收回调(optional)
}

// NewSequencer 创建相位推进器
// 参数：allRedTime-全红间隔时长，waiter-相位等待器，sink-事件接收回调（可为nil）
func NewSequencer(allRedTime int, waiter clock.Waiter, sink EventSink) *Sequencer {
	return &Sequencer{
		allRedTime: allRedTime,
		waiter:     waiter,
		sink:       sink,
	}
}

// RunCycle 推进一个完整周期
// 功能：按 先行方向GREEN→YELLOW→RED(全红)、后行方向GREEN→YELLOW→RED(全红) 的
// 固定顺序完成六次相位切换
// 参数：first-先行方向信号灯，second-后行方向信号灯
// 说明：两盏灯的绿灯时长须已由分配算法写入；本函数不产生错误，
// 配置不变量由上游前置校验保证
func (s *Sequencer) RunCycle(first, second *Light) {
	s.runDirection(first)
	s.runDirection(second)
}

// runDirection 推进单方向的 GREEN→YELLOW→RED 三步
func (s *Sequencer) runDirection(l *Light) {
	s.transition(l, LightStateGreen, l.GreenDuration, false)
	s.transition(l, LightStateYellow, l.YellowDuration, false)
	// 红灯持续到另一方向拿到绿灯，对外只等待全红安全间隔
	s.transition(l, LightStateRed, s.allRedTime, true)
}

// transition 执行一次相位切换：改写相位、通知事件、度过时长
func (s *Sequencer) transition(l *Light, state LightState, duration int, handOff bool) {
	l.State = state
	log.Debugf("%s -> %s (%ds)", l.Name, state, duration)
	if s.sink != nil {
		s.sink(Event{
			Direction: l.Name,
			State:     state,
			Duration:  duration,
			HandOff:   handOff,
		})
	}
	s.waiter.Wait(duration)
}
