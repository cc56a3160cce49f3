package clock

import (
	"time"
)

// Waiter 相位等待能力
// 功能：信号灯控制器每完成一次相位切换后，调用Wait度过该相位的时长
// 说明：实现决定是真实阻塞还是只推进仿真时钟
type Waiter interface {
	Wait(seconds int) // 度过指定秒数，非正值不产生效果
}

// sleepWaiter 实时等待器
// 功能：阻塞调用方指定秒数，同时推进仿真时钟
type sleepWaiter struct {
	clock *Clock
}

// NewSleepWaiter 创建实时等待器
func NewSleepWaiter(c *Clock) Waiter {
	return &sleepWaiter{clock: c}
}

func (w *sleepWaiter) Wait(seconds int) {
	if seconds <= 0 {
		return
	}
	time.Sleep(time.Duration(seconds) * time.Second)
	w.clock.Advance(seconds)
}

// instantWaiter 快速等待器
// 功能：不阻塞，只推进仿真时钟并通知观察回调
type instantWaiter struct {
	clock  *Clock
	onWait func(seconds int) // 每次等待的通知回调(optional)
}

// NewInstantWaiter 创建快速等待器
// 参数：c-仿真时钟，onWait-每次等待的通知回调，可为nil
func NewInstantWaiter(c *Clock, onWait func(seconds int)) Waiter {
	return &instantWaiter{clock: c, onWait: onWait}
}

func (w *instantWaiter) Wait(seconds int) {
	if seconds <= 0 {
		return
	}
	w.clock.Advance(seconds)
	if w.onWait != nil {
		w.onWait(seconds)
	}
}

// NewWaiter 根据时序模式创建等待器
// 参数：c-仿真时钟，onWait-快速模式下每次等待的通知回调
func NewWaiter(c *Clock, onWait func(seconds int)) Waiter {
	if c.Realtime {
		return NewSleepWaiter(c)
	}
	return NewInstantWaiter(c, onWait)
}
