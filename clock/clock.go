package clock

import (
	"fmt"
	"time"
)

// Clock 仿真时钟
// 功能：管理仿真系统的时间推进，统计已经度过的仿真秒数
// 说明：实时模式下时间戳取自墙上时钟；快速模式下时间戳由起始墙上时间
// 加上累计仿真秒数推算，保证输出时间戳随相位推进而前进
type Clock struct {
	Realtime bool // 是否实时模式

	T    float64   // 累计仿真时间（秒）
	base time.Time // 起始墙上时间，快速模式下时间戳的锚点
}

// New 创建新的时钟实例
// 参数：realtime-是否实时模式
// 返回：初始化完成的时钟实例
func New(realtime bool) *Clock {
	c := &Clock{Realtime: realtime}
	c.Init()
	return c
}

// Init 初始化时钟状态
// 说明：重置累计仿真时间，重新锚定起始墙上时间
func (c *Clock) Init() {
	c.T = 0
	c.base = time.Now()
}

// Advance 推进仿真时间
// 参数：seconds-推进的秒数，非正值不产生效果
func (c *Clock) Advance(seconds int) {
	if seconds <= 0 {
		return
	}
	c.T += float64(seconds)
}

// ElapsedSeconds 获取累计仿真秒数
func (c *Clock) ElapsedSeconds() int {
	return int(c.T)
}

// Stamp 获取当前时间戳（HH:MM:SS）
// 说明：实时模式直接取墙上时钟；快速模式取锚点时间加累计仿真时间
func (c *Clock) Stamp() string {
	if c.Realtime {
		return time.Now().Format("15:04:05")
	}
	return c.base.Add(time.Duration(c.T) * time.Second).Format("15:04:05")
}

// String 获取时钟的字符串表示
// 返回：累计仿真时间的HH:MM:SS表示
func (c *Clock) String() string {
	t := int(c.T)
	h := t / 3600
	m := t % 3600 / 60
	s := t % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
