package trafficlight

// LightState 信号灯相位
type LightState int

const (
	LightStateRed    LightState = iota // 红灯
	LightStateGreen                    // 绿灯
	LightStateYellow                   // 黄灯
)

// String 获取相位的字符串表示
func (s LightState) String() string {
	switch s {
	case LightStateRed:
		return "RED"
	case LightStateGreen:
		return "GREEN"
	case LightStateYellow:
		return "YELLOW"
	}
	return "UNKNOWN"
}

// Light 一个通行方向的信号灯
// 功能：存储单方向信号灯的当前相位与各相位时长
// 说明：绿灯时长每周期由分配算法改写，黄灯时长构造后不变；
// 生命周期与控制器一致，由控制器独占持有
type Light struct {
	Name  string     // 方向标签
	State LightState // 当前相位

	GreenDuration  int // 绿灯时长（秒），每周期可变
	YellowDuration int // 黄灯时长（秒），构造后固定
}

// NewLight 创建信号灯
// 参数：name-方向标签，yellowTime-黄灯固定时长
// 返回：初始相位为红灯的信号灯实例
func NewLight(name string, yellowTime int) *Light {
	return &Light{
		Name:           name,
		State:          LightStateRed,
		YellowDuration: yellowTime,
	}
}
