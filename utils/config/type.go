package config

// Signal 信号灯时长配置项
// 功能：定义信号灯各相位的时长边界和固定时长（单位：秒）
// 说明：整个运行期内不变，绿灯时长在[MinGreen, MaxGreen]内按流量分配
type Signal struct {
	MinGreen   int `yaml:"min_green"`    // 绿灯最短时长
	MaxGreen   int `yaml:"max_green"`    // 绿灯最长时长
	YellowTime int `yaml:"yellow_time"`  // 黄灯固定时长
	AllRedTime int `yaml:"all_red_time"` // 全红安全间隔时长
}

// Random 随机流量配置项
// 功能：定义随机流量模式下每周期流量密度的取值范围
type Random struct {
	Max int `yaml:"max"` // 每方向流量密度上限，取值范围[0, Max]
}

// Config YAML配置文件的根结构
// 说明：只覆盖信号灯常量与随机范围；周期数、输入模式与时序模式
// 由交互式输入决定
type Config struct {
	Signal Signal `yaml:"signal"` // 信号灯时长
	Random Random `yaml:"random"` // 随机流量范围
}
