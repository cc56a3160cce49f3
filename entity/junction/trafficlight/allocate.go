package trafficlight

import (
	"math"

	"github.com/samber/lo"
)

// AllocateGreen 按流量密度分配两方向的绿灯时长
// 功能：把[minGreen, maxGreen]之外的额外绿灯预算按流量比例分给两个方向
// 参数：nsDensity/ewDensity-两方向的非负流量密度，minGreen/maxGreen-绿灯时长边界
// 返回：两方向的绿灯时长（秒）
// 算法说明：
// 1. 两方向流量之和为0时，双方都取minGreen（避免除零，无数据按最小公平处理）
// 2. 否则 green = minGreen + round(share * (maxGreen - minGreen))，
//    share为该方向流量占总流量的比例，round为四舍五入（0.5远离零取整）
// 3. 各自独立clamp到[minGreen, maxGreen]，防止取整越界
// 说明：纯函数，无副作用；流量非负由调用方保证
func AllocateGreen(nsDensity, ewDensity, minGreen, maxGreen int) (nsGreen, ewGreen int) {
	total := float64(nsDensity) + float64(ewDensity)
	if total <= 0 {
		return minGreen, minGreen
	}
	extraBudget := float64(maxGreen - minGreen)
	nsGreen = minGreen + int(math.Round(float64(nsDensity)/total*extraBudget))
	ewGreen = minGreen + int(math.Round(float64(ewDensity)/total*extraBudget))
	nsGreen = lo.Clamp(nsGreen, minGreen, maxGreen)
	ewGreen = lo.Clamp(ewGreen, minGreen, maxGreen)
	return
}
