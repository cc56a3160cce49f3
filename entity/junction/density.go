package junction

import (
	"github.com/tsinghua-fib-lab/intersection-sim-oss/entity"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/utils/randengine"
)

// fixedSource 固定流量来源
// 功能：每个周期复用同一对手动输入的流量密度
type fixedSource struct {
	ns, ew int
}

// NewFixedSource 创建固定流量来源
// 参数：nsDensity/ewDensity-复用的非负流量密度对
func NewFixedSource(nsDensity, ewDensity int) entity.IDensitySource {
	return &fixedSource{ns: nsDensity, ew: ewDensity}
}

func (s *fixedSource) Next() (int, int) {
	return s.ns, s.ew
}

// randomSource 随机流量来源
// 功能：每个周期每个方向独立在[0, max]内均匀生成流量密度
type randomSource struct {
	generator *randengine.Engine
	max       int
}

// NewRandomSource 创建随机流量来源
// 参数：generator-随机数引擎，max-流量密度上限（含）
func NewRandomSource(generator *randengine.Engine, max int) entity.IDensitySource {
	return &randomSource{generator: generator, max: max}
}

func (s *randomSource) Next() (int, int) {
	return s.generator.UniformInt(0, s.max), s.generator.UniformInt(0, s.max)
}
