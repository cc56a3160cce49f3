// 交互式输入收集，向用户依次询问仿真参数
package input

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "input")

// 输入模式
const (
	ModeManual = 1 // 手动输入流量密度，整个运行期内复用同一对
	ModeRandom = 2 // 每周期独立生成随机流量密度
)

// Session 一次交互式输入的收集结果
// 功能：存储用户在提示序列中给出的全部仿真参数
type Session struct {
	Cycles    int  // 仿真周期数
	Mode      int  // 输入模式（ModeManual/ModeRandom）
	Realtime  bool // 是否实时模式
	NSDensity int  // 南北向流量密度（仅手动模式）
	EWDensity int  // 东西向流量密度（仅手动模式）
}

// Collect 依次收集仿真参数
// 参数：r-输入流，w-提示输出流
// 返回：收集结果；第一个提示（周期数）读取失败或无法解析时返回(nil, false)，
// 调用方应以成功状态正常退出
// 说明：后续提示的读取失败或无法解析按0处理（输入收集的宽松契约），
// 模式取非1值时走随机分支
func Collect(r io.Reader, w io.Writer) (*Session, bool) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	fmt.Fprint(w, "Enter number of cycles to simulate (e.g., 3): ")
	cycles, ok := nextInt(scanner)
	if !ok {
		return nil, false
	}

	s := &Session{Cycles: cycles}

	fmt.Fprint(w, "Choose input mode: 1) Manual densities  2) Random densities\nEnter 1 or 2: ")
	s.Mode, _ = nextInt(scanner)

	fmt.Fprint(w, "Run in real-time (sleep between phases)? 1=Yes 0=No (choose 0 for fast output): ")
	realtime, _ := nextInt(scanner)
	s.Realtime = realtime != 0

	if s.Mode == ModeManual {
		fmt.Fprint(w, "Enter NS (North-South) traffic density (non-negative integer): ")
		s.NSDensity, _ = nextInt(scanner)
		fmt.Fprint(w, "Enter EW (East-West) traffic density (non-negative integer): ")
		s.EWDensity, _ = nextInt(scanner)
		// 控制器要求流量密度非负，负值按0处理
		s.NSDensity = max(s.NSDensity, 0)
		s.EWDensity = max(s.EWDensity, 0)
	}

	log.Debugf("collected session: %+v", s)
	return s, true
}
