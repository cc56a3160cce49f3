package input

import (
	"bufio"
	"strconv"
)

// nextInt 读取下一个空白分隔的词并解析为整数
// 返回：解析值与是否成功；读不到输入（EOF）或词无法解析为整数时
// 返回(0, false)
func nextInt(scanner *bufio.Scanner) (int, bool) {
	if !scanner.Scan() {
		return 0, false
	}
	v, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return 0, false
	}
	return v, true
}
