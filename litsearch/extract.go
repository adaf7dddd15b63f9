package litsearch

import (
	"regexp"
	"strconv"
	"strings"
)

const PROXIMITY_WORDS = 8 // "band gap" 与数值的最大词距

var (
	unitPattern = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(eV|electron\s*volts|ev|e\.v\.|e\.v)\b`)
	wordPattern = regexp.MustCompile(`\b\w+\b`)
)

// ExtractBandGap 在自由文本中寻找"band gap + 数值eV"的近邻组合, 返回首个匹配
// 纯启发式: 数值后接eV类单位, 且 band gap/bandgap/band-gap 出现在8词窗口内
// 误报/漏报属可接受行为, 仅作参考值
func ExtractBandGap(text string) (float64, bool) {
	for _, m := range unitPattern.FindAllStringSubmatchIndex(text, -1) {
		valStr := text[m[2]:m[3]]
		v, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue
		}

		// 数值前后各100字符的上下文
		lo := m[0] - 100
		if lo < 0 {
			lo = 0
		}
		hi := m[0] + 100
		if hi > len(text) {
			hi = len(text)
		}
		context := strings.ToLower(text[lo:hi])
		if !strings.Contains(context, "band gap") &&
			!strings.Contains(context, "bandgap") &&
			!strings.Contains(context, "band-gap") {
			continue
		}

		// 词距检查
		words := wordPattern.FindAllString(context, -1)
		valueIdx := -1
		for i, w := range words {
			if w == strings.ToLower(valStr) {
				valueIdx = i
				break
			}
		}
		if valueIdx == -1 {
			// 分词定位失败时退化为包含判断
			return v, true
		}
		for i, w := range words {
			if w == "band" || w == "gap" || w == "bandgap" {
				d := i - valueIdx
				if d < 0 {
					d = -d
				}
				if d <= PROXIMITY_WORDS {
					return v, true
				}
			}
		}
	}
	return 0, false
}
