package hist

import "math"

// Bin 残差分布的单个分箱
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// Residual 对残差序列做等宽分箱统计, 用于拟合质量诊断
func Residual(resid []float64, bins int) []Bin {
	if len(resid) == 0 || bins <= 0 {
		return nil
	}

	minV, maxV := resid[0], resid[0]
	for _, v := range resid {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	// 避免 max == min 导致除0
	if maxV == minV {
		maxV = minV + 1e-9
	}

	width := (maxV - minV) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{Lo: minV + float64(i)*width, Hi: minV + float64(i+1)*width}
	}

	for _, v := range resid {
		idx := int(math.Floor((v - minV) / width))
		if idx >= bins { // v == maxV 的边界
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}
