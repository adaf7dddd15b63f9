package spectrum

import "spectro/pkg/utils/myTools"

// NormalizePercent 透射率若以百分比给出(最大值>1), 整体除以100归一为小数
func NormalizePercent(signal []float64) []float64 {
	out := make([]float64, len(signal))
	if myTools.ArrMax(signal) > 1 {
		for i, v := range signal {
			out[i] = v / 100
		}
		return out
	}
	copy(out, signal)
	return out
}

// MovingAverage 滑动平均平滑; window<=1 时原样返回拷贝
func MovingAverage(signal []float64, window int) []float64 {
	n := len(signal)
	out := make([]float64, n)
	if window <= 1 || n == 0 {
		copy(out, signal)
		return out
	}
	if window > n {
		window = n
	}
	half := window / 2
	for i := range signal {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + (window - half)
		if hi > n {
			hi = n
		}
		sum := 0.0
		for j := lo; j < hi; j++ {
			sum += signal[j]
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}
