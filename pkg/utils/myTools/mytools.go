package myTools

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ArrMean 数组均值, 空数组返回NaN
func ArrMean(arr []float64) float64 {
	if len(arr) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range arr {
		sum += v
	}
	return sum / float64(len(arr))
}

// ArrMax 数组最大值, 空数组返回NaN
func ArrMax(arr []float64) float64 {
	if len(arr) == 0 {
		return math.NaN()
	}
	maxV := arr[0]
	for _, v := range arr[1:] {
		if v > maxV {
			maxV = v
		}
	}
	return maxV
}

// DotProduct 向量点积, 长度不匹配返回NaN
func DotProduct(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}
	return floats.Dot(a, b)
}

// MaskIsNaNBoth 同步剔除两个序列中任一侧为NaN的位置
func MaskIsNaNBoth(x, y []float64) ([]float64, []float64) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	maskX := make([]float64, 0, n)
	maskY := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		maskX = append(maskX, x[i])
		maskY = append(maskY, y[i])
	}
	return maskX, maskY
}
