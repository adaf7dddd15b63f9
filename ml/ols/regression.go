package ols

import (
	"math"

	"spectro/pkg/utils/myTools"
)

// 定义线性回归模型的参数
type LinearRegressionModel struct {
	Slope     float64
	Intercept float64
}

// Regression 闭式正规方程返回ols斜率项和截距项, NaN位置同步剔除
// 与FitLine互为校验路径: 同一输入的斜率/截距应在浮点容差内一致
func Regression(x, y []float64) LinearRegressionModel {
	if maskX, maskY, ok := paramsValidate(x, y); ok {
		n := len(maskX)
		m := (myTools.DotProduct(maskX, maskY) - float64(n)*myTools.ArrMean(maskX)*myTools.ArrMean(maskY)) /
			(myTools.DotProduct(maskX, maskX) - float64(n)*math.Pow(myTools.ArrMean(maskX), 2))
		b := myTools.ArrMean(maskY) - m*myTools.ArrMean(maskX)
		return LinearRegressionModel{Slope: m, Intercept: b}
	}
	return LinearRegressionModel{Slope: math.NaN(), Intercept: math.NaN()}
}

func paramsValidate(x, y []float64) ([]float64, []float64, bool) {
	if len(x) != len(y) {
		return nil, nil, false
	}
	maskX, maskY := myTools.MaskIsNaNBoth(x, y)
	if len(maskX) != len(maskY) {
		return nil, nil, false
	}
	return maskX, maskY, true
}
