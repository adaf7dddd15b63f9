package bandgap

import (
	"math"

	"spectro/infra/errorx"
	"spectro/infra/errorx/errCode"
)

const DEFAULT_TOLERANCE_EV = 0.1 // 文献对比默认容差 ±0.1 eV

// Estimate 线性区外推至纵轴零点: Eg = -intercept / slope
// 斜率为零时返回ZERO_SLOPE, 与一般拟合失败区分, 调用方可提示"平坦区域无法外推"
func Estimate(slope, intercept float64) (float64, error) {
	if slope == 0 {
		return 0, errorx.New(errCode.ZERO_SLOPE, "斜率为零, 水平拟合无法外推带隙")
	}
	return -intercept / slope, nil
}

// MatchesReference 与文献参考值在容差内比较; tolEV<=0 时用默认容差
func MatchesReference(estimate, reference, tolEV float64) bool {
	if tolEV <= 0 {
		tolEV = DEFAULT_TOLERANCE_EV
	}
	return math.Abs(estimate-reference) <= tolEV
}
