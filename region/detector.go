package region

import (
	"math"

	"spectro/bandgap"
	"spectro/infra/staticLog"
	"spectro/ml/ols"

	"github.com/bits-and-blooms/bitset"
)

const DEFAULT_WINDOW_SIZE = 10

// Detector 滑动窗口线性区自动探测器
type Detector struct {
	WindowSize int      // 窗口宽度, 至少2, 默认10
	MinY       *float64 // 可选Tauc纵轴下限, 窗口内任一点低于该值则整窗跳过
}

func NewDetector() *Detector {
	return &Detector{WindowSize: DEFAULT_WINDOW_SIZE}
}

// Detection 最优窗口及其拟合结果
type Detection struct {
	Start   int       // 窗口起始下标, 窗口为 [Start, Start+WindowSize)
	XFit    []float64 // 窗口光子能量 (eV)
	YFit    []float64 // 窗口Tauc值
	Model   ols.LinearModel
	BandGap float64 // eV
}

// Scan 扫描全部候选窗口 [i, i+W), i ∈ [0, N-W-1], 返回R²严格最大的窗口
// R²持平时保留先扫描到的窗口; 单窗失败仅跳过, 不中断扫描
// 无任何可用窗口时 ok=false, 属正常空结果而非错误
func (d *Detector) Scan(energy, y []float64) (Detection, bool) {
	w := d.WindowSize
	if w < 2 {
		staticLog.Log.Warnf("窗口宽度 %d 非法, 至少需要2", w)
		return Detection{}, false
	}
	n := len(energy)
	if n != len(y) || n <= w {
		return Detection{}, false
	}

	// min_y 预筛: 位图标记低于下限的样本, 窗口可用性查询为一次NextSet
	var low *bitset.BitSet
	if d.MinY != nil {
		low = bitset.New(uint(n))
		for i, v := range y {
			if v < *d.MinY {
				low.Set(uint(i))
			}
		}
	}

	var best Detection
	bestR2 := math.Inf(-1)
	found := false

	for i := 0; i < n-w; i++ {
		if low != nil {
			if idx, ok := low.NextSet(uint(i)); ok && idx < uint(i+w) {
				continue // 窗口含低于min_y的点, 整窗不拟合
			}
		}
		xw := energy[i : i+w]
		yw := y[i : i+w]

		model, err := ols.FitLine(xw, yw)
		if err != nil {
			staticLog.Log.Debugf("窗口 [%d,%d) 拟合失败, 跳过: %v", i, i+w, err)
			continue
		}
		// 斜率为零无法外推的窗口不参与R²竞争, 与单窗拟合失败同等跳过
		gap, err := bandgap.Estimate(model.Slope, model.Intercept)
		if err != nil {
			staticLog.Log.Debugf("窗口 [%d,%d) 无法外推, 跳过: %v", i, i+w, err)
			continue
		}

		// 严格大于: 持平时先到者胜
		if model.RSquared > bestR2 {
			bestR2 = model.RSquared
			best = Detection{
				Start:   i,
				XFit:    append([]float64(nil), xw...),
				YFit:    append([]float64(nil), yw...),
				Model:   model,
				BandGap: gap,
			}
			found = true
		}
	}
	return best, found
}
