package spectro

import (
	"fmt"

	"spectro/bandgap"
	"spectro/config"
	"spectro/infra/errorx"
	"spectro/ml/ols"
	"spectro/optics/kubelka"
	"spectro/optics/tauc"
	"spectro/region"
	"spectro/spectrum"
)

// Result 一次完整计算的全量序列, 每次调用重新生成, 参数变更后不做缓存复用
type Result struct {
	Wavelength    []float64 // nm
	Reflectance   []float64
	Transmittance []float64
	Absorbance    []float64 // 展示用
	PhotonEnergy  []float64 // eV
	TaucValues    []float64
	Mode          spectrum.SignalMode
	Transition    tauc.TransitionType
}

// FitOutcome 手动或自动拟合路径的终端产物
type FitOutcome struct {
	XFit    []float64 // 拟合区间光子能量
	YFit    []float64 // 拟合区间Tauc值
	Model   ols.LinearModel
	BandGap float64 // eV
}

// Compute 原始光谱→光学变换→Tauc纵轴
// 配置开启平滑时先对信号做滑动平均
func Compute(spec *spectrum.Spectrum, mode spectrum.SignalMode, tt tauc.TransitionType) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	signal := spec.Signal
	if enable, window := config.GetSmooth(); enable {
		signal = spectrum.MovingAverage(signal, window)
	}

	series, err := kubelka.Transform(spec.Wavelength, signal, mode)
	if err != nil {
		return nil, err
	}
	y, err := tauc.Build(series.Alpha, series.PhotonEnergy, tt)
	if err != nil {
		return nil, err
	}
	return &Result{
		Wavelength:    series.Wavelength,
		Reflectance:   series.Reflectance,
		Transmittance: series.Transmittance,
		Absorbance:    series.Absorbance,
		PhotonEnergy:  series.PhotonEnergy,
		TaucValues:    y,
		Mode:          mode,
		Transition:    tt,
	}, nil
}

// ManualFit 对用户选定的能量区间 [eMin, eMax] (eV) 做线性拟合并外推带隙
// 区间内点数不足或奇异时错误信息携带区间边界
func ManualFit(res *Result, eMin, eMax float64) (*FitOutcome, error) {
	var xFit, yFit []float64
	for i, e := range res.PhotonEnergy {
		if e >= eMin && e <= eMax {
			xFit = append(xFit, e)
			yFit = append(yFit, res.TaucValues[i])
		}
	}

	model, err := ols.FitLine(xFit, yFit)
	if err != nil {
		return nil, errorx.New(errorx.CodeOf(err),
			fmt.Sprintf("能量区间 [%.6g, %.6g] eV: %v", eMin, eMax, err))
	}
	gap, err := bandgap.Estimate(model.Slope, model.Intercept)
	if err != nil {
		return nil, errorx.New(errorx.CodeOf(err),
			fmt.Sprintf("能量区间 [%.6g, %.6g] eV: %v", eMin, eMax, err))
	}
	return &FitOutcome{XFit: xFit, YFit: yFit, Model: model, BandGap: gap}, nil
}

// AutoFit 自动探测最优线性区; 无可用窗口时 ok=false, 属正常空结果
func AutoFit(res *Result, windowSize int, minY *float64) (*FitOutcome, bool) {
	d := &region.Detector{WindowSize: windowSize, MinY: minY}
	det, ok := d.Scan(res.PhotonEnergy, res.TaucValues)
	if !ok {
		return nil, false
	}
	return &FitOutcome{XFit: det.XFit, YFit: det.YFit, Model: det.Model, BandGap: det.BandGap}, true
}

// AutoFitDefault 使用配置中的窗口宽度与下限
func AutoFitDefault(res *Result) (*FitOutcome, bool) {
	return AutoFit(res, config.GetWindowSize(region.DEFAULT_WINDOW_SIZE), config.GetMinY())
}
