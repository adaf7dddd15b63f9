package spectro

import (
	"math"
	"strings"
	"testing"

	"spectro/infra/errorx"
	"spectro/infra/errorx/errCode"
	"spectro/optics/tauc"
	"spectro/spectrum"
)

// 合成结果: 能量 1..20 eV, Tauc值严格在 y=2x-6 上
func linearResult() *Result {
	res := &Result{}
	for i := 1; i <= 20; i++ {
		e := float64(i)
		res.PhotonEnergy = append(res.PhotonEnergy, e)
		res.TaucValues = append(res.TaucValues, 2*e-6)
	}
	return res
}

// 全区间手动拟合应恢复 slope=2, intercept=-6, Eg=3.0, R²=1
func TestManualFitRoundTrip(t *testing.T) {
	fit, err := ManualFit(linearResult(), 0, 25)
	if err != nil {
		t.Fatalf("ManualFit失败: %v", err)
	}
	if math.Abs(fit.Model.Slope-2) > 1e-9 || math.Abs(fit.Model.Intercept+6) > 1e-9 {
		t.Fatalf("slope=%v intercept=%v, 期望 2 / -6", fit.Model.Slope, fit.Model.Intercept)
	}
	if math.Abs(fit.BandGap-3) > 1e-9 {
		t.Fatalf("Eg = %v, 期望 3.0", fit.BandGap)
	}
	if math.Abs(fit.Model.RSquared-1) > 1e-9 {
		t.Fatalf("R² = %v, 期望 1.0", fit.Model.RSquared)
	}
}

// 能量子区间掩码: 只取 [5,10] eV 内的点
func TestManualFitSubrange(t *testing.T) {
	fit, err := ManualFit(linearResult(), 5, 10)
	if err != nil {
		t.Fatalf("ManualFit失败: %v", err)
	}
	if len(fit.XFit) != 6 {
		t.Fatalf("区间内点数 %d, 期望 6", len(fit.XFit))
	}
	if math.Abs(fit.BandGap-3) > 1e-9 {
		t.Fatalf("Eg = %v, 期望 3.0", fit.BandGap)
	}
}

// 区间内点数不足: FIT_ERROR且错误信息携带区间边界
func TestManualFitTooNarrow(t *testing.T) {
	_, err := ManualFit(linearResult(), 7.4, 7.6)
	if !errorx.IsCode(err, errCode.FIT_ERROR) {
		t.Fatalf("期望 FIT_ERROR, got %v", err)
	}
	if !strings.Contains(err.Error(), "能量区间 [7.4, 7.6]") {
		t.Fatalf("错误信息未携带区间边界: %v", err)
	}
}

func TestAutoFitOnPipeline(t *testing.T) {
	res := linearResult()
	fit, ok := AutoFit(res, 10, nil)
	if !ok {
		t.Fatal("期望找到线性区")
	}
	// 全谱严格线性, 任何获胜窗口都应外推到 Eg=3
	if math.Abs(fit.BandGap-3) > 1e-9 {
		t.Fatalf("Eg = %v, 期望 3.0", fit.BandGap)
	}
	if len(fit.XFit) != 10 {
		t.Fatalf("窗口长度 %d, 期望 10", len(fit.XFit))
	}
}

func TestAutoFitEmptyOutcome(t *testing.T) {
	res := &Result{}
	for i := 1; i <= 20; i++ {
		res.PhotonEnergy = append(res.PhotonEnergy, float64(i))
		res.TaucValues = append(res.TaucValues, 4.2) // 常数 → 全部退化窗口
	}
	if _, ok := AutoFit(res, 10, nil); ok {
		t.Fatal("常数谱期望空结果而非错误")
	}
}

// 全管线: 反射率谱 → Tauc序列, 序列齐长且有限
func TestComputePipeline(t *testing.T) {
	spec := &spectrum.Spectrum{}
	for wl := 400.0; wl <= 800; wl += 10 {
		spec.Wavelength = append(spec.Wavelength, wl)
		spec.Signal = append(spec.Signal, 0.2+wl/4000) // (0,1)内的反射率
	}
	res, err := Compute(spec, spectrum.REFLECTANCE, tauc.DIRECT)
	if err != nil {
		t.Fatalf("Compute失败: %v", err)
	}
	n := len(spec.Wavelength)
	if len(res.PhotonEnergy) != n || len(res.TaucValues) != n ||
		len(res.Absorbance) != n || len(res.Transmittance) != n {
		t.Fatal("输出序列长度不齐")
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(res.TaucValues[i]) || math.IsInf(res.TaucValues[i], 0) {
			t.Fatalf("样本 %d Tauc值非有限: %v", i, res.TaucValues[i])
		}
		if res.PhotonEnergy[i] <= 0 {
			t.Fatalf("样本 %d 光子能量非正: %v", i, res.PhotonEnergy[i])
		}
	}

	// 每次调用重新生成, 两次结果数值一致
	res2, err := Compute(spec, spectrum.REFLECTANCE, tauc.DIRECT)
	if err != nil {
		t.Fatalf("Compute失败: %v", err)
	}
	for i := 0; i < n; i++ {
		if res.TaucValues[i] != res2.TaucValues[i] {
			t.Fatalf("重复计算不一致: %v vs %v", res.TaucValues[i], res2.TaucValues[i])
		}
	}
}

// 反射率含0样本时整次计算失败并指明样本
func TestComputeDomainError(t *testing.T) {
	spec := &spectrum.Spectrum{
		Wavelength: []float64{400, 500, 600},
		Signal:     []float64{0.5, 0, 0.3},
	}
	_, err := Compute(spec, spectrum.REFLECTANCE, tauc.DIRECT)
	if !errorx.IsCode(err, errCode.DOMAIN_ERROR) {
		t.Fatalf("期望 DOMAIN_ERROR, got %v", err)
	}
}
