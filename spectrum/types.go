package spectrum

import (
	"fmt"
	"math"

	"spectro/infra/errorx"
	"spectro/infra/errorx/errCode"
)

// 测量信号类型
type SignalMode int

const (
	REFLECTANCE   SignalMode = iota // "Reflectance"
	TRANSMITTANCE                   // "Transmittance"
	SIGNAL_MODE_ERROR
)

func (s SignalMode) String() string {
	switch s {
	case REFLECTANCE:
		return "Reflectance"
	case TRANSMITTANCE:
		return "Transmittance"
	default:
		return "ERROR"
	}
}

func GetMySignalMode(s string) SignalMode {
	switch s {
	case "Reflectance":
		return REFLECTANCE
	case "Transmittance":
		return TRANSMITTANCE
	default:
		return SIGNAL_MODE_ERROR
	}
}

// Spectrum 波长-信号序列; 波长单位nm且严格递增, 信号为反射率或透射率
type Spectrum struct {
	Wavelength []float64
	Signal     []float64
}

// Validate 校验长度匹配、波长有限正值且严格递增
func (s *Spectrum) Validate() error {
	if len(s.Wavelength) == 0 || len(s.Signal) == 0 {
		return errorx.New(errCode.EMPTY_VALUE, "光谱为空")
	}
	if len(s.Wavelength) != len(s.Signal) {
		return errorx.New(errCode.INVALID_VALUE,
			fmt.Sprintf("波长与信号长度不匹配: %d vs %d", len(s.Wavelength), len(s.Signal)))
	}
	for i, w := range s.Wavelength {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return errorx.New(errCode.INVALID_VALUE, fmt.Sprintf("样本 %d 波长非法: %v", i, w))
		}
		if i > 0 && w <= s.Wavelength[i-1] {
			return errorx.New(errCode.INVALID_VALUE, fmt.Sprintf("波长必须严格递增, 样本 %d: %v <= %v", i, w, s.Wavelength[i-1]))
		}
	}
	return nil
}

// Restrict 截取波长子区间 [lo, hi], 返回新Spectrum
func (s *Spectrum) Restrict(lo, hi float64) *Spectrum {
	out := &Spectrum{}
	for i, w := range s.Wavelength {
		if w >= lo && w <= hi {
			out.Wavelength = append(out.Wavelength, w)
			out.Signal = append(out.Signal, s.Signal[i])
		}
	}
	return out
}
