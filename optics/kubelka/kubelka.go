package kubelka

import (
	"fmt"
	"math"

	"spectro/infra/errorx"
	"spectro/infra/errorx/errCode"
	"spectro/spectrum"
)

const (
	PLANCK_EV   = 4.135667696e-15 // 普朗克常数 eV·s
	LIGHT_SPEED = 3e8             // 光速 m/s
)

// KubelkaMunk 漫反射率→吸收代理 K = (1-R)^2 / (2R)
// R为0时除零, 返回DOMAIN_ERROR而不是静默传播非有限值
func KubelkaMunk(r float64) (float64, error) {
	if r == 0 {
		return 0, errorx.New(errCode.DOMAIN_ERROR, "Kubelka-Munk 除零: reflectance = 0")
	}
	return (1 - r) * (1 - r) / (2 * r), nil
}

// InverseKubelkaMunk 由K计算展示用吸光度 A = 1 - sqrt(1+4K)/2
// 仅用于展示, 不进入Tauc管线
func InverseKubelkaMunk(k float64) float64 {
	return 1 - math.Sqrt(1+4*k)/2
}

// PhotonEnergyEV 波长(nm)→光子能量(eV): E = h·c / (λ·1e-9)
func PhotonEnergyEV(wavelengthNm float64) (float64, error) {
	if wavelengthNm <= 0 {
		return 0, errorx.New(errCode.DOMAIN_ERROR, fmt.Sprintf("波长必须为正: %v", wavelengthNm))
	}
	return PLANCK_EV * LIGHT_SPEED / (wavelengthNm * 1e-9), nil
}

// Series 光学变换结果, 各序列与输入样本一一对应
type Series struct {
	Wavelength    []float64 // nm
	Reflectance   []float64
	Transmittance []float64
	Absorbance    []float64 // 展示用
	Alpha         []float64 // Kubelka-Munk 吸收代理K
	PhotonEnergy  []float64 // eV
}

// Transform 按信号模式推导反射率/透射率/吸收代理/光子能量
// 透射率模式: 百分比先归一为小数, 再取 R = 1 - T
// 反射率模式: T = 1 - R 仅为展示近似
func Transform(wavelength, signal []float64, mode spectrum.SignalMode) (*Series, error) {
	n := len(signal)
	if n == 0 {
		return nil, errorx.New(errCode.EMPTY_VALUE, "信号序列为空")
	}
	if len(wavelength) != n {
		return nil, errorx.New(errCode.INVALID_VALUE,
			fmt.Sprintf("波长与信号长度不匹配: %d vs %d", len(wavelength), n))
	}

	var refl, trans []float64
	switch mode {
	case spectrum.REFLECTANCE:
		refl = append([]float64(nil), signal...)
		trans = make([]float64, n)
		for i, r := range refl {
			trans[i] = 1 - r
		}
	case spectrum.TRANSMITTANCE:
		trans = spectrum.NormalizePercent(signal)
		refl = make([]float64, n)
		for i, t := range trans {
			refl[i] = 1 - t
		}
	default:
		return nil, errorx.New(errCode.INVALID_VALUE, fmt.Sprintf("未知信号模式: %d", mode))
	}

	s := &Series{
		Wavelength:    append([]float64(nil), wavelength...),
		Reflectance:   refl,
		Transmittance: trans,
		Absorbance:    make([]float64, n),
		Alpha:         make([]float64, n),
		PhotonEnergy:  make([]float64, n),
	}
	for i := 0; i < n; i++ {
		k, err := KubelkaMunk(refl[i])
		if err != nil {
			return nil, errorx.New(errCode.DOMAIN_ERROR,
				fmt.Sprintf("样本 %d (λ=%.6g nm) 反射率为0, Kubelka-Munk 未定义", i, wavelength[i]))
		}
		s.Alpha[i] = k
		s.Absorbance[i] = InverseKubelkaMunk(k)

		e, err := PhotonEnergyEV(wavelength[i])
		if err != nil {
			return nil, errorx.New(errCode.DOMAIN_ERROR,
				fmt.Sprintf("样本 %d 波长非法: %.6g nm", i, wavelength[i]))
		}
		s.PhotonEnergy[i] = e
	}
	return s, nil
}
