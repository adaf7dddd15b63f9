package spectrum

import (
	"math"
	"testing"

	"spectro/infra/errorx"
	"spectro/infra/errorx/errCode"
)

// 百分比透射率 [50,75,100] 必须归一为 [0.5,0.75,1.0]
func TestNormalizePercent(t *testing.T) {
	got := NormalizePercent([]float64{50, 75, 100})
	want := []float64{0.5, 0.75, 1.0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("归一结果 %v, 期望 %v", got, want)
		}
	}
}

// 已是小数的信号原样返回
func TestNormalizePercentFraction(t *testing.T) {
	in := []float64{0.3, 0.8, 1.0}
	got := NormalizePercent(in)
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("小数信号被改写: %v -> %v", in, got)
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		s    Spectrum
		code errCode.Code
	}{
		{"empty", Spectrum{}, errCode.EMPTY_VALUE},
		{"mismatch", Spectrum{Wavelength: []float64{400, 500}, Signal: []float64{0.5}}, errCode.INVALID_VALUE},
		{"negative wavelength", Spectrum{Wavelength: []float64{-400, 500}, Signal: []float64{0.5, 0.6}}, errCode.INVALID_VALUE},
		{"not increasing", Spectrum{Wavelength: []float64{500, 400}, Signal: []float64{0.5, 0.6}}, errCode.INVALID_VALUE},
	}
	for _, c := range cases {
		if err := c.s.Validate(); !errorx.IsCode(err, c.code) {
			t.Fatalf("%s: got %v, 期望 %v", c.name, err, c.code)
		}
	}

	ok := Spectrum{Wavelength: []float64{400, 500, 600}, Signal: []float64{0.5, 0.6, 0.7}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("合法光谱校验失败: %v", err)
	}
}

func TestRestrict(t *testing.T) {
	s := Spectrum{
		Wavelength: []float64{300, 400, 500, 600, 700},
		Signal:     []float64{0.1, 0.2, 0.3, 0.4, 0.5},
	}
	out := s.Restrict(400, 600)
	if len(out.Wavelength) != 3 || out.Wavelength[0] != 400 || out.Wavelength[2] != 600 {
		t.Fatalf("截取结果 %v", out.Wavelength)
	}
	if out.Signal[1] != 0.3 {
		t.Fatalf("信号未对齐: %v", out.Signal)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{1, 2, 3, 4, 5}, 3)
	if len(got) != 5 {
		t.Fatalf("长度 %d, 期望 5", len(got))
	}
	// 中间点为三点均值
	if math.Abs(got[2]-3) > 1e-12 {
		t.Fatalf("中心点 %v, 期望 3", got[2])
	}
	// window<=1 原样返回
	same := MovingAverage([]float64{1, 2, 3}, 1)
	for i, v := range []float64{1, 2, 3} {
		if same[i] != v {
			t.Fatalf("window=1 被改写: %v", same)
		}
	}
}

func TestSignalModeEnum(t *testing.T) {
	if GetMySignalMode("Reflectance") != REFLECTANCE || GetMySignalMode("Transmittance") != TRANSMITTANCE {
		t.Fatal("枚举解析错误")
	}
	if GetMySignalMode("???") != SIGNAL_MODE_ERROR {
		t.Fatal("非法字符串应返回 SIGNAL_MODE_ERROR")
	}
	if REFLECTANCE.String() != "Reflectance" {
		t.Fatalf("String() = %s", REFLECTANCE.String())
	}
}
