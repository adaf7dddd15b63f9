package tauc

import (
	"math"
	"testing"

	"spectro/infra/errorx"
	"spectro/infra/errorx/errCode"
)

func TestBuildDirect(t *testing.T) {
	// (K·E)^2
	y, err := Build([]float64{1, 2}, []float64{2, 3}, DIRECT)
	if err != nil {
		t.Fatalf("Build失败: %v", err)
	}
	if math.Abs(y[0]-4) > 1e-12 || math.Abs(y[1]-36) > 1e-12 {
		t.Fatalf("直接跃迁 %v, 期望 [4 36]", y)
	}
}

// 负积平方后为正, 不得翻转符号语义
func TestBuildDirectNegativeProduct(t *testing.T) {
	y, err := Build([]float64{-1}, []float64{2}, DIRECT)
	if err != nil {
		t.Fatalf("Build失败: %v", err)
	}
	if math.Abs(y[0]-4) > 1e-12 {
		t.Fatalf("(-2)^2 = %v, 期望 4", y[0])
	}
}

func TestBuildIndirect(t *testing.T) {
	// sqrt(K·E)
	y, err := Build([]float64{2, 8}, []float64{2, 2}, INDIRECT)
	if err != nil {
		t.Fatalf("Build失败: %v", err)
	}
	if math.Abs(y[0]-2) > 1e-12 || math.Abs(y[1]-4) > 1e-12 {
		t.Fatalf("间接跃迁 %v, 期望 [2 4]", y)
	}
}

// K·E为负时开方未定义
func TestBuildIndirectNegative(t *testing.T) {
	_, err := Build([]float64{-1}, []float64{2}, INDIRECT)
	if !errorx.IsCode(err, errCode.DOMAIN_ERROR) {
		t.Fatalf("期望 DOMAIN_ERROR, got %v", err)
	}
}

// K·E为0时取0, 不报错
func TestBuildIndirectZero(t *testing.T) {
	y, err := Build([]float64{0}, []float64{2}, INDIRECT)
	if err != nil {
		t.Fatalf("Build失败: %v", err)
	}
	if y[0] != 0 {
		t.Fatalf("sqrt(0) = %v", y[0])
	}
}

func TestBuildBadInput(t *testing.T) {
	if _, err := Build(nil, nil, DIRECT); !errorx.IsCode(err, errCode.EMPTY_VALUE) {
		t.Fatalf("期望 EMPTY_VALUE, got %v", err)
	}
	if _, err := Build([]float64{1}, []float64{1, 2}, DIRECT); !errorx.IsCode(err, errCode.INVALID_VALUE) {
		t.Fatalf("期望 INVALID_VALUE, got %v", err)
	}
}

func TestTransitionTypeEnum(t *testing.T) {
	if GetMyTransitionType("Direct") != DIRECT || GetMyTransitionType("Indirect") != INDIRECT {
		t.Fatal("枚举解析错误")
	}
	if GetMyTransitionType("bogus") != TRANSITION_ERROR {
		t.Fatal("非法字符串应返回 TRANSITION_ERROR")
	}
	if INDIRECT.String() != "Indirect" {
		t.Fatalf("String() = %s", INDIRECT.String())
	}
}
