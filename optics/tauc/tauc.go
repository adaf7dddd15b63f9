package tauc

import (
	"fmt"
	"math"

	"spectro/infra/errorx"
	"spectro/infra/errorx/errCode"
)

// 电子跃迁类型, 决定Tauc纵轴指数
type TransitionType int

const (
	DIRECT   TransitionType = iota // "Direct": (K·E)^2
	INDIRECT                       // "Indirect": sqrt(K·E)
	TRANSITION_ERROR
)

func (t TransitionType) String() string {
	switch t {
	case DIRECT:
		return "Direct"
	case INDIRECT:
		return "Indirect"
	default:
		return "ERROR"
	}
}

func GetMyTransitionType(s string) TransitionType {
	switch s {
	case "Direct":
		return DIRECT
	case "Indirect":
		return INDIRECT
	default:
		return TRANSITION_ERROR
	}
}

// Build 由吸收代理K与光子能量E构造Tauc纵轴
// Direct: (K·E)^2, 负积平方后为正, 不改变符号语义
// Indirect: sqrt(K·E), K·E为负时开方未定义, 返回DOMAIN_ERROR
func Build(alpha, energy []float64, tt TransitionType) ([]float64, error) {
	n := len(alpha)
	if n == 0 {
		return nil, errorx.New(errCode.EMPTY_VALUE, "吸收代理序列为空")
	}
	if len(energy) != n {
		return nil, errorx.New(errCode.INVALID_VALUE,
			fmt.Sprintf("吸收代理与光子能量长度不匹配: %d vs %d", n, len(energy)))
	}

	y := make([]float64, n)
	for i := 0; i < n; i++ {
		p := alpha[i] * energy[i]
		switch tt {
		case DIRECT:
			y[i] = p * p
		case INDIRECT:
			if p < 0 {
				return nil, errorx.New(errCode.DOMAIN_ERROR,
					fmt.Sprintf("样本 %d: K·E = %.6g 为负, 间接跃迁开方未定义", i, p))
			}
			y[i] = math.Sqrt(p)
		default:
			return nil, errorx.New(errCode.INVALID_VALUE, fmt.Sprintf("未知跃迁类型: %d", tt))
		}
	}
	return y, nil
}
