package ols

import (
	"fmt"
	"math"

	"spectro/infra/errorx"
	"spectro/infra/errorx/errCode"
	"spectro/infra/staticLog"
	"spectro/ml/hist"

	gstat "github.com/gonum/stat"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LinearModel 单变量线性拟合结果与拟合质量指标
type LinearModel struct {
	Slope     float64
	Intercept float64
	Resids    []float64  // 残差 y - (slope·x + intercept)
	RSquared  float64    // 决定系数; 常数y(TSS=0)记为-Inf, 竞争中永不获胜
	RMSE      float64    // sqrt(mean(resid^2))
	MAE       float64    // mean(|resid|)
	SE        [2]float64 // 标准误 [截距, 斜率]
	TStats    [2]float64 // t统计量
	PValues   [2]float64 // p值(双尾), df<=0或SE为0时为NaN
}

// ResidualHist 残差等宽分箱, 用于诊断展示
func (m *LinearModel) ResidualHist(bins int) []hist.Bin {
	return hist.Residual(m.Resids, bins)
}

// FitLine 对 (x, y) 做最小二乘直线拟合 y = slope·x + intercept
// 正规方程 β = (X'X)^(-1) X'Y, 不可逆时退化为SVD广义逆
// 少于2个点或x全部相同(设计矩阵奇异)返回FIT_ERROR
func FitLine(x, y []float64) (LinearModel, error) {
	n := len(x)
	if n != len(y) {
		return LinearModel{}, errorx.New(errCode.INVALID_VALUE,
			fmt.Sprintf("x/y 长度不匹配: %d vs %d", n, len(y)))
	}
	if n < 2 {
		return LinearModel{}, errorx.New(errCode.FIT_ERROR,
			fmt.Sprintf("拟合点不足: %d, 至少需要2个", n))
	}
	allSame := true
	for i := 1; i < n; i++ {
		if x[i] != x[0] {
			allSame = false
			break
		}
	}
	if allSame {
		staticLog.Log.Warnf("FitLine 设计矩阵奇异: %d 个点 x 全部为 %v", n, x[0])
		return LinearModel{}, errorx.New(errCode.FIT_ERROR, "x 全部相同, 设计矩阵奇异")
	}

	// 设计矩阵 [1, x]
	dataX := make([]float64, n*2)
	for i := 0; i < n; i++ {
		dataX[i*2] = 1
		dataX[i*2+1] = x[i]
	}
	matX := mat.NewDense(n, 2, dataX)
	matY := mat.NewVecDense(n, append([]float64(nil), y...))

	// (X'X)
	var XT mat.Dense
	XT.CloneFrom(matX.T())
	var XTX mat.Dense
	XTX.Mul(&XT, matX)

	// (X'X)^(-1)
	var invXTX mat.Dense
	if err := invXTX.Inverse(&XTX); err != nil {
		staticLog.Log.Warnf("warning XTX矩阵不可逆 %s", err)
		pinv, errSVD := pseudoInverse(&XTX)
		if errSVD != nil {
			return LinearModel{}, errorx.New(errCode.FIT_ERROR,
				fmt.Sprintf("X'X 不可逆且SVD失败: %v", errSVD))
		}
		invXTX.CloneFrom(pinv)
	}

	// β = (X'X)^(-1) * (X'Y)
	var XTY mat.VecDense
	XTY.MulVec(&XT, matY)
	var beta mat.VecDense
	beta.MulVec(&invXTX, &XTY)

	m := LinearModel{Intercept: beta.AtVec(0), Slope: beta.AtVec(1)}

	// 残差与指标
	m.Resids = make([]float64, n)
	var rss, sumAbs float64
	for i := 0; i < n; i++ {
		r := y[i] - (m.Slope*x[i] + m.Intercept)
		m.Resids[i] = r
		rss += r * r
		sumAbs += math.Abs(r)
	}
	m.RMSE = math.Sqrt(rss / float64(n))
	m.MAE = sumAbs / float64(n)

	// R² = 1 - RSS/TSS
	ymean := gstat.Mean(y, nil)
	var tss float64
	for _, v := range y {
		d := v - ymean
		tss += d * d
	}
	if tss == 0 {
		m.RSquared = math.Inf(-1)
	} else {
		m.RSquared = 1 - rss/tss
	}

	// 标准误/t统计量/p值(双尾), df = n-2
	df := float64(n - 2)
	if df > 0 {
		sigma2 := rss / df
		tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
		for j := 0; j < 2; j++ {
			m.SE[j] = math.Sqrt(sigma2 * invXTX.At(j, j))
			if m.SE[j] > 0 {
				m.TStats[j] = beta.AtVec(j) / m.SE[j]
				m.PValues[j] = 2 * tdist.Survival(math.Abs(m.TStats[j]))
			} else {
				m.TStats[j] = math.NaN()
				m.PValues[j] = math.NaN()
			}
		}
	} else {
		for j := 0; j < 2; j++ {
			m.SE[j], m.TStats[j], m.PValues[j] = math.NaN(), math.NaN(), math.NaN()
		}
	}
	return m, nil
}

// 用SVD 求解广义逆矩阵
func pseudoInverse(A *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	ok := svd.Factorize(A, mat.SVDThin)
	if !ok {
		return nil, errorx.New(errCode.FIT_ERROR, "SVD分解失败")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	sigma := svd.Values(nil)
	m, n := A.Dims()
	sInv := mat.NewDense(n, m, nil)

	tol := 1e-12 // 小奇异值截断阈值
	for i, val := range sigma {
		if val > tol {
			sInv.Set(i, i, 1.0/val)
		}
	}

	// A⁺ = V * Σ⁺ * Uᵀ
	var temp mat.Dense
	temp.Mul(&v, sInv)
	var uT mat.Dense
	uT.CloneFrom(u.T())

	var pinv mat.Dense
	pinv.Mul(&temp, &uT)
	return &pinv, nil
}
