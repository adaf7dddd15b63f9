package export

import (
	"math"
	"strconv"
	"strings"

	"spectro"

	"github.com/shopspring/decimal"
)

const PRECISION = 6 // 导出数值保留小数位

const csvHeader = "Wavelength (nm),Absorbance,Reflectance,Transmittance," +
	"Photon Energy (eV),Tauc Plot Value,Fitted Photon Energy (eV)," +
	"Fitted Tauc Plot Value,Band Gap (eV)"

func round(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NaN"
	}
	return decimal.NewFromFloat(v).Round(PRECISION).String()
}

// ToCSV 按9列布局导出全量序列; 拟合列不足处以NaN补齐, 带隙整列重复
func ToCSV(res *spectro.Result, fit *spectro.FitOutcome) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	gap := round(fit.BandGap)
	for i := range res.Wavelength {
		xf, yf := "NaN", "NaN"
		if i < len(fit.XFit) {
			xf = round(fit.XFit[i])
			yf = round(fit.YFit[i])
		}
		b.WriteString(strings.Join([]string{
			round(res.Wavelength[i]),
			round(res.Absorbance[i]),
			round(res.Reflectance[i]),
			round(res.Transmittance[i]),
			round(res.PhotonEnergy[i]),
			round(res.TaucValues[i]),
			xf,
			yf,
			gap,
		}, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// ToTXT 5列文本导出, 缺位以空串补齐, 行数取全量与拟合序列较长者
func ToTXT(res *spectro.Result, fit *spectro.FitOutcome) string {
	var b strings.Builder
	b.WriteString("Photon Energy (eV),Tauc Plot Value,Fitted Photon Energy (eV),Fitted Tauc Plot Value,Band Gap (eV)\n")

	gap := strconv.FormatFloat(fit.BandGap, 'g', -1, 64)
	maxLen := len(res.PhotonEnergy)
	if len(fit.XFit) > maxLen {
		maxLen = len(fit.XFit)
	}
	for i := 0; i < maxLen; i++ {
		var pe, tv, xf, yf string
		if i < len(res.PhotonEnergy) {
			pe = strconv.FormatFloat(res.PhotonEnergy[i], 'g', -1, 64)
			tv = strconv.FormatFloat(res.TaucValues[i], 'g', -1, 64)
		}
		if i < len(fit.XFit) {
			xf = strconv.FormatFloat(fit.XFit[i], 'g', -1, 64)
			yf = strconv.FormatFloat(fit.YFit[i], 'g', -1, 64)
		}
		b.WriteString(pe + "," + tv + "," + xf + "," + yf + "," + gap + "\n")
	}
	return b.String()
}
