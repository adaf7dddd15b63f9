package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"spectro/infra/errorx"
	"spectro/infra/errorx/errCode"
	"spectro/infra/staticLog"
	"spectro/spectrum"

	"github.com/bits-and-blooms/bitset"
)

// Table 摄入的原始表格, 首行为列名
type Table struct {
	Columns []string
	rows    [][]string
}

func LoadCSV(r io.Reader) (*Table, error) {
	return load(r, ',')
}

// LoadTXT 制表符分隔文本
func LoadTXT(r io.Reader) (*Table, error) {
	return load(r, '\t')
}

func load(r io.Reader, sep rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errorx.New(errCode.PARSE_ERROR, fmt.Sprintf("表格解析失败: %v", err))
	}
	if len(records) < 2 {
		return nil, errorx.New(errCode.EMPTY_VALUE, "表格无数据行")
	}
	cols := make([]string, len(records[0]))
	for i, c := range records[0] {
		cols[i] = strings.TrimSpace(c)
	}
	return &Table{Columns: cols, rows: records[1:]}, nil
}

// Numeric 提取两列并强制转数值; 含非数值的行整行剔除, 剔除行以位图返回
func (t *Table) Numeric(colX, colY string) (x, y []float64, dropped *bitset.BitSet, err error) {
	ix, iy := t.index(colX), t.index(colY)
	if ix < 0 {
		return nil, nil, nil, errorx.New(errCode.INVALID_VALUE, "列不存在: "+colX)
	}
	if iy < 0 {
		return nil, nil, nil, errorx.New(errCode.INVALID_VALUE, "列不存在: "+colY)
	}

	dropped = bitset.New(uint(len(t.rows)))
	for i, row := range t.rows {
		if ix >= len(row) || iy >= len(row) {
			dropped.Set(uint(i))
			continue
		}
		vx, ok1 := parseNumeric(row[ix])
		vy, ok2 := parseNumeric(row[iy])
		if !ok1 || !ok2 {
			dropped.Set(uint(i))
			continue
		}
		x = append(x, vx)
		y = append(y, vy)
	}
	if len(x) == 0 {
		return nil, nil, nil, errorx.New(errCode.EMPTY_VALUE, "无有效数值行")
	}
	if n := dropped.Count(); n > 0 {
		staticLog.Log.Infof("摄入剔除非数值行 %d 行", n)
	}
	return x, y, dropped, nil
}

func (t *Table) index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// parseNumeric 去掉千分位逗号后解析; NaN/Inf视为非数值
func parseNumeric(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ToSpectrum 按波长升序排序、截取 [lo, hi] 并剔除重复波长(保留先出现者)
func ToSpectrum(wavelength, signal []float64, lo, hi float64) (*spectrum.Spectrum, error) {
	if len(wavelength) != len(signal) {
		return nil, errorx.New(errCode.INVALID_VALUE,
			fmt.Sprintf("波长与信号长度不匹配: %d vs %d", len(wavelength), len(signal)))
	}

	type pair struct{ w, s float64 }
	pairs := make([]pair, 0, len(wavelength))
	for i, w := range wavelength {
		if w >= lo && w <= hi {
			pairs = append(pairs, pair{w, signal[i]})
		}
	}
	if len(pairs) == 0 {
		return nil, errorx.New(errCode.EMPTY_VALUE,
			fmt.Sprintf("波长区间 [%.6g, %.6g] 内无数据", lo, hi))
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].w < pairs[j].w })

	out := &spectrum.Spectrum{}
	for i, p := range pairs {
		if i > 0 && p.w == pairs[i-1].w {
			continue
		}
		out.Wavelength = append(out.Wavelength, p.w)
		out.Signal = append(out.Signal, p.s)
	}
	return out, nil
}
