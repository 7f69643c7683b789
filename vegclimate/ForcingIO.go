package vegclimate

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hhkbp2/go-logging"
)

// 月別気候値ファイルの読み込み
//
// 1行が「変数名,1月,...,12月」のCSVファイルから月別気候値を読み込みます。
// 変数名は mtemp, mprec, mwet, minsol, mnh4dry, mno3dry, mnh4wet, mno3wet で、
// mtemp, mprec, mwet, minsol は必須、沈着量の4行は省略可能(既定値0)です。

// 月別気候値
type MonthlyNormals struct {
	Mtemp  [12]float64 //月平均気温 [℃]
	Mprec  [12]float64 //月降水量 [mm]
	Mwet   [12]float64 //月内の期待雨天日数
	Minsol [12]float64 //月平均日射量 (日照率 [%] またはフラックス [W/m2])

	MNH4dry [12]float64 //NH4乾性沈着量 (日沈着量の月平均)
	MNO3dry [12]float64 //NO3乾性沈着量
	MNH4wet [12]float64 //NH4湿性沈着量
	MNO3wet [12]float64 //NO3湿性沈着量
}

// 月別気候値ファイルを読み込みます。
// 形式が不正な場合や必須の行が欠けている場合は実行を中断します。
func LoadMonthlyNormals(path string) *MonthlyNormals {
	logger := logging.GetLogger("vegclimate")
	logger.Infof("月別気候値を読み込みます: %s", path)

	f, err := os.Open(path)
	if err != nil {
		Fail("LoadMonthlyNormals: %s", err)
	}
	defer f.Close()

	norm := &MonthlyNormals{}
	seen := map[string]bool{}

	csvReader := csv.NewReader(f)
	csvReader.ReuseRecord = true
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = -1

	for {
		row, cerr := csvReader.Read()
		if cerr == io.EOF {
			break
		}
		if cerr != nil {
			Fail("LoadMonthlyNormals: %s", cerr)
		}
		if len(row) != 13 {
			Fail("LoadMonthlyNormals: %s: expected 13 columns, got %d", row[0], len(row))
		}

		name := strings.ToLower(strings.TrimSpace(row[0]))

		var target *[12]float64
		switch name {
		case "mtemp":
			target = &norm.Mtemp
		case "mprec":
			target = &norm.Mprec
		case "mwet":
			target = &norm.Mwet
		case "minsol":
			target = &norm.Minsol
		case "mnh4dry":
			target = &norm.MNH4dry
		case "mno3dry":
			target = &norm.MNO3dry
		case "mnh4wet":
			target = &norm.MNH4wet
		case "mno3wet":
			target = &norm.MNO3wet
		default:
			Fail("LoadMonthlyNormals: unknown variable %q", name)
		}

		for m := 0; m < 12; m++ {
			v, perr := strconv.ParseFloat(strings.TrimSpace(row[m+1]), 64)
			if perr != nil {
				Fail("LoadMonthlyNormals: %s: %s", name, perr)
			}
			target[m] = v
		}
		seen[name] = true
	}

	for _, required := range []string{"mtemp", "mprec", "mwet", "minsol"} {
		if !seen[required] {
			Fail("LoadMonthlyNormals: required variable %q missing", required)
		}
	}

	return norm
}
