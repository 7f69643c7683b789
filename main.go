// VegClimate
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/akamensky/argparse"
	"github.com/udawtr/vegclimate-go/vegclimate"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	// コマンドライン引数の処理
	parser := argparse.NewParser("VegClimate", "Creates daily forcing data for vegetation models from monthly climate normals")

	lat := parser.FloatPositional(&argparse.Options{
		Default: 35.658,
		Help:    "推計対象地点の緯度（10進法）"})

	input := parser.String("i", "input", &argparse.Options{
		Default: "normals.csv",
		Help:    "月別気候値ファイルのパス"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	years := parser.Int("", "years", &argparse.Options{
		Default: 30,
		Help:    "シミュレーション年数"})

	firstYear := parser.Int("", "first_year", &argparse.Options{
		Default: 2001,
		Help:    "シミュレーション開始の暦年"})

	seed := parser.Int("", "seed", &argparse.Options{
		Default: 12345,
		Help:    "日別降水量生成の乱数シード"})

	instype := parser.Selector("", "insol", []string{"sunshine", "netswrad", "swrad", "netswrad_ts", "swrad_ts"}, &argparse.Options{
		Default: "sunshine",
		Help:    "日射量入力の種類 日照率=sunshine(デフォルト), 正味短波放射=netswrad, 下向き短波放射=swrad (_tsは全時間平均)"})

	format := parser.Selector("f", "file", []string{"CSV", "ANNUAL"}, &argparse.Options{
		Default: "CSV",
		Help:    "出力形式 日別=CSV, 年別集計=ANNUAL"})

	leapYears := parser.Flag("", "leap_years", &argparse.Options{
		Help: "閏年を考慮する（2月29日を含む年は366日になる）"})

	truncate := parser.Flag("", "truncate", &argparse.Options{
		Help: "微小な日別降水量 (< 0.1 mm) を 0 に切り捨てる"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
	}

	// 月別気候値の読み込み
	norm := vegclimate.LoadMonthlyNormals(*input)

	// シミュレーションの実行
	res := vegclimate.Simulate(norm, &vegclimate.Config{
		Lat:          *lat,
		Years:        *years,
		FirstYear:    *firstYear,
		UseLeapYears: *leapYears,
		Instype:      parseInstype(*instype),
		Seed:         int64(*seed),
		Truncate:     *truncate,
	})

	// 保存
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	if *format == "CSV" {
		res.ToCSV(buf)
	} else if *format == "ANNUAL" {
		res.ToAnnualCSV(buf)
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		log.Printf("CSV保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			panic(err)
		}
	}

	log.Printf("計算が終了しました")
}

func parseInstype(s string) vegclimate.InsolType {
	switch s {
	case "sunshine":
		return vegclimate.Sunshine
	case "netswrad":
		return vegclimate.NetSWRad
	case "swrad":
		return vegclimate.SWRad
	case "netswrad_ts":
		return vegclimate.NetSWRadTS
	case "swrad_ts":
		return vegclimate.SWRadTS
	}
	panic(s)
}
