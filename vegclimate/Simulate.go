package vegclimate

import (
	"math"

	"github.com/hhkbp2/go-logging"
)

// シミュレーションの設定
type Config struct {
	Lat          float64   //緯度 [deg]
	Years        int       //シミュレーション年数
	FirstYear    int       //シミュレーション開始の暦年
	UseLeapYears bool      //閏年を考慮するかどうか
	Subdaily     int       //1日あたりのサブステップ数 (0 または 1 で日単位)
	Instype      InsolType //日射量入力の種類
	Seed         int64     //降水量生成の乱数シード
	Truncate     bool      //微小な日別降水量 (< 0.1 mm) を 0 に切り捨てるかどうか
	Soiltype     Soiltype  //土壌型パラメータ
	Pfts         []Pft     //PFTレジストリ
}

// 月別気候値から日別強制データを生成してシミュレーションを実行します。
//
// 年ごとに月別値から日別系列を再生成し (気温・日射量は平均保存の補間、
// 降水量は確率的な日別分配、窒素沈着量は降水日への分配)、1日ずつ
// カレンダーを進めながら太陽幾何・平衡蒸発散量の計算と日次会計処理を
// 呼び出します。
//
// 乱数シードのみが確率的な状態であり、同じ設定と同じシードからは
// 常に同じ結果が得られます。
func Simulate(norm *MonthlyNormals, conf *Config) *ForcingTarget {
	logger := logging.GetLogger("vegclimate")

	gridcell := NewGridcell(conf.Lat, conf.Instype, conf.Soiltype, conf.Pfts)

	// 会計処理を行うパッチを1つ用意する
	patch := &Patch{}
	gridcell.Stands = []*Stand{{Patches: []*Patch{patch}}}

	date := NewDate(conf.FirstYear, conf.UseLeapYears, conf.Subdaily)
	seed := conf.Seed
	if seed <= 0 {
		seed = 12345
	}

	// 日射量入力の種類に応じた日別値の許容範囲
	insol_min, insol_max := 0.0, math.MaxFloat64
	if conf.Instype == Sunshine {
		insol_max = 100.0 //日照率 [%]
	}

	target := &ForcingTarget{}

	logger.Infof("シミュレーションを実行します (緯度=%g, %d年間)", conf.Lat, conf.Years)

	for year := 0; year < conf.Years; year++ {

		ndayyear := date.YearLength()

		// 月別値から日別系列を再生成する

		dtemp := make([]float64, ndayyear)
		InterpMonthlyMeansConserve(norm.Mtemp[:], dtemp, date,
			-math.MaxFloat64, math.MaxFloat64)

		dinsol := make([]float64, ndayyear)
		InterpMonthlyMeansConserve(norm.Minsol[:], dinsol, date,
			insol_min, insol_max)

		// PrDaily は期待雨天日数を更新するため毎年コピーを渡す
		dprec := make([]float64, ndayyear)
		mwet := make([]float64, 12)
		copy(mwet, norm.Mwet[:])
		PrDaily(norm.Mprec[:], dprec, mwet, date, &seed, conf.Truncate)

		dNH4dep := make([]float64, ndayyear)
		dNO3dep := make([]float64, ndayyear)
		DistributeNdep(norm.MNH4dry[:], norm.MNO3dry[:],
			norm.MNH4wet[:], norm.MNO3wet[:],
			dprec, dNH4dep, dNO3dep, date)

		// 1日ずつ進める

		for d := 0; d < ndayyear; d++ {
			climate := gridcell.Climate
			climate.Temp = dtemp[d]
			climate.Prec = dprec[d]
			climate.Insol = dinsol[d]
			gridcell.DNH4dep = dNH4dep[d]
			gridcell.DNO3dep = dNO3dep[d]

			if date.Diurnal() {
				// 日内サイクルのモデルはフレームワーク側の責務。ここでは
				// 各ステップに日平均値を与える(ステップ平均は日平均を保存)
				climate.Temps = make([]float64, date.Subdaily)
				climate.Insols = make([]float64, date.Subdaily)
				for i := 0; i < date.Subdaily; i++ {
					climate.Temps[i] = dtemp[d]
					climate.Insols[i] = dinsol[d]
				}
			}

			DaylengthInsolEET(climate, date)
			DailyAccountingGridcell(gridcell, date, conf.Pfts)

			// 土壌温度のモデルはフレームワーク側の責務。ここでは深さ25cmの
			// 代用値として直近31日の平均気温を使う
			patch.Soil.Temp25 = climate.Mtemp
			DailyAccountingPatch(patch, date)

			target.appendDay(date.Time(), climate, gridcell.DNH4dep, gridcell.DNO3dep)

			if date.IsLastDay() && date.IsLastMonth() {
				target.Annual = append(target.Annual, AnnualSummary{
					CalendarYear: date.CalendarYear(),
					Agdd0:        climate.Agdd0,
					Agdd5:        climate.Agdd5,
					Aprec:        climate.Aprec,
					AtempMean:    climate.AtempMean,
					MtempMin20:   climate.MtempMin20,
					MtempMax20:   climate.MtempMax20,
					Chilldays:    climate.Chilldays,
				})
			}

			date.Next()
		}
	}

	logger.Infof("シミュレーションが終了しました (%d日分)", target.Len())

	return target
}
