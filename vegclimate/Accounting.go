package vegclimate

import (
	"math"
)

// 日次・年次の会計処理
//
// カレンダーに連動して積算温度・低温日数・移動平均・月次/年次/20年集計を
// 更新する状態機械です。空間単位ごとに毎日1回、他のドライバ関数や
// プロセス関数より先に呼び出します。

// 半球ごとの最寒日・最暖日 (通算日、0始まり)
const (
	ColdestDayNHemisphere = 14  //北半球の最寒日 (1月15日)
	ColdestDaySHemisphere = 195 //南半球の最寒日 (7月15日)
	WarmestDayNHemisphere = 195 //北半球の最暖日 (7月15日)
	WarmestDaySHemisphere = 14  //南半球の最暖日 (1月15日)
)

// 季節イベント
type SeasonEvent int

const (
	NoEvent     SeasonEvent = iota
	WinterReset             //真冬: 夏緑フェノロジーのGDD積算をリセット
	SummerSet               //真夏: 低温要求の積算を有効化
)

// 緯度と通算日から季節イベントを判定します。
// 最寒日・最暖日は半球によって異なります。
func SeasonTrigger(lat float64, day int) SeasonEvent {
	if (lat >= 0.0 && day == ColdestDayNHemisphere) ||
		(lat < 0.0 && day == ColdestDaySHemisphere) {
		return WinterReset
	}
	if (lat >= 0.0 && day == WarmestDayNHemisphere) ||
		(lat < 0.0 && day == WarmestDaySHemisphere) {
		return SummerSet
	}
	return NoEvent
}

// グリッドセルの日次会計処理
//
// 積算温度 (GDD) や呼吸の温度応答係数 gtemp を含む日次の気候パラメータを
// 更新し、気候変数の月次および長期の記録を保持します。
// pftlist は PFT レジストリです (明示的に渡すことで並列実行を安全にします)。
func DailyAccountingGridcell(gridcell *Gridcell, date *Date, pftlist []Pft) {

	const w11div12 = 11.0 / 12.0
	const w1div12 = 1.0 / 12.0

	climate := gridcell.Climate

	// 年の最初の日の処理

	if date.Day == 0 {
		// 年間のGDD0・GDD5積算値をリセット
		climate.Agdd0 = 0.0
		climate.Agdd5 = 0.0
		climate.Gdd0 = 0.0

		// 年間の窒素沈着量・降水量の積算値をリセット
		gridcell.ANH4dep = 0.0
		gridcell.ANO3dep = 0.0
		climate.Aprec = 0.0

		if date.Year == 0 {
			// シミュレーションの最初の日:
			// 直近31日の日別値バッファと12か月移動平均を初期気温で初期化する
			for d := 0; d < climate.Dtemp_31.Capacity(); d++ {
				climate.Dtemp_31.Add(climate.Temp)
			}
			climate.AtempMean = climate.Temp

			// PFTごとの Michaelis-Menten の Km を土壌の保水量から初期化
			for i := range pftlist {
				gridcell.Pfts[i].Km = pftlist[i].KmVolume * gridcell.Soiltype.Wtot
			}
		}

		// 全パッチのフラックス積算値をリセット
		for _, stand := range gridcell.Stands {
			for _, patch := range stand.Patches {
				patch.Fluxes.Reset()
				patch.Soil.Anfix = 0.0
				patch.Soil.AorgNleach = 0.0
				patch.Soil.AorgCleach = 0.0
				patch.Soil.Aminleach = 0.0
			}
		}
	}

	// 季節イベントの判定
	switch SeasonTrigger(climate.Lat, date.Day) {
	case WinterReset:
		// 真冬に夏緑フェノロジーのGDD積算をリセット
		climate.Gdd5 = 0.0
		climate.Ifsensechill = false
	case SummerSet:
		climate.Ifsensechill = true
	}

	// GDD積算値と低温日数の更新
	climate.Gdd5 += math.Max(0.0, climate.Temp-5.0)
	climate.Agdd5 += math.Max(0.0, climate.Temp-5.0)
	if climate.Temp < 5.0 && climate.Chilldays <= MaxYearLength {
		climate.Chilldays++
	}

	climate.Gdd0 += math.Max(0.0, climate.Temp)
	climate.Agdd0 += math.Max(0.0, climate.Temp)

	// gtemp の計算 (日単位またはサブデイリー)
	if date.Diurnal() {
		climate.Gtemps = make([]float64, date.Subdaily)
		for i := 0; i < date.Subdaily; i++ {
			climate.Gtemps[i] = RespirationTemperatureResponse(climate.Temps[i])
		}
	} else {
		climate.Gtemp = RespirationTemperatureResponse(climate.Temp)
	}

	// 年間の窒素沈着量・降水量の積算
	gridcell.ANH4dep += gridcell.DNH4dep
	gridcell.ANO3dep += gridcell.DNO3dep
	climate.Aprec += climate.Prec

	// 前日までの直近31日平均気温を保存
	mtemp_last := climate.Mtemp

	// 直近31日の日別値と平均気温を更新
	climate.Dtemp_31.Add(climate.Temp)
	climate.Mtemp = climate.Dtemp_31.Mean()

	climate.Dprec_31.Add(climate.Prec)
	climate.Deet_31.Add(climate.EET)

	// 夏を過ぎて月平均気温が基準温度を下回った場合、
	// GDD積算と低温日数をリセット (夏の後の最初の寒波を捉える)
	if mtemp_last >= 5.0 && climate.Mtemp < 5.0 && climate.Ifsensechill {
		climate.Gdd5 = 0.0
		climate.Chilldays = 0
	}

	// 月の最後の日の処理

	if date.IsLastDay() {
		// 直近12か月の平均気温を指数平滑で更新
		// atemp_mean_new = atemp_mean_old * (11/12) + mtemp * (1/12)
		climate.AtempMean = climate.AtempMean*w11div12 + climate.Mtemp*w1div12

		// 月平均気温の最小値・最大値を記録
		if date.Month == 0 {
			climate.MtempMin = climate.Mtemp
			climate.MtempMax = climate.Mtemp
		} else {
			if climate.Mtemp < climate.MtempMin {
				climate.MtempMin = climate.Mtemp
			}
			if climate.Mtemp > climate.MtempMax {
				climate.MtempMax = climate.Mtemp
			}
		}

		// 12月31日に月平均気温の最小値・最大値の20年履歴をシフトして更新し、
		// 直近20年(最初の20年間は窓が短くなる)の平均を求める
		if date.IsLastMonth() {
			startyear := 20 - int(math.Min(19, float64(date.Year)))
			climate.MtempMin20 = climate.MtempMin
			climate.MtempMax20 = climate.MtempMax

			for y := startyear; y < 20; y++ {
				climate.MtempMin_20[y-1] = climate.MtempMin_20[y]
				climate.MtempMin20 += climate.MtempMin_20[y]
				climate.MtempMax_20[y-1] = climate.MtempMax_20[y]
				climate.MtempMax20 += climate.MtempMax_20[y]
			}

			climate.MtempMin20 /= float64(21 - startyear)
			climate.MtempMax20 /= float64(21 - startyear)
			climate.MtempMin_20[19] = climate.MtempMin
			climate.MtempMax_20[19] = climate.MtempMax
			climate.Agdd0_20.Add(climate.Agdd0)
		}

		climate.Hmtemp_20[date.Month].Add(climate.Dtemp_31.PeriodicMean(date.Ndaymonth[date.Month]))
		climate.Hmprec_20[date.Month].Add(climate.Dprec_31.PeriodicSum(date.Ndaymonth[date.Month]))
		climate.Hmeet_20[date.Month].Add(climate.Deet_31.PeriodicSum(date.Ndaymonth[date.Month]))
	}
}

// パッチの日次会計処理
//
// 土壌の温度応答係数 gtemp を更新し、年初・月初に蒸発散の積算値を
// リセットします。FPC合計と重複補正係数も年初に計算します。
func DailyAccountingPatch(patch *Patch, date *Date) {

	if date.Day == 0 {

		patch.Aaet = 0.0
		patch.Aintercep = 0.0
		patch.Apet = 0.0

		// FPC合計の計算
		patch.FpcTotal = 0.0
		for i := range patch.Vegetation {
			patch.FpcTotal += patch.Vegetation[i].Fpc
		}
		// 個体群・コホート・個体間の重複 (FPC合計 > 1) を補正する係数
		patch.FpcRescale = 1.0 / math.Max(patch.FpcTotal, 1.0)
	}

	if date.Dayofmonth == 0 {
		patch.Maet[date.Month] = 0.0
		patch.Mintercep[date.Month] = 0.0
		patch.Mpet[date.Month] = 0.0
	}

	// 深さ25cmの土壌温度から土壌呼吸の温度応答係数を計算
	// (0℃以下では凍結による線形の低温側分枝を使う)
	patch.Soil.Gtemp = SoilTemperatureResponse(patch.Soil.Temp25, MinDecompTemp)
}
