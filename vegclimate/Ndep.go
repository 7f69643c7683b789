package vegclimate

// 窒素沈着量の月別値を日別値に分配するモジュール
//
// 乾性沈着は全日に均等に分配し、湿性沈着は降水のある日に分配します
// (降水のある日がない場合は全日に均等分配)。

// 1か月分の窒素沈着量を日別に分配します。
//
// Args:
//
//	NH4dry(float64): NH4乾性沈着量 (日沈着量の月平均)
//	NO3dry(float64): NO3乾性沈着量 (日沈着量の月平均)
//	NH4wet(float64): NH4湿性沈着量 (日沈着量の月平均)
//	NO3wet(float64): NO3湿性沈着量 (日沈着量の月平均)
//	dprec([]float64): 日別降水量 (長さ=当月の日数)
//	dNH4dep([]float64): 出力。日別のNH4沈着量合計
//	dNO3dep([]float64): 出力。日別のNO3沈着量合計
func DistributeNdepSingleMonth(NH4dry float64, NO3dry float64,
	NH4wet float64, NO3wet float64,
	dprec []float64, dNH4dep []float64, dNO3dep []float64) {

	time_steps := len(dprec)

	// まず降水のある日数を数える
	raindays := 0
	for i := 0; i < time_steps; i++ {
		if !negligible(dprec[i]) {
			raindays++
		}
	}

	// 分配
	for i := 0; i < time_steps; i++ {

		// 乾性沈着は全日に含める
		dNH4dep[i] = NH4dry
		dNO3dep[i] = NO3dry

		if raindays == 0 {
			dNH4dep[i] += NH4wet
			dNO3dep[i] += NO3wet
		} else if !negligible(dprec[i]) {
			dNH4dep[i] += (NH4wet * float64(time_steps)) / float64(raindays)
			dNO3dep[i] += (NO3wet * float64(time_steps)) / float64(raindays)
		}
	}
}

// 1年分の窒素沈着量の月別値を日別値に分配します。
// 分配方法の詳細は DistributeNdepSingleMonth を参照。
//
// Args:
//
//	mNH4dry([]float64): NH4乾性沈着量の月別値 (日沈着量の月平均、12か月分)
//	mNO3dry([]float64): NO3乾性沈着量の月別値
//	mNH4wet([]float64): NH4湿性沈着量の月別値
//	mNO3wet([]float64): NO3湿性沈着量の月別値
//	dprec([]float64): 日別降水量 (1年分)
//	dNH4dep([]float64): 出力。日別のNH4沈着量合計
//	dNO3dep([]float64): 出力。日別のNO3沈着量合計
func DistributeNdep(mNH4dry []float64, mNO3dry []float64,
	mNH4wet []float64, mNO3wet []float64,
	dprec []float64, dNH4dep []float64, dNO3dep []float64, date *Date) {

	start_of_month := 0
	for m := 0; m < 12; m++ {
		n := date.Ndaymonth[m]
		DistributeNdepSingleMonth(mNH4dry[m], mNO3dry[m],
			mNH4wet[m], mNO3wet[m],
			dprec[start_of_month:start_of_month+n],
			dNH4dep[start_of_month:start_of_month+n],
			dNO3dep[start_of_month:start_of_month+n])

		start_of_month += n
	}
}
