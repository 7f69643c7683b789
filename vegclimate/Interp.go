package vegclimate

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// 月平均値から擬似的な日別値を生成するモジュール
//
// 生成された日別値の月平均は入力の月平均と厳密に一致します(平均保存)。
// まず月初・月央・月末の3点の値を決めて区分線形補間を行います。
// 月初と月末の値は前後の月の平均から決まり、月央の値は平均が
// 保存されるように選ばれます。

// 1か月分の日別値を生成します。
//
// Args:
//
//	preceding_mean(float64): 前月の月平均値
//	this_mean(float64): 当月の月平均値
//	succeeding_mean(float64): 翌月の月平均値
//	result([]float64): 生成された日別値の格納先 (長さ=当月の日数)
//	minimum(float64): 日別値の下限 (制限しない場合は -math.MaxFloat64)
//	maximum(float64): 日別値の上限 (制限しない場合は +math.MaxFloat64)
//
// 上下限によるクリッピングを行った場合も、超過分を上下限に達していない
// 日へ比例配分して取り除くことで月平均を保存します。全日が上下限に
// 張り付いた場合のみ配分先がなく、平均保存は近似になります(浮動小数点の
// 既知のエッジケース)。
func InterpSingleMonth(preceding_mean float64, this_mean float64, succeeding_mean float64,
	result []float64, minimum float64, maximum float64) {

	time_steps := len(result)

	// 月初と月末の値は隣接する2つの月平均の平均から決める
	first_value := (this_mean + preceding_mean) / 2.0
	last_value := (this_mean + succeeding_mean) / 2.0

	// 月央の値は月初・月末の値の平均偏差を打ち消すように決める。
	// 例えば月初・月末が月平均より平均2度低い場合、月央は月平均+2度とし、
	// 月平均を保存する。
	average_deviation := ((first_value - this_mean) + (last_value - this_mean)) / 2.0
	middle_value := this_mean - average_deviation

	half_time := float64(time_steps) / 2.0
	first_slope := (middle_value - first_value) / half_time
	second_slope := (last_value - middle_value) / half_time

	// 前半の補間
	i := 0
	for ; i < time_steps/2; i++ {
		current_time := float64(i) + 0.5 //第i日の中央
		result[i] = first_value + first_slope*current_time
	}

	// 日数が奇数の場合、月央の日は補間値を使わずスキップし、
	// 残りの日の合計から逆算する
	if time_steps%2 == 1 {
		result[i] = 0.0
		i++
	}

	// 後半の補間
	for ; i < time_steps; i++ {
		current_time := float64(i) + 0.5 //第i日の中央
		result[i] = middle_value + second_slope*(current_time-half_time)
	}

	if time_steps%2 == 1 {
		// 月央の日を戻って設定し、平均を厳密に保存する
		result[time_steps/2] = float64(time_steps)*this_mean - floats.Sum(result)
	}

	// 下限を下回る日の補正
	added := 0.0
	sum_above := 0.0
	for i := 0; i < time_steps; i++ {
		if result[i] < minimum {
			added += minimum - result[i]
			result[i] = minimum
		} else {
			sum_above += result[i] - minimum
		}
	}

	fraction_to_remove := 0.0
	if sum_above > 0 {
		fraction_to_remove = added / sum_above
	}
	for i := 0; i < time_steps; i++ {
		if result[i] > minimum {
			result[i] -= fraction_to_remove * (result[i] - minimum)

			// 浮動小数点演算の精度の問題に対してのみ必要
			result[i] = math.Max(result[i], minimum)
		}
	}

	// 上限を上回る日の補正
	removed := 0.0
	sum_below := 0.0
	for i := 0; i < time_steps; i++ {
		if result[i] > maximum {
			removed += result[i] - maximum
			result[i] = maximum
		} else {
			sum_below += maximum - result[i]
		}
	}

	fraction_to_add := 0.0
	if sum_below > 0 {
		fraction_to_add = removed / sum_below
	}
	for i := 0; i < time_steps; i++ {
		if result[i] < maximum {
			result[i] += fraction_to_add * (maximum - result[i])

			// 浮動小数点演算の精度の問題に対してのみ必要
			result[i] = math.Min(result[i], maximum)
		}
	}
}

// 月平均値から1年分の日別値を生成します。
//
// 生成された日別値は各月の月平均を保存します。
//
// Args:
//
//	mvals([]float64): 12か月分の月平均値
//	dvals([]float64): 生成された日別値の格納先 (長さ=その年の日数)
//	date(*Date): 各月の日数の取得に使用するカレンダー
//	minimum(float64): 日別値の下限
//	maximum(float64): 日別値の上限
func InterpMonthlyMeansConserve(mvals []float64, dvals []float64, date *Date,
	minimum float64, maximum float64) {

	if len(mvals) != 12 {
		Fail("InterpMonthlyMeansConserve: expected 12 monthly values, got %d", len(mvals))
	}
	ndayyear := 0
	for m := 0; m < 12; m++ {
		ndayyear += date.Ndaymonth[m]
	}
	if len(dvals) != ndayyear {
		Fail("InterpMonthlyMeansConserve: expected %d daily values, got %d", ndayyear, len(dvals))
	}

	start_of_month := 0
	for m := 0; m < 12; m++ {

		// 前月・翌月のインデックス (年をまたいで循環)
		next := (m + 1) % 12
		prev := (m + 11) % 12

		// 月平均値が日別値の許容範囲の外にある場合(例えば負の放射量)、
		// 強制データが壊れていることをユーザーに知らせるため停止する
		if mvals[m] < minimum || mvals[m] > maximum {
			Fail("InterpMonthlyMeansConserve: Invalid monthly value given (%g), min = %g, max = %g",
				mvals[m], minimum, maximum)
		}

		InterpSingleMonth(mvals[prev], mvals[m], mvals[next],
			dvals[start_of_month:start_of_month+date.Ndaymonth[m]],
			minimum, maximum)

		start_of_month += date.Ndaymonth[m]
	}
}

// 月合計値から1年分の日別値を生成します。
//
// 生成された日別値は各月の月合計を保存します。
// 月合計を日平均値に換算してから InterpMonthlyMeansConserve に委譲します。
func InterpMonthlyTotalsConserve(mvals []float64, dvals []float64, date *Date,
	minimum float64, maximum float64) {

	if len(mvals) != 12 {
		Fail("InterpMonthlyTotalsConserve: expected 12 monthly values, got %d", len(mvals))
	}

	// 月合計を日平均値に換算
	mvals_daily := make([]float64, 12)
	for m := 0; m < 12; m++ {
		mvals_daily[m] = mvals[m] / float64(date.Ndaymonth[m])
	}

	InterpMonthlyMeansConserve(mvals_daily, dvals, date, minimum, maximum)
}
