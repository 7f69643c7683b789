package vegclimate

import (
	"math"

	"github.com/hhkbp2/go-logging"
)

// 月降水量を擬似的な日別値に分配するモジュール
//
// 1次のマルコフ連鎖で雨天/晴天を決定し(Geng et al 1986 の遷移確率)、
// 雨天日の降水量は指数分布から抽出します(Krysanova/Cramer のパラメータ)。
// 生成した月合計が指定の月降水量と一致するように正規化します。

// 月降水量から日別降水量を生成します。
//
// Args:
//
//	mval_prec([]float64): 月降水量 [mm] (12か月分)
//	dval_prec([]float64): 出力。日別降水量 [mm] (長さ=その年の日数)
//	mval_wet([]float64): 月内の期待雨天日数 (12か月分)。計算の過程で更新されます
//	date(*Date): 各月の日数の取得に使用するカレンダー
//	seed(*int64): 乱数生成のシード (RandFrac を参照)
//	truncate(bool): true の場合、微小な日別値 (< 0.1 mm) を 0 に切り捨てます
//
// 同じ初期シード値からは常に同じ日別降水量系列が生成されます。
// 偶然に月合計がゼロとなった場合は、その月の生成を最初からやり直します。
// やり直し回数に上限は設けていませんが、診断のため記録してログに出力します。
func PrDaily(mval_prec []float64, dval_prec []float64, mval_wet []float64,
	date *Date, seed *int64, truncate bool) {

	const c1 = 1.0 //指数分布の正規化係数
	const c2 = 1.2 //指数分布のべき

	retries := 0

	dy := 0
	daysum := 0

	for m := 0; m < 12; m++ {

		if mval_prec[m] < 0.1 {

			// 月降水量が期待されない場合の特別扱い

			for d := 0; d < date.Ndaymonth[m]; d++ {
				dval_prec[dy] = 0.0
				dy++
			}
		} else {

			mprec_sum := 0.0

			// 月に最低1日の雨天日を強制する
			mval_wet[m] = math.Max(mval_wet[m], 1.0)

			// 雨天日あたりの降水量 (最低 0.1 mm)
			mprec := math.Max(mval_prec[m]/mval_wet[m], 0.1)
			mval_wet[m] = mval_prec[m] / mprec

			// この月の雨天確率
			prob_rain := mval_wet[m] / float64(date.Ndaymonth[m])

			dy_hold := dy

			for negligible(mprec_sum) {

				dy = dy_hold

				for d := 0; d < date.Ndaymonth[m]; d++ {

					// 遷移確率 (Geng et al 1986)

					var prob float64
					if dy == 0 { //年の最初の日のみ
						prob = 0.75 * prob_rain
					} else {
						if dval_prec[dy-1] < 0.1 {
							prob = 0.75 * prob_rain
						} else {
							prob = 0.25 + (0.75 * prob_rain)
						}
					}

					// 雨天日を乱数で決定し、指数分布のパラメータには
					// Krysanova/Cramer の推定値 (c1, c2) を使う

					if RandFrac(seed) > prob {
						dval_prec[dy] = 0.0
					} else {
						x := RandFrac(seed)
						dval_prec[dy] = math.Pow(-math.Log(x), c2) * mprec * c1
						if dval_prec[dy] < 0.1 {
							dval_prec[dy] = 0.0
						}
					}

					mprec_sum += dval_prec[dy]
					dy++
				}

				// 生成した降水量を指定の月合計で正規化する

				if !negligible(mprec_sum) {
					for d := 0; d < date.Ndaymonth[m]; d++ {
						dyy := daysum + d
						dval_prec[dyy] *= mval_prec[m] / mprec_sum
						if truncate && dval_prec[dyy] < 0.1 {
							dval_prec[dyy] = 0.0
						}
					}
				} else {
					retries++
				}
			}
		}

		daysum += date.Ndaymonth[m]
	}

	if retries > 0 {
		logger := logging.GetLogger("vegclimate")
		logger.Warnf("PrDaily: 月降水量の生成を %d 回やり直しました", retries)
	}
}
