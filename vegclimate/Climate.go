package vegclimate

import (
	"math"
)

// 日射量入力の種類
type InsolType int

const (
	// 日照率 [%]
	Sunshine InsolType = iota
	// 昼間平均の正味下向き短波放射フラックス [W/m2]
	NetSWRad
	// 昼間平均の下向き短波放射フラックス [W/m2] (アルベド補正が必要)
	SWRad
	// 全時間平均の正味下向き短波放射フラックス [W/m2]
	NetSWRadTS
	// 全時間平均の下向き短波放射フラックス [W/m2] (アルベド補正が必要)
	SWRadTS
)

// 空間単位(グリッドセル)ごとの気候状態
//
// シミュレーションの開始時に空間単位ごとに1つ作成され、実行中は毎日更新
// されます。太陽幾何のキャッシュ (qo, u, v, hh, sinehh, daylength_save) は
// 通算日と緯度のみに依存するため、年をまたいで再利用されます。
// 緯度の異なる空間単位間で共有してはいけません。
type Climate struct {
	Lat     float64   //緯度 [deg] (+=北半球, -=南半球)
	Instype InsolType //日射量入力の種類

	sinelat   float64 //sin(緯度)
	cosinelat float64 //cos(緯度)

	// 当日の瞬時値 (フレームワークが毎日設定)
	Temp  float64 //日平均気温 [℃]
	Prec  float64 //日降水量 [mm]
	Insol float64 //日射量 (Instype に応じて日照率 [%] またはフラックス [W/m2])

	// サブデイリーモードの場合の各ステップの値
	Temps  []float64 //ステップごとの気温 [℃]
	Insols []float64 //ステップごとの日射量

	// 通算日ごとの太陽幾何キャッシュ (年をまたいで再利用)
	qo             [MaxYearLength]float64 //大気外放射量 [W/m2]
	u              [MaxYearLength]float64 //sin(緯度)*sin(赤緯)
	v              [MaxYearLength]float64 //cos(緯度)*cos(赤緯)
	hh             [MaxYearLength]float64 //半日長の時角 [rad]
	sinehh         [MaxYearLength]float64 //sin(hh)
	daylength_save [MaxYearLength]float64 //日長 [h]
	doneday        [MaxYearLength]bool    //当日の計算済みフラグ

	// 当日の導出値 (DaylengthInsolEET が毎日設定)
	Daylength float64 //日長 [h]
	Rad       float64 //正味下向き短波放射量 [J/m2/day]
	PAR       float64 //光合成有効放射量 [J/m2/day]
	EET       float64 //平衡蒸発散量 [mm/day]
	Gtemp     float64 //呼吸の温度応答係数

	Rads   []float64 //サブデイリーモードのステップごとの放射量
	Pars   []float64 //サブデイリーモードのステップごとのPAR
	Gtemps []float64 //サブデイリーモードのステップごとの温度応答係数

	// 直近31日の移動窓
	Dtemp_31 *Historic //日平均気温 [℃]
	Dprec_31 *Historic //日降水量 [mm]
	Deet_31  *Historic //平衡蒸発散量 [mm]

	// 積算温度と低温日数
	Gdd5      float64 //冬のリセット以降のGDD5積算値
	Agdd5     float64 //年GDD5積算値
	Gdd0      float64 //年初以降のGDD0積算値
	Agdd0     float64 //年GDD0積算値
	Chilldays int     //低温日数 (日平均気温 < 5℃ の日数、MaxYearLength で飽和)

	Ifsensechill bool //夏を過ぎて低温要求の積算が有効になったかどうか

	// 月平均気温の記録
	Mtemp      float64     //直近31日の平均気温 [℃]
	MtempMin   float64     //今年の月平均気温の最小値 [℃]
	MtempMax   float64     //今年の月平均気温の最大値 [℃]
	MtempMin20 float64     //月平均気温最小値の直近20年平均 [℃]
	MtempMax20 float64     //月平均気温最大値の直近20年平均 [℃]
	MtempMin_20 [20]float64 //月平均気温最小値の20年履歴 (シフトレジスタ)
	MtempMax_20 [20]float64 //月平均気温最大値の20年履歴 (シフトレジスタ)

	AtempMean float64 //直近12か月の平均気温 (指数平滑) [℃]

	// 各暦月の月平均値の20年履歴
	Hmtemp_20 [12]*Historic //月平均気温 [℃]
	Hmprec_20 [12]*Historic //月降水量 [mm]
	Hmeet_20  [12]*Historic //月蒸発散量 [mm]

	Agdd0_20 *Historic //年GDD0の20年履歴

	Aprec float64 //年降水量 [mm]
}

// 緯度 lat [deg] と日射量入力の種類 instype から気候状態を作成します。
func NewClimate(lat float64, instype InsolType) *Climate {
	if lat < -90.0 || lat > 90.0 {
		Fail("NewClimate: invalid latitude %g", lat)
	}

	latrad := lat * math.Pi / 180.0

	c := &Climate{
		Lat:       lat,
		Instype:   instype,
		sinelat:   math.Sin(latrad),
		cosinelat: math.Cos(latrad),
		Dtemp_31:  NewHistoric(31),
		Dprec_31:  NewHistoric(31),
		Deet_31:   NewHistoric(31),
		Agdd0_20:  NewHistoric(20),
	}

	for m := 0; m < 12; m++ {
		c.Hmtemp_20[m] = NewHistoric(20)
		c.Hmprec_20[m] = NewHistoric(20)
		c.Hmeet_20[m] = NewHistoric(20)
	}

	return c
}
