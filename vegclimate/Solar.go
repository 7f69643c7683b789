package vegclimate

import (
	"math"
)

// 日長・日射量・平衡蒸発散量の計算
//
// 日平均気温、日射量(日照率または短波放射フラックス)、緯度、通算日から
// 当日の日長、正味短波放射量、PAR、平衡蒸発散量を計算します。
// Refs: Prentice et al 1993, Monteith & Unsworth 1990,
//
//	Henderson-Sellers & Robinson 1986, Jarvis & McNaughton 1986

const (
	solarQOO     = 1360.0      //太陽定数 [W/m2]
	solarBETA    = 0.17        //短波アルベドの平均値
	solarA       = 107.0       //長波放射の経験定数 a
	solarB       = 0.2         //長波放射の経験定数 b
	solarC       = 0.25        //晴天透過率の経験定数 c
	solarD       = 0.5         //晴天透過率の経験定数 d
	solarK       = 13750.98708 //時角[rad]から秒への換算係数 (12/π*3600)
	solarFRADPAR = 0.5         //正味短波放射量のうち光合成有効放射の割合
)

// 1日分の太陽幾何・放射量・平衡蒸発散量を計算します。
// 空間単位ごとに毎日1回、気温の更新後かつ植生の計算前に呼び出します。
// 同じ日に再度呼び出された場合は通算日ごとのキャッシュにより冪等です。
//
// 計算手順 (式番号は Prentice et al 1993):
//
//	 (2) Qo = Qoo * ( 1 + 2*0.01675 * cos ( 2*pi*(i+0.5)/365) )
//	 (4) delta = -23.4 * pi / 180 * cos ( 2*pi*(i+10.5)/365 )
//	 (9) u = sin(lat) * sin(delta)
//	(10) v = cos(lat) * cos(delta)
//	(11) hh = acos (-u/v)  ただし |u| >= v の場合は白夜/極夜の特別扱い
//	(13) w = (c + d*ni) * (1 - beta) * Qo
//	(14) rad = 2 * w * ( u*hh + v*sin(hh) ) * k
//
// 平衡蒸発散量は正味放射が正の時間帯 (半周期 hn、hh と同様に解く) に
// わたって積分した Penman 型の閉形式 (式26) で計算します。
func DaylengthInsolEET(climate *Climate, date *Date) {

	if !climate.doneday[date.Day] {

		// この通算日の太陽幾何を計算してキャッシュする
		climate.qo[date.Day] = solarQOO * (1.0 + 2.0*0.01675*
			math.Cos(2.0*math.Pi*(float64(date.Day)+0.5)/float64(date.YearLength()))) //式2

		// 赤緯 [rad] (式4)
		delta := -23.4 * (math.Pi / 180.0) * math.Cos(2.0*math.Pi*(float64(date.Day)+10.5)/float64(date.YearLength()))

		climate.u[date.Day] = climate.sinelat * math.Sin(delta) //式9
		climate.v[date.Day] = climate.cosinelat * math.Cos(delta) //式10

		if climate.u[date.Day] >= climate.v[date.Day] {
			climate.hh[date.Day] = math.Pi //白夜
		} else if climate.u[date.Day] <= -climate.v[date.Day] {
			climate.hh[date.Day] = 0.0 //極夜
		} else {
			climate.hh[date.Day] = math.Acos(-climate.u[date.Day] / climate.v[date.Day]) //式11
		}

		climate.sinehh[date.Day] = math.Sin(climate.hh[date.Day])

		// hh から日長 [h] を計算
		climate.daylength_save[date.Day] = 24.0 * climate.hh[date.Day] / math.Pi
		climate.doneday[date.Day] = true
	}

	climate.Daylength = climate.daylength_save[date.Day]

	var w float64

	if climate.Instype == Sunshine { //日射量入力が日照率の場合

		w = (solarC + solarD*climate.Insol/100.0) * (1.0 - solarBETA) * climate.qo[date.Day] //式13
		climate.Rad = 2.0 * w * (climate.u[date.Day]*climate.hh[date.Day] +
			climate.v[date.Day]*climate.sinehh[date.Day]) * solarK //式14

	} else { //日射量入力が瞬時の短波放射フラックスの場合

		// 入力が昼間平均か全時間平均かで積算時間が異なる

		averaging_period := 24.0 * 3600.0

		if climate.Instype == NetSWRad || climate.Instype == SWRad {
			// 昼間平均のフラックスとして与えられている
			averaging_period = climate.daylength_save[date.Day] * 3600.0
		}

		net_coeff := 1.0
		if climate.Instype == SWRad || climate.Instype == SWRadTS {
			net_coeff = 1.0 - solarBETA //アルベド補正
		}
		climate.Rad = climate.Insol * net_coeff * averaging_period

		if date.Diurnal() {
			climate.Rads = make([]float64, date.Subdaily)
			climate.Pars = make([]float64, date.Subdaily)
			for i := 0; i < date.Subdaily; i++ {
				climate.Rads[i] = climate.Insols[i] * net_coeff * averaging_period
				climate.Pars[i] = climate.Rads[i] * solarFRADPAR
			}
		}

		// 極夜の特別扱い (ゼロ除算の回避)
		if climate.hh[date.Day] < 0.001 {
			w = 0.0
		} else {
			w = climate.Rad / 2.0 / (climate.u[date.Day]*climate.hh[date.Day] +
				climate.v[date.Day]*climate.sinehh[date.Day]) / solarK //式14より
		}
	}

	// 放射量からPARを計算 (Eqn A1, Haxeltine & Prentice 1996)
	climate.PAR = climate.Rad * solarFRADPAR

	// 平衡蒸発散量の計算
	//
	//	(15) eet = ( s / (s + gamma) ) * rn / lambda
	//	(16) s = 2.503E+6 * exp ( 17.269 * temp / (237.3 + temp) ) /
	//	         (237.3 + temp)**2
	//	(19) rl = ( b + (1-b) * ( w / Qo / (1 - beta) - c ) / d ) * ( a - temp )
	//	(20) uu = w * u - rl
	//	(21) vv = w * v
	//	(25) hn = acos ( -uu/vv )  ただし |uu| >= vv の場合は白夜/極夜の特別扱い
	//	(26) eet_day = 2 * ( s / (s + gamma) / lambda ) * ( uu*hn + vv*sin(hn) ) * k

	// 瞬時の正味上向き長波放射フラックス [W/m2] (式19)
	rl := (solarB + (1.0-solarB)*(w/climate.qo[date.Day]/(1.0-solarBETA)-solarC)/solarD) *
		(solarA - climate.Temp)

	// 乾湿計定数 gamma と蒸発潜熱 lambda は温度に弱く依存するため
	// 簡単な線形近似で求める
	gamma := 65.05 + climate.Temp*0.064
	lambda := 2.495e6 - climate.Temp*2380.0

	ct := 237.3 + climate.Temp
	s := 2.503e6 * math.Exp(17.269*climate.Temp/ct) / ct / ct //式16

	uu := w*climate.u[date.Day] - rl //式20
	vv := w * climate.v[date.Day]    //式21

	// 正味放射が正の半周期 hn を計算
	// uu >= vv の場合 hn = pi (白夜)、uu <= -vv の場合 hn = 0 (極夜)
	var hn float64
	if uu >= vv {
		hn = math.Pi //白夜
	} else if uu <= -vv {
		hn = 0.0 //極夜
	} else {
		hn = math.Acos(-uu / vv) //式25
	}

	// 当日の平衡蒸発散量 [mm/day] (式26)
	climate.EET = 2.0 * (s / (s + gamma) / lambda) * (uu*hn + vv*math.Sin(hn)) * solarK
}
