package vegclimate

import (
	"math"
)

// 呼吸の温度応答
//
// 温度 T に対する呼吸速度の応答 g(T) を計算します。
// 生態系横断の土壌温度応答の経験式に基づき、温度順化による
// Q10応答の減衰を取り込んだものです (Eqn 11, Lloyd & Taylor 1994)。
//
//	r    = r10 * g(T)
//	g(T) = EXP [308.56 * (1 / 56.02 - 1 / (T - 227.13))] (TはKelvin)
//
// T < -40℃ では 0 を返します。
func RespirationTemperatureResponse(temp float64) float64 {
	if temp >= -40.0 {
		return math.Exp(308.56 * (1.0/56.02 - 1.0/(temp+46.02)))
	}
	return 0.0
}

// 凍結温度以下で分解が停止する温度 [℃]
const MinDecompTemp = -8.0

// 土壌呼吸の温度応答
//
// 0℃以上では RespirationTemperatureResponse と同じですが、
// 0℃以下では凍結点での値から min_decomp_temp で 0 になる線形の
// 低温側分枝を使います (Koven et al 2011)。根の呼吸の計算に必要です。
func SoilTemperatureResponse(soiltemp float64, min_decomp_temp float64) float64 {
	if soiltemp > 0.0 {
		return RespirationTemperatureResponse(soiltemp)
	}

	// 凍結点での分解速度 (soiltemp = 0 のときの g(T))
	decomp_at_freezing_point := math.Exp(308.56 * (1.0/56.02 - 1.0/(0.0 + 46.02)))

	// 線形近似 (Koven et al 2011)
	slope := decomp_at_freezing_point / math.Abs(min_decomp_temp)

	if soiltemp < min_decomp_temp {
		return 0.0
	}
	// 0℃での decomp_at_freezing_point から min_decomp_temp での 0 まで線形に減少
	return slope*soiltemp + decomp_at_freezing_point
}
