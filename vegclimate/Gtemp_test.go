package vegclimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 呼吸の温度応答のテスト
func Test_RespirationTemperatureResponse(t *testing.T) {
	// T=10℃ で T+46.02 = 56.02 となり g(T)=1 (基準温度)
	assert.InDelta(t, 1.0, RespirationTemperatureResponse(10.0), 1.0e-12)

	// 温度とともに単調増加
	assert.True(t, RespirationTemperatureResponse(20.0) > RespirationTemperatureResponse(10.0))
	assert.True(t, RespirationTemperatureResponse(0.0) < RespirationTemperatureResponse(10.0))

	// -40℃未満では 0
	assert.Equal(t, 0.0, RespirationTemperatureResponse(-40.1))
	assert.True(t, RespirationTemperatureResponse(-40.0) > 0.0)
}

// 土壌呼吸の温度応答のテスト (凍結時の線形の低温側分枝)
func Test_SoilTemperatureResponse(t *testing.T) {
	// 0℃より上では気温の応答と同じ
	assert.Equal(t, RespirationTemperatureResponse(15.0), SoilTemperatureResponse(15.0, MinDecompTemp))

	// 0℃では凍結点の分解速度と連続
	assert.InDelta(t, RespirationTemperatureResponse(0.0), SoilTemperatureResponse(0.0, MinDecompTemp), 1.0e-12)

	// 0℃から min_decomp_temp まで線形に減少
	half := SoilTemperatureResponse(MinDecompTemp/2.0, MinDecompTemp)
	assert.InDelta(t, RespirationTemperatureResponse(0.0)/2.0, half, 1.0e-12)

	// min_decomp_temp 以下では 0
	assert.Equal(t, 0.0, SoilTemperatureResponse(MinDecompTemp-0.1, MinDecompTemp))
}
