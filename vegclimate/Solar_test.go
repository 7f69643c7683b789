package vegclimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 日長のテスト: 赤道では1年を通して日長は12時間
func Test_DaylengthInsolEET_equator(t *testing.T) {
	climate := NewClimate(0.0, Sunshine)
	date := NewDate(2001, false, 1)

	for d := 0; d < 365; d++ {
		climate.Temp = 25.0
		climate.Insol = 50.0
		DaylengthInsolEET(climate, date)
		assert.InDelta(t, 12.0, climate.Daylength, 1.0e-9)
		date.Next()
	}
}

// 極夜のテスト: 北緯80度の冬至では日長は0時間
func Test_DaylengthInsolEET_polar_night(t *testing.T) {
	climate := NewClimate(80.0, Sunshine)
	date := NewDate(2001, false, 1)
	for date.Day < 355 {
		date.Next()
	}

	climate.Temp = -25.0
	climate.Insol = 0.0
	DaylengthInsolEET(climate, date)

	assert.Equal(t, 0.0, climate.Daylength)
	assert.Equal(t, 0.0, climate.Rad)
	assert.Equal(t, 0.0, climate.PAR)
}

// 白夜のテスト: 北緯80度の夏至では日長は24時間
func Test_DaylengthInsolEET_polar_day(t *testing.T) {
	climate := NewClimate(80.0, Sunshine)
	date := NewDate(2001, false, 1)
	for date.Day < 172 {
		date.Next()
	}

	climate.Temp = 5.0
	climate.Insol = 60.0
	DaylengthInsolEET(climate, date)

	assert.InDelta(t, 24.0, climate.Daylength, 1.0e-9)
	assert.True(t, climate.Rad > 0.0)
}

// 極夜のフラックス入力のテスト: ゼロ除算を避けて w=0 となる
func Test_DaylengthInsolEET_polar_night_flux(t *testing.T) {
	climate := NewClimate(80.0, NetSWRadTS)
	date := NewDate(2001, false, 1)
	for date.Day < 355 {
		date.Next()
	}

	climate.Temp = -25.0
	climate.Insol = 0.0
	DaylengthInsolEET(climate, date)

	assert.Equal(t, 0.0, climate.Daylength)
	assert.False(t, math.IsNaN(climate.EET))
	assert.False(t, math.IsNaN(climate.Rad))
}

// 同じ日に再度呼び出した場合の冪等性のテスト
func Test_DaylengthInsolEET_idempotent(t *testing.T) {
	climate := NewClimate(45.0, Sunshine)
	date := NewDate(2001, false, 1)
	for date.Day < 100 {
		date.Next()
	}

	climate.Temp = 12.0
	climate.Insol = 45.0
	DaylengthInsolEET(climate, date)
	rad1, par1, eet1, daylength1 := climate.Rad, climate.PAR, climate.EET, climate.Daylength

	DaylengthInsolEET(climate, date)
	assert.Equal(t, rad1, climate.Rad)
	assert.Equal(t, par1, climate.PAR)
	assert.Equal(t, eet1, climate.EET)
	assert.Equal(t, daylength1, climate.Daylength)
}

// PARが放射量の50%であることのテスト (Eqn A1, Haxeltine & Prentice 1996)
func Test_DaylengthInsolEET_par_fraction(t *testing.T) {
	climate := NewClimate(35.658, Sunshine)
	date := NewDate(2001, false, 1)
	for date.Day < 150 {
		date.Next()
	}

	climate.Temp = 20.0
	climate.Insol = 55.0
	DaylengthInsolEET(climate, date)

	assert.InDelta(t, climate.Rad*0.5, climate.PAR, 1.0e-9)
	assert.True(t, climate.EET > 0.0)
}

// 日照率入力とフラックス入力の整合性のテスト
// 日照率から計算した放射量を昼間平均フラックスとして与えると同じ放射量になる
func Test_DaylengthInsolEET_flux_roundtrip(t *testing.T) {
	climate1 := NewClimate(35.658, Sunshine)
	date := NewDate(2001, false, 1)
	for date.Day < 150 {
		date.Next()
	}

	climate1.Temp = 20.0
	climate1.Insol = 55.0
	DaylengthInsolEET(climate1, date)

	// 日長に対する平均フラックス [W/m2] に換算して入力
	climate2 := NewClimate(35.658, NetSWRad)
	climate2.Temp = 20.0
	climate2.Insol = climate1.Rad / (climate1.Daylength * 3600.0)
	DaylengthInsolEET(climate2, date)

	assert.InDelta(t, climate1.Rad, climate2.Rad, math.Abs(climate1.Rad)*1.0e-9)
	assert.InDelta(t, climate1.EET, climate2.EET, math.Abs(climate1.EET)*1.0e-6)
}
