package vegclimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"gonum.org/v1/gonum/floats"
)

// 窒素沈着量の分配のテスト (降水のある日が存在する場合)
func Test_DistributeNdepSingleMonth_with_raindays(t *testing.T) {
	dprec := []float64{0, 0, 5.2, 0, 1.1, 0, 0, 0, 3.3, 0,
		0, 0, 0, 0, 0, 8.8, 0, 0, 0, 0,
		0, 0, 2.5, 0, 0, 0, 0, 0, 0, 0}
	time_steps := len(dprec)

	dNH4dep := make([]float64, time_steps)
	dNO3dep := make([]float64, time_steps)

	NH4dry, NO3dry := 0.02, 0.01
	NH4wet, NO3wet := 0.05, 0.03
	DistributeNdepSingleMonth(NH4dry, NO3dry, NH4wet, NO3wet, dprec, dNH4dep, dNO3dep)

	// 月合計は (乾性+湿性)×日数 を保存する
	assert.True(t, math.Abs(floats.Sum(dNH4dep)-(NH4dry+NH4wet)*float64(time_steps)) < 1.0e-12)
	assert.True(t, math.Abs(floats.Sum(dNO3dep)-(NO3dry+NO3wet)*float64(time_steps)) < 1.0e-12)

	// 降水のない日は乾性沈着のみ
	assert.Equal(t, NH4dry, dNH4dep[0])
	assert.Equal(t, NO3dry, dNO3dep[0])

	// 降水のある日は乾性+湿性(日数/雨天日数で重みづけ)
	raindays := 5.0
	assert.True(t, math.Abs(dNH4dep[2]-(NH4dry+NH4wet*float64(time_steps)/raindays)) < 1.0e-12)
	assert.True(t, math.Abs(dNO3dep[2]-(NO3dry+NO3wet*float64(time_steps)/raindays)) < 1.0e-12)
}

// 窒素沈着量の分配のテスト (降水のある日がない場合)
func Test_DistributeNdepSingleMonth_no_raindays(t *testing.T) {
	dprec := make([]float64, 31)

	dNH4dep := make([]float64, 31)
	dNO3dep := make([]float64, 31)

	NH4dry, NO3dry := 0.02, 0.01
	NH4wet, NO3wet := 0.05, 0.03
	DistributeNdepSingleMonth(NH4dry, NO3dry, NH4wet, NO3wet, dprec, dNH4dep, dNO3dep)

	// 湿性沈着は全日に均等分配される
	for i := 0; i < 31; i++ {
		assert.True(t, math.Abs(dNH4dep[i]-(NH4dry+NH4wet)) < 1.0e-12)
		assert.True(t, math.Abs(dNO3dep[i]-(NO3dry+NO3wet)) < 1.0e-12)
	}

	assert.True(t, math.Abs(floats.Sum(dNH4dep)-(NH4dry+NH4wet)*31.0) < 1.0e-12)
	assert.True(t, math.Abs(floats.Sum(dNO3dep)-(NO3dry+NO3wet)*31.0) < 1.0e-12)
}

// 1年分の窒素沈着量の分配のテスト
func Test_DistributeNdep(t *testing.T) {
	date := NewDate(2001, false, 1)

	mprec := []float64{42.0, 31.5, 55.0, 60.1, 88.8, 120.0, 135.5, 110.0, 95.3, 70.0, 52.2, 45.0}
	mwet := []float64{8, 7, 9, 10, 12, 14, 15, 13, 12, 10, 9, 8}
	dprec := make([]float64, 365)
	seed := int64(998877)
	PrDaily(mprec, dprec, mwet, date, &seed, true)

	mNH4dry := []float64{0.02, 0.02, 0.02, 0.02, 0.02, 0.02, 0.02, 0.02, 0.02, 0.02, 0.02, 0.02}
	mNO3dry := []float64{0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01}
	mNH4wet := []float64{0.05, 0.04, 0.05, 0.04, 0.05, 0.04, 0.05, 0.04, 0.05, 0.04, 0.05, 0.04}
	mNO3wet := []float64{0.03, 0.02, 0.03, 0.02, 0.03, 0.02, 0.03, 0.02, 0.03, 0.02, 0.03, 0.02}

	dNH4dep := make([]float64, 365)
	dNO3dep := make([]float64, 365)
	DistributeNdep(mNH4dry, mNO3dry, mNH4wet, mNO3wet, dprec, dNH4dep, dNO3dep, date)

	start := 0
	for m := 0; m < 12; m++ {
		n := date.Ndaymonth[m]
		assert.True(t, math.Abs(floats.Sum(dNH4dep[start:start+n])-(mNH4dry[m]+mNH4wet[m])*float64(n)) < 1.0e-10)
		assert.True(t, math.Abs(floats.Sum(dNO3dep[start:start+n])-(mNO3dry[m]+mNO3wet[m])*float64(n)) < 1.0e-10)
		start += n
	}
}
