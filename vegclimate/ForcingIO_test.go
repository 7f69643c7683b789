package vegclimate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeNormalsFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "normals.csv")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

// 月別気候値ファイルの読み込みのテスト
func Test_LoadMonthlyNormals(t *testing.T) {
	path := writeNormalsFile(t,
		"# 月別気候値のサンプル\n"+
			"mtemp,-5.2,-3.1,1.0,6.3,12.0,16.5,18.9,17.4,12.2,6.1,0.4,-4.0\n"+
			"mprec,42.0,31.5,55.0,60.1,88.8,120.0,135.5,110.0,95.3,70.0,52.2,45.0\n"+
			"mwet,8,7,9,10,12,14,15,13,12,10,9,8\n"+
			"MINSOL, 30,35,40,45,50,45,50,55,45,40,35,30\n"+
			"mnh4wet,0.05,0.05,0.05,0.05,0.05,0.05,0.05,0.05,0.05,0.05,0.05,0.05\n")

	norm := LoadMonthlyNormals(path)

	assert.InDelta(t, -5.2, norm.Mtemp[0], 1.0e-12)
	assert.InDelta(t, 45.0, norm.Mprec[11], 1.0e-12)
	assert.InDelta(t, 15.0, norm.Mwet[6], 1.0e-12)

	// 変数名の大文字小文字と値の前後の空白は無視される
	assert.InDelta(t, 30.0, norm.Minsol[0], 1.0e-12)

	assert.InDelta(t, 0.05, norm.MNH4wet[5], 1.0e-12)

	// 省略可能な沈着量の行は既定値0
	assert.Equal(t, 0.0, norm.MNH4dry[0])
	assert.Equal(t, 0.0, norm.MNO3dry[0])
}

// 必須の行が欠けている場合は停止する
func Test_LoadMonthlyNormals_missing_required(t *testing.T) {
	path := writeNormalsFile(t,
		"mtemp,-5,-3,1,6,12,16,19,17,12,6,0,-4\n"+
			"mprec,42,31,55,60,88,120,135,110,95,70,52,45\n"+
			"minsol,30,35,40,45,50,45,50,55,45,40,35,30\n") //mwet がない

	assert.Panics(t, func() {
		LoadMonthlyNormals(path)
	})
}

// 不正な形式の入力に対して停止する
func Test_LoadMonthlyNormals_invalid(t *testing.T) {
	// 未知の変数名
	path := writeNormalsFile(t, "mfoo,1,2,3,4,5,6,7,8,9,10,11,12\n")
	assert.Panics(t, func() {
		LoadMonthlyNormals(path)
	})

	// 列数の不足 (12か月分に満たない)
	path = writeNormalsFile(t, "mtemp,1,2,3\n")
	assert.Panics(t, func() {
		LoadMonthlyNormals(path)
	})

	// 数値として解釈できない値
	path = writeNormalsFile(t, "mtemp,1,2,3,4,5,x,7,8,9,10,11,12\n")
	assert.Panics(t, func() {
		LoadMonthlyNormals(path)
	})

	// 存在しないファイル
	assert.Panics(t, func() {
		LoadMonthlyNormals(filepath.Join(t.TempDir(), "no_such_file.csv"))
	})
}
