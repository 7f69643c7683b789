package vegclimate

import (
	"bytes"
	"sort"
	"strconv"
	"time"
)

// 生成された日別強制データ
type ForcingTarget struct {
	date []time.Time //1.シミュレーション日付

	Temp      []float64 //2.日平均気温 [℃]
	Prec      []float64 //3.日降水量 [mm]
	Insol     []float64 //4.日射量入力 (日照率 [%] またはフラックス [W/m2])
	Daylength []float64 //5.日長 [h]
	Rad       []float64 //6.正味下向き短波放射量 [J/m2/day]
	PAR       []float64 //7.光合成有効放射量 [J/m2/day]
	EET       []float64 //8.平衡蒸発散量 [mm/day]
	Gtemp     []float64 //9.呼吸の温度応答係数
	DNH4dep   []float64 //10.日NH4沈着量
	DNO3dep   []float64 //11.日NO3沈着量

	Annual []AnnualSummary //年ごとの集計値
}

// 年ごとの集計値
type AnnualSummary struct {
	CalendarYear int     //暦年
	Agdd0        float64 //年GDD0積算値
	Agdd5        float64 //年GDD5積算値
	Aprec        float64 //年降水量 [mm]
	AtempMean    float64 //直近12か月の平均気温 [℃]
	MtempMin20   float64 //月平均気温最小値の直近20年平均 [℃]
	MtempMax20   float64 //月平均気温最大値の直近20年平均 [℃]
	Chilldays    int     //低温日数
}

// 保持している日数
func (df *ForcingTarget) Len() int {
	return len(df.date)
}

// 1日分の値を追加します。
func (df *ForcingTarget) appendDay(t time.Time, climate *Climate, dNH4dep float64, dNO3dep float64) {
	df.date = append(df.date, t)
	df.Temp = append(df.Temp, climate.Temp)
	df.Prec = append(df.Prec, climate.Prec)
	df.Insol = append(df.Insol, climate.Insol)
	df.Daylength = append(df.Daylength, climate.Daylength)
	df.Rad = append(df.Rad, climate.Rad)
	df.PAR = append(df.PAR, climate.PAR)
	df.EET = append(df.EET, climate.EET)
	df.Gtemp = append(df.Gtemp, climate.Gtemp)
	df.DNH4dep = append(df.DNH4dep, dNH4dep)
	df.DNO3dep = append(df.DNO3dep, dNO3dep)
}

// 開始日時 start_time から 終了日時 end_time までのデータを抜き出して
// 新しい構造体を作成します。
func (df *ForcingTarget) Extract(start_time time.Time, end_time time.Time) *ForcingTarget {
	start_index := sort.Search(len(df.date), func(i int) bool {
		return df.date[i].After(start_time) || df.date[i].Equal(start_time)
	})
	end_index := sort.Search(len(df.date), func(i int) bool {
		return df.date[i].After(end_time)
	})
	return &ForcingTarget{
		date:      append([]time.Time{}, df.date[start_index:end_index]...),
		Temp:      append([]float64{}, df.Temp[start_index:end_index]...),
		Prec:      append([]float64{}, df.Prec[start_index:end_index]...),
		Insol:     append([]float64{}, df.Insol[start_index:end_index]...),
		Daylength: append([]float64{}, df.Daylength[start_index:end_index]...),
		Rad:       append([]float64{}, df.Rad[start_index:end_index]...),
		PAR:       append([]float64{}, df.PAR[start_index:end_index]...),
		EET:       append([]float64{}, df.EET[start_index:end_index]...),
		Gtemp:     append([]float64{}, df.Gtemp[start_index:end_index]...),
		DNH4dep:   append([]float64{}, df.DNH4dep[start_index:end_index]...),
		DNO3dep:   append([]float64{}, df.DNO3dep[start_index:end_index]...),
	}
}

// CSV形式で日別データを書き出します。
func (df *ForcingTarget) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("date")
	buf.WriteString(",TEMP")
	buf.WriteString(",PREC")
	buf.WriteString(",INSOL")
	buf.WriteString(",DAYLENGTH")
	buf.WriteString(",RAD")
	buf.WriteString(",PAR")
	buf.WriteString(",EET")
	buf.WriteString(",GTEMP")
	buf.WriteString(",NH4DEP")
	buf.WriteString(",NO3DEP")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < len(df.date); i++ {
		buf.WriteString(df.date[i].Format("2006-01-02"))
		writeFloat(df.Temp[i])
		writeFloat(df.Prec[i])
		writeFloat(df.Insol[i])
		writeFloat(df.Daylength[i])
		writeFloat(df.Rad[i])
		writeFloat(df.PAR[i])
		writeFloat(df.EET[i])
		writeFloat(df.Gtemp[i])
		writeFloat(df.DNH4dep[i])
		writeFloat(df.DNO3dep[i])
		buf.WriteString("\n")
	}
}

// CSV形式で年ごとの集計値を書き出します。
func (df *ForcingTarget) ToAnnualCSV(buf *bytes.Buffer) {
	buf.WriteString("year,AGDD0,AGDD5,APREC,ATEMP_MEAN,MTEMP_MIN20,MTEMP_MAX20,CHILLDAYS\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < len(df.Annual); i++ {
		a := &df.Annual[i]
		buf.WriteString(strconv.Itoa(a.CalendarYear))
		writeFloat(a.Agdd0)
		writeFloat(a.Agdd5)
		writeFloat(a.Aprec)
		writeFloat(a.AtempMean)
		writeFloat(a.MtempMin20)
		writeFloat(a.MtempMax20)
		buf.WriteString(",")
		buf.WriteString(strconv.Itoa(a.Chilldays))
		buf.WriteString("\n")
	}
}
