package vegclimate

import (
	"time"
)

// 1年の最大日数(閏年)
const MaxYearLength = 366

// シミュレーション暦
//
// 1日単位でシミュレーション時刻を進めるカレンダーです。
// Day は通算日(0始まり、1月1日=0)、Month は月番号(0始まり)、
// Year はシミュレーション開始からの年番号(0始まり)を表します。
// 閏年を考慮する場合は各月の日数 Ndaymonth と年の長さが年ごとに変わります。
type Date struct {
	Day        int //通算日 (0-364 または 0-365、1月1日=0)
	Dayofmonth int //月内の日番号 (0始まり)
	Month      int //月番号 (0始まり、1月=0)
	Year       int //シミュレーション年番号 (0始まり)
	Subdaily   int //1日あたりのサブステップ数 (日単位のみの場合は1)

	Ndaymonth [12]int //今年の各月の日数 (閏年考慮)

	firstCalendarYear int  //シミュレーション開始の暦年
	useLeapYears      bool //閏年を考慮するかどうか
}

// 平年の各月の日数
var ndaymonthNormal = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// 新しいカレンダーを作成します。
// first_calendar_year はシミュレーション開始の暦年、
// use_leap_years が true の場合は閏年を考慮します。
// subdaily は1日あたりのサブステップ数です (0 または 1 で日単位)。
func NewDate(first_calendar_year int, use_leap_years bool, subdaily int) *Date {
	if subdaily < 1 {
		subdaily = 1
	}
	d := &Date{
		Subdaily:          subdaily,
		firstCalendarYear: first_calendar_year,
		useLeapYears:      use_leap_years,
	}
	d.updateNdaymonth()
	return d
}

// 暦年(グレゴリオ暦)
func (d *Date) CalendarYear() int {
	return d.firstCalendarYear + d.Year
}

// 閏年判定(グレゴリオ暦)
func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func (d *Date) updateNdaymonth() {
	d.Ndaymonth = ndaymonthNormal
	if d.useLeapYears && isLeapYear(d.CalendarYear()) {
		d.Ndaymonth[1] = 29
	}
}

// 今年の日数 (365 または 366)
func (d *Date) YearLength() int {
	if d.useLeapYears && isLeapYear(d.CalendarYear()) {
		return 366
	}
	return 365
}

// 月の最初の日かどうか
func (d *Date) IsFirstDay() bool {
	return d.Dayofmonth == 0
}

// 月の最後の日かどうか
func (d *Date) IsLastDay() bool {
	return d.Dayofmonth == d.Ndaymonth[d.Month]-1
}

// 12月かどうか (年の最後の月)
func (d *Date) IsLastMonth() bool {
	return d.Month == 11
}

// サブデイリーモードかどうか
func (d *Date) Diurnal() bool {
	return d.Subdaily > 1
}

// 時刻を1日進めます。12月31日の翌日は翌年の1月1日になります。
func (d *Date) Next() {
	if d.IsLastDay() {
		if d.IsLastMonth() {
			d.Day = 0
			d.Dayofmonth = 0
			d.Month = 0
			d.Year++
			d.updateNdaymonth()
			return
		}
		d.Day++
		d.Dayofmonth = 0
		d.Month++
		return
	}
	d.Day++
	d.Dayofmonth++
}

// 現在のシミュレーション時刻を time.Time に変換します。
func (d *Date) Time() time.Time {
	return time.Date(d.CalendarYear(), time.Month(d.Month+1), d.Dayofmonth+1, 0, 0, 0, 0, time.UTC)
}
