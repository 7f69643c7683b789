package vegclimate

import (
	"gonum.org/v1/gonum/stat"
)

// 固定容量のリングバッファ
//
// 直近 capacity 個の値を保持し、平均や末尾 n 個の部分和を計算します。
// 気温・降水量・蒸発散量の31日移動平均や、月平均値の20年履歴に使用します。
type Historic struct {
	data    []float64
	current int //次に書き込む位置
	full    bool
}

// 容量 capacity のリングバッファを作成します。
func NewHistoric(capacity int) *Historic {
	if capacity <= 0 {
		Fail("NewHistoric: invalid capacity %d", capacity)
	}
	return &Historic{
		data: make([]float64, 0, capacity),
	}
}

// 容量
func (h *Historic) Capacity() int {
	return cap(h.data)
}

// 現在保持している値の数
func (h *Historic) Size() int {
	return len(h.data)
}

// 容量まで値が埋まっているかどうか
func (h *Historic) Full() bool {
	return h.full
}

// 値を追加します。容量を超えた場合は最も古い値を上書きします。
func (h *Historic) Add(v float64) {
	if !h.full {
		h.data = append(h.data, v)
		if len(h.data) == cap(h.data) {
			h.full = true
		}
		h.current = len(h.data) % cap(h.data)
		return
	}
	h.data[h.current] = v
	h.current = (h.current + 1) % cap(h.data)
}

// 保持している値全体の平均
func (h *Historic) Mean() float64 {
	if len(h.data) == 0 {
		return 0.0
	}
	return stat.Mean(h.data, nil)
}

// 保持している値全体の合計
func (h *Historic) Sum() float64 {
	sum := 0.0
	for _, v := range h.data {
		sum += v
	}
	return sum
}

// 直近に追加した n 個の値の合計 (n <= Size)
func (h *Historic) PeriodicSum(n int) float64 {
	if n > len(h.data) {
		n = len(h.data)
	}
	sum := 0.0
	idx := h.current
	for i := 0; i < n; i++ {
		idx--
		if idx < 0 {
			idx = len(h.data) - 1
		}
		sum += h.data[idx]
	}
	return sum
}

// 直近に追加した n 個の値の平均 (n <= Size)
func (h *Historic) PeriodicMean(n int) float64 {
	if n > len(h.data) {
		n = len(h.data)
	}
	if n == 0 {
		return 0.0
	}
	return h.PeriodicSum(n) / float64(n)
}

// 最後に追加した値
func (h *Historic) LastAdded() float64 {
	if len(h.data) == 0 {
		return 0.0
	}
	idx := h.current - 1
	if idx < 0 {
		idx = len(h.data) - 1
	}
	return h.data[idx]
}
