package vegclimate

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
)

// 微小値の判定に使うしきい値
const insignificant = 1.0e-30

// 実質的にゼロとみなせる値かどうか
func negligible(x float64) bool {
	return math.Abs(x) < insignificant
}

// 不正な入力を検出した場合に実行を中断します。
// 強制データが壊れている場合に黙って補正せず、メッセージ付きで停止します。
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger := logging.GetLogger("vegclimate")
	logger.Errorf("%s", msg)
	panic(msg)
}
