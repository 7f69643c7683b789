package vegclimate

// 一様乱数の生成
//
// 0以上1未満の一様乱数を返します。引数 seed は呼び出しのたびに更新されます。
// 同じ初期値の seed からは常に同じ乱数列が得られるため、
// 初期シード値のみで再現性が決まります。
//
// Reference: Park & Miller 1988 CACM 31: 1192
func RandFrac(seed *int64) float64 {

	const modulus = 2147483647
	const fmodulus = float64(modulus)
	const multiplier = 16807
	const q = 127773
	const r = 2836

	*seed = multiplier*(*seed%q) - r*(*seed/q)
	if *seed == 0 {
		// 万一 0 になった場合は 1 に補正
		*seed = 1
	} else if *seed < 0 {
		*seed += modulus
	}
	return float64(*seed) / fmodulus
}
