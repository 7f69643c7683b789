package vegclimate

// 空間・生物オブジェクトモデルの最小限の協力オブジェクト
//
// 本コアはこれらのオブジェクトの数値フィールドを読み書きしますが、
// ライフサイクルや構造は所有しません(フレームワーク側の責務)。

// 植物機能型 (PFT) のパラメータ
type Pft struct {
	Name     string
	KmVolume float64 //Michaelis-Menten の Km の体積基準値
}

// グリッドセルごとの PFT 派生値
type GridcellPft struct {
	Km float64 //Michaelis-Menten の Km (土壌の保水量に依存)
}

// 土壌型パラメータ
type Soiltype struct {
	Wtot float64 //全有効保水量 [mm]
}

// パッチの土壌状態
type Soil struct {
	Temp25 float64 //深さ25cmの土壌温度 [℃] (フレームワークが毎日設定)
	Gtemp  float64 //土壌呼吸の温度応答係数

	Anfix      float64 //年窒素固定量
	AorgNleach float64 //年有機態窒素溶脱量
	AorgCleach float64 //年有機態炭素溶脱量
	Aminleach  float64 //年無機態窒素溶脱量
}

// パッチの炭素・窒素フラックスの年積算値
type Fluxes struct {
	Npp   float64
	Rh    float64
	Nep   float64
	Nmin  float64
}

// 年初にフラックス積算値をゼロに戻します。
func (f *Fluxes) Reset() {
	*f = Fluxes{}
}

// 植生個体 (本コアが参照するフィールドのみ)
type Individual struct {
	Fpc float64 //葉群被覆率
}

// パッチ (撹乱・継承の単位)
type Patch struct {
	Soil       Soil
	Fluxes     Fluxes
	Vegetation []Individual

	Aaet      float64 //年実蒸発散量 [mm]
	Aintercep float64 //年遮断蒸発量 [mm]
	Apet      float64 //年可能蒸発散量 [mm]

	Maet      [12]float64 //月実蒸発散量 [mm]
	Mintercep [12]float64 //月遮断蒸発量 [mm]
	Mpet      [12]float64 //月可能蒸発散量 [mm]

	FpcTotal   float64 //全個体のFPC合計
	FpcRescale float64 //FPC重複の補正係数
}

// スタンド (同一の土地利用履歴を持つパッチの集合)
type Stand struct {
	Patches []*Patch
}

// グリッドセル (空間単位)
type Gridcell struct {
	Climate  *Climate
	Soiltype Soiltype
	Stands   []*Stand
	Pfts     []GridcellPft //PFTごとの派生値 (PFTレジストリと同じ並び)

	DNH4dep float64 //日NH4沈着量
	DNO3dep float64 //日NO3沈着量
	ANH4dep float64 //年NH4沈着量
	ANO3dep float64 //年NO3沈着量
}

// 緯度 lat のグリッドセルを作成します。
// pftlist は PFT レジストリで、PFT ごとの派生値の格納領域を確保します。
func NewGridcell(lat float64, instype InsolType, soiltype Soiltype, pftlist []Pft) *Gridcell {
	gc := &Gridcell{
		Climate:  NewClimate(lat, instype),
		Soiltype: soiltype,
		Pfts:     make([]GridcellPft, len(pftlist)),
	}
	return gc
}
