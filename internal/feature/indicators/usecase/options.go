package usecase

// ATRMethod はトゥルーレンジ系列に適用する平滑化方式を表します。
type ATRMethod string

const (
	// ATRMethodSMA はトゥルーレンジの単純移動平均でATRを計算します。
	ATRMethodSMA ATRMethod = "sma"
	// ATRMethodWilder はWilderの指数平滑（重み 1/K）でATRを計算します。
	ATRMethodWilder ATRMethod = "wilder"
)

const (
	// DefaultVolWindow は平均出来高のデフォルト窓幅です。
	DefaultVolWindow = 20
	// DefaultATRWindow はATRのデフォルト窓幅です。
	DefaultATRWindow = 14
	// DefaultPrevHLWindow は前N日高値・安値のデフォルト窓幅です。
	DefaultPrevHLWindow = 20
)

// DefaultMAWindows は移動平均のデフォルト窓幅のリストです。
var DefaultMAWindows = []int{20, 60}

// Options は指標計算のパラメータを保持します。
// ゼロ値のフィールドは計算時にデフォルト値へ正規化されます。
type Options struct {
	MAWindows    []int     // 移動平均の窓幅リスト
	VolWindow    int       // 平均出来高の窓幅
	ATRWindow    int       // ATRの窓幅
	ATRMethod    ATRMethod // ATRの平滑化方式（"sma" | "wilder"）
	PrevHLWindow int       // 前N日高値・安値の窓幅
}

// DefaultOptions はデフォルト設定のOptionsを返します。
func DefaultOptions() Options {
	return Options{
		MAWindows:    append([]int(nil), DefaultMAWindows...),
		VolWindow:    DefaultVolWindow,
		ATRWindow:    DefaultATRWindow,
		ATRMethod:    ATRMethodSMA,
		PrevHLWindow: DefaultPrevHLWindow,
	}
}

// normalize はゼロ値のフィールドをデフォルト値で埋めたコピーを返します。
// 空でない未知のATRMethodはここでは補正されず、計算時にエラーになります。
func (o Options) normalize() Options {
	if len(o.MAWindows) == 0 {
		o.MAWindows = append([]int(nil), DefaultMAWindows...)
	}
	if o.VolWindow <= 0 {
		o.VolWindow = DefaultVolWindow
	}
	if o.ATRWindow <= 0 {
		o.ATRWindow = DefaultATRWindow
	}
	if o.PrevHLWindow <= 0 {
		o.PrevHLWindow = DefaultPrevHLWindow
	}
	if o.ATRMethod == "" {
		o.ATRMethod = ATRMethodSMA
	}
	return o
}
