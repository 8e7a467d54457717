// Package usecase は日足データから派生テクニカル指標を計算するビジネスロジックを実装します。
//
// 指標ごとに独立したパス（窓スキャン）を同一のソート済み入力に対して実行し、
// 位置を揃えた列（カラム）として計算した後、1レコードずつまとめて返します。
// 欠損値はエラーにせず、各パスのポリシーに従って nil として伝播します。
package usecase

import (
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"stock_indicators/internal/feature/indicators/domain"
	"stock_indicators/internal/feature/indicators/domain/entity"
)

// IndicatorsUsecase は日足データの指標計算ユースケースを定義します。
// 状態を持たない純粋な変換で、同一入力・同一設定に対して常に同一の結果を返します。
type IndicatorsUsecase struct{}

// NewIndicatorsUsecase はIndicatorsUsecaseの新しいインスタンスを生成します。
func NewIndicatorsUsecase() *IndicatorsUsecase {
	return &IndicatorsUsecase{}
}

// Calculate は日足データからテクニカル指標を計算し、増強された日足データを返します。
//
// 入力はTradeDate昇順（古→新）に自動でソートされ、出力もその順序になります。
// 入力が空の場合は domain.ErrEmptyInput、ATRMethodが未知の場合は
// domain.ErrUnsupportedATRMethod を返し、いずれも部分的な結果は返しません。
// それ以外の欠損はエラーにならず、該当位置の派生フィールドが nil になります。
func (iu *IndicatorsUsecase) Calculate(bars []entity.DailyBar, opts Options) ([]entity.EnrichedDailyBar, error) {
	if len(bars) == 0 {
		return nil, domain.ErrEmptyInput
	}
	opts = opts.normalize()

	sorted := sortByTradeDate(bars)
	slog.Info("calculating indicators",
		"count", len(sorted),
		"from", sorted[0].TradeDate,
		"to", sorted[len(sorted)-1].TradeDate,
	)

	// 基礎データを列として抽出
	highs := make([]*decimal.Decimal, len(sorted))
	lows := make([]*decimal.Decimal, len(sorted))
	closes := make([]*decimal.Decimal, len(sorted))
	vols := make([]*decimal.Decimal, len(sorted))
	for i, b := range sorted {
		highs[i], lows[i], closes[i], vols[i] = b.High, b.Low, b.Close, b.Vol
	}

	// 各パスは生の列のみに依存し、互いの結果には依存しない
	avgVols := rollingVolumeAverage(vols, opts.VolWindow)
	volRatios := volumeRatios(vols, avgVols)
	mas := make(map[int][]*decimal.Decimal, len(opts.MAWindows))
	for _, w := range opts.MAWindows {
		mas[w] = movingAverage(closes, w)
	}
	atrs, err := averageTrueRange(highs, lows, closes, opts.ATRWindow, opts.ATRMethod)
	if err != nil {
		return nil, err
	}
	prevHighs := priorExtremes(highs, opts.PrevHLWindow, true)
	prevLows := priorExtremes(lows, opts.PrevHLWindow, false)

	// 組み立て：元のレコードと派生列を位置ごとに結合する
	enriched := make([]entity.EnrichedDailyBar, len(sorted))
	for i, b := range sorted {
		e := entity.EnrichedDailyBar{
			DailyBar:       b,
			AvgVol20:       avgVols[i],
			VolRatio20:     volRatios[i],
			ATR14:          atrs[i],
			PrevHigh20:     prevHighs[i],
			PrevLow20:      prevLows[i],
			MovingAverages: make(map[int]*decimal.Decimal, len(mas)),
		}
		for w, col := range mas {
			e.MovingAverages[w] = col[i]
		}
		// 窓幅20と60は固定の名前付きフィールドにも反映する
		if col, ok := mas[20]; ok {
			e.MA20 = col[i]
		}
		if col, ok := mas[60]; ok {
			e.MA60 = col[i]
		}
		enriched[i] = e
	}

	slog.Info("indicators calculated", "count", len(enriched))
	return enriched, nil
}

// sortByTradeDate はTradeDate昇順に安定ソートしたコピーを返します。
// TradeDateは文字列として比較します。YYYYMMDD形式であれば辞書順と時系列順が
// 一致します。不正な日付文字列は検証せず、文字列比較の位置にそのまま並びます。
func sortByTradeDate(bars []entity.DailyBar) []entity.DailyBar {
	sorted := make([]entity.DailyBar, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TradeDate < sorted[j].TradeDate
	})
	return sorted
}

// completeWindowMean は窓内の値がすべて非nilの場合のみ算術平均を返します。
// 1つでも欠損があれば nil を返します（all-or-nothing方式）。
func completeWindowMean(window []*decimal.Decimal) *decimal.Decimal {
	sum := decimal.Zero
	for _, v := range window {
		if v == nil {
			return nil
		}
		sum = sum.Add(*v)
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(window))))
	return &mean
}
