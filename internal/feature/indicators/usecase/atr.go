package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"stock_indicators/internal/feature/indicators/domain"
)

// trueRanges は各営業日のトゥルーレンジ（TR）を計算します。
//
//   - high / low / close のいずれかが欠損：TR = nil
//   - 前日終値なし（先頭、または前日closeが欠損）：TR = high - low
//   - それ以外：TR = max(high-low, |high-prevClose|, |low-prevClose|)
//
// prevClose は常に1本前の close であり、前日のTRが計算できたかどうかには
// 依存しません。
func trueRanges(highs, lows, closes []*decimal.Decimal) []*decimal.Decimal {
	trs := make([]*decimal.Decimal, len(highs))
	for i := range highs {
		high, low, cls := highs[i], lows[i], closes[i]
		if high == nil || low == nil || cls == nil {
			continue
		}

		var prevClose *decimal.Decimal
		if i > 0 {
			prevClose = closes[i-1]
		}

		var tr decimal.Decimal
		if prevClose == nil {
			tr = high.Sub(*low)
		} else {
			tr = decimal.Max(
				high.Sub(*low),
				high.Sub(*prevClose).Abs(),
				low.Sub(*prevClose).Abs(),
			)
		}
		trs[i] = &tr
	}
	return trs
}

// averageTrueRange はOHLC列からATR系列を導出します。
// 未知のmethodの場合は domain.ErrUnsupportedATRMethod を返します。
func averageTrueRange(highs, lows, closes []*decimal.Decimal, window int, method ATRMethod) ([]*decimal.Decimal, error) {
	trs := trueRanges(highs, lows, closes)

	switch method {
	case ATRMethodSMA:
		// TRの単純移動平均。移動平均と同じ all-or-nothing 方式。
		return movingAverage(trs, window), nil
	case ATRMethodWilder:
		return wilderATR(trs, window), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedATRMethod, method)
	}
}

// wilderState はWilder平滑化の再帰フィルタの累積状態です。
// 1営業日ごとに1ステップ進みます。TRの欠損または無効な累積値でステップすると
// チェーンは切れ、valid は false のままになります。エンジンは再シードしない
// ため、系列途中の欠損は以降のすべての値を恒久的に nil にします。
type wilderState struct {
	atr   decimal.Decimal
	valid bool
}

// seed は先頭窓のSMAで累積値を初期化します。
func (w *wilderState) seed(atr decimal.Decimal) {
	w.atr = atr
	w.valid = true
}

// step はフィルタを1ステップ進めます：ATR = (prevATR*(window-1) + tr) / window。
// tr が nil、または累積値が無効な場合は nil を返し、累積値を無効化します。
func (w *wilderState) step(tr *decimal.Decimal, window int) *decimal.Decimal {
	if tr == nil || !w.valid {
		w.valid = false
		return nil
	}
	k := decimal.NewFromInt(int64(window))
	w.atr = w.atr.Mul(k.Sub(decimal.NewFromInt(1))).Add(*tr).Div(k)
	v := w.atr
	return &v
}

// wilderATR はWilderの指数平滑でATR系列を計算します。
// 位置 window-1 でTRのSMA（先頭窓が完全な場合のみ）をシードとし、
// 以降は wilderState を1本ずつ進めます。
func wilderATR(trs []*decimal.Decimal, window int) []*decimal.Decimal {
	result := make([]*decimal.Decimal, len(trs))
	var state wilderState

	for i := range trs {
		switch {
		case i < window-1:
			// 履歴不足
		case i == window-1:
			if seed := completeWindowMean(trs[:window]); seed != nil {
				state.seed(*seed)
				result[i] = seed
			}
		default:
			result[i] = state.step(trs[i], window)
		}
	}
	return result
}
