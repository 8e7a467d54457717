package usecase

import "github.com/shopspring/decimal"

// movingAverage は単純移動平均（SMA）を計算します。
//
// 平均出来高と異なり all-or-nothing 方式です：位置が window-1 未満の場合、
// および窓内に1つでも欠損がある場合は nil になります。サンプル数が足りない
// 価格トレンドは誤解を招くため、部分平均は行いません。
func movingAverage(prices []*decimal.Decimal, window int) []*decimal.Decimal {
	result := make([]*decimal.Decimal, len(prices))
	for i := range prices {
		if i < window-1 {
			continue
		}
		result[i] = completeWindowMean(prices[i-window+1 : i+1])
	}
	return result
}
