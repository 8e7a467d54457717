package usecase

import "github.com/shopspring/decimal"

// priorExtremes は前N日の最高値（isHigh=true）または最安値を計算します。
//
// 窓は [max(0, i-window), i) で、上端は排他的、つまり当日のバーは決して
// 含まれません。先頭（i=0）は前値が存在しないため常に nil です。
// 窓内の非nilの値から最大・最小を取り、すべて欠損の場合は nil になります。
func priorExtremes(prices []*decimal.Decimal, window int, isHigh bool) []*decimal.Decimal {
	result := make([]*decimal.Decimal, len(prices))
	for i := range prices {
		if i == 0 {
			continue
		}
		start := i - window
		if start < 0 {
			start = 0
		}

		var best *decimal.Decimal
		for _, p := range prices[start:i] {
			if p == nil {
				continue
			}
			if best == nil || (isHigh && p.GreaterThan(*best)) || (!isHigh && p.LessThan(*best)) {
				v := *p
				best = &v
			}
		}
		result[i] = best
	}
	return result
}
