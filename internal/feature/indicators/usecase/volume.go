package usecase

import "github.com/shopspring/decimal"

// rollingVolumeAverage は各位置の平均出来高を計算します。
//
// 窓は [max(0, i-window+1), i] の末尾追従型で、系列の先頭では部分窓になります
// （初日でも自身1本の平均が得られる）。窓内の非nilの出来高のみを平均し、
// 窓内がすべて欠損の場合に限り nil を返します。
// 移動平均（moving_average.go）とは逆のポリシーであることに注意：
// 量能判定は初日から機能させたいため、部分窓でも値を返します。
func rollingVolumeAverage(vols []*decimal.Decimal, window int) []*decimal.Decimal {
	result := make([]*decimal.Decimal, len(vols))
	for i := range vols {
		start := i - window + 1
		if start < 0 {
			start = 0
		}

		sum := decimal.Zero
		count := 0
		for _, v := range vols[start : i+1] {
			if v == nil {
				continue
			}
			sum = sum.Add(*v)
			count++
		}
		if count > 0 {
			avg := sum.Div(decimal.NewFromInt(int64(count)))
			result[i] = &avg
		}
	}
	return result
}

// volumeRatios は量能倍数（当日出来高 ÷ 平均出来高）を計算します。
// 出来高と平均の両方が存在し、かつ平均が正の場合のみ値を返します。
func volumeRatios(vols, avgVols []*decimal.Decimal) []*decimal.Decimal {
	result := make([]*decimal.Decimal, len(vols))
	for i, v := range vols {
		avg := avgVols[i]
		if v == nil || avg == nil || !avg.IsPositive() {
			continue
		}
		ratio := v.Div(*avg)
		result[i] = &ratio
	}
	return result
}
