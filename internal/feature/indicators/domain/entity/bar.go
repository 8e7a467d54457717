// Package entity defines the domain models for the indicators feature.
package entity

import "github.com/shopspring/decimal"

// DailyBar represents one instrument's OHLCV record for a single trading day.
// Optional fields are nil when the upstream feed did not report a value;
// nil is distinct from zero and must be preserved as such.
type DailyBar struct {
	TSCode    string           `json:"ts_code"`    // Instrument code (e.g. "000001.SZ")
	TradeDate string           `json:"trade_date"` // Trade date in YYYYMMDD format
	Open      *decimal.Decimal `json:"open"`       // Opening price
	High      *decimal.Decimal `json:"high"`       // Highest price
	Low       *decimal.Decimal `json:"low"`        // Lowest price
	Close     *decimal.Decimal `json:"close"`      // Closing price
	PreClose  *decimal.Decimal `json:"pre_close"`  // Previous closing price
	Change    *decimal.Decimal `json:"change"`     // Change amount
	PctChg    *decimal.Decimal `json:"pct_chg"`    // Change percent
	Vol       *decimal.Decimal `json:"vol"`        // Volume (hands)
	Amount    *decimal.Decimal `json:"amount"`     // Amount (thousand CNY)
}

// EnrichedDailyBar is a DailyBar extended with derived technical indicators.
// Every derived field is nil where the indicator is undefined at that
// position (insufficient history, missing source values, or a broken
// Wilder smoothing chain).
//
// The named fields keep the original feed's fixed labels: they carry
// whatever windows were configured, so ATR14 holds a 7-day ATR when the
// ATR window is 7. MovingAverages exposes every configured MA window by
// its actual window size.
type EnrichedDailyBar struct {
	DailyBar

	AvgVol20   *decimal.Decimal `json:"avg_vol_20"`   // Trailing average volume (partial window at series start)
	VolRatio20 *decimal.Decimal `json:"vol_ratio_20"` // Vol / AvgVol20
	MA20       *decimal.Decimal `json:"ma20"`         // Simple moving average of Close, window 20
	MA60       *decimal.Decimal `json:"ma60"`         // Simple moving average of Close, window 60
	ATR14      *decimal.Decimal `json:"atr14"`        // Average true range
	PrevHigh20 *decimal.Decimal `json:"prev_high_20"` // Highest High over the prior window, current bar excluded
	PrevLow20  *decimal.Decimal `json:"prev_low_20"`  // Lowest Low over the prior window, current bar excluded

	// MovingAverages holds the SMA series value for every configured
	// window, keyed by window size. Windows 20 and 60 are mirrored into
	// MA20/MA60 when configured.
	MovingAverages map[int]*decimal.Decimal `json:"ma,omitempty"`
}
