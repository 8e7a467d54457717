package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"stock_indicators/internal/feature/indicators/domain/entity"
	"stock_indicators/internal/feature/indicators/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		input        string
		maWindows    []int
		volWindow    int
		atrWindow    int
		atrMethod    string
		prevHLWindow int
	)

	cmd := &cobra.Command{
		Use:   "indicators",
		Short: "Calculate technical indicators from daily bar data",
		Long: `Reads a JSON array of daily OHLCV bars, derives technical indicators
(average volume, volume ratio, moving averages, ATR, prior high/low)
and prints a report for the latest bar plus a volume-surge scan.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bars, err := loadBars(input)
			if err != nil {
				return err
			}

			uc := usecase.NewIndicatorsUsecase()
			enriched, err := uc.Calculate(bars, usecase.Options{
				MAWindows:    maWindows,
				VolWindow:    volWindow,
				ATRWindow:    atrWindow,
				ATRMethod:    usecase.ATRMethod(atrMethod),
				PrevHLWindow: prevHLWindow,
			})
			if err != nil {
				return err
			}

			printLatest(cmd, enriched)
			printVolumeSurges(cmd, enriched)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "path to a JSON file with daily bars (required)")
	cmd.Flags().IntSliceVar(&maWindows, "ma-windows", usecase.DefaultMAWindows, "moving average windows")
	cmd.Flags().IntVar(&volWindow, "vol-window", usecase.DefaultVolWindow, "average volume window")
	cmd.Flags().IntVar(&atrWindow, "atr-window", usecase.DefaultATRWindow, "ATR window")
	cmd.Flags().StringVar(&atrMethod, "atr-method", string(usecase.ATRMethodSMA), `ATR smoothing method ("sma" or "wilder")`)
	cmd.Flags().IntVar(&prevHLWindow, "prev-hl-window", usecase.DefaultPrevHLWindow, "prior high/low window")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// loadBars は日足データのJSONファイルを読み込みます。
func loadBars(path string) ([]entity.DailyBar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	var bars []entity.DailyBar
	if err := json.Unmarshal(data, &bars); err != nil {
		return nil, fmt.Errorf("failed to parse input file: %w", err)
	}
	return bars, nil
}

// printLatest は最新バーの指標レポートを出力します。
func printLatest(cmd *cobra.Command, enriched []entity.EnrichedDailyBar) {
	latest := enriched[len(enriched)-1]

	cmd.Printf("%s latest bar (%s)\n", latest.TSCode, latest.TradeDate)
	cmd.Printf("  close:       %s\n", fmtDec(latest.Close))
	cmd.Printf("  volume:      %s\n", fmtDec(latest.Vol))
	cmd.Printf("  avg volume:  %s\n", fmtDec(latest.AvgVol20))
	cmd.Printf("  vol ratio:   %s\n", fmtDec(latest.VolRatio20))
	cmd.Printf("  ma20:        %s\n", fmtDec(latest.MA20))
	cmd.Printf("  ma60:        %s\n", fmtDec(latest.MA60))
	cmd.Printf("  atr:         %s\n", fmtDec(latest.ATR14))
	cmd.Printf("  prev high:   %s\n", fmtDec(latest.PrevHigh20))
	cmd.Printf("  prev low:    %s\n", fmtDec(latest.PrevLow20))
}

// printVolumeSurges は直近10本から放量日（量能倍数 > 2）を抽出し、
// 前高ブレイクの有無と合わせて出力します。
func printVolumeSurges(cmd *cobra.Command, enriched []entity.EnrichedDailyBar) {
	start := len(enriched) - 10
	if start < 0 {
		start = 0
	}
	threshold := decimal.NewFromInt(2)

	cmd.Printf("\nvolume surges in the last %d bars (vol ratio > 2):\n", len(enriched)-start)
	found := false
	for _, e := range enriched[start:] {
		if e.VolRatio20 == nil || !e.VolRatio20.GreaterThan(threshold) {
			continue
		}
		found = true

		breakout := ""
		if e.PrevHigh20 != nil && e.Close != nil && e.Close.GreaterThan(*e.PrevHigh20) {
			breakout = "  [breaks prior high]"
		}
		cmd.Printf("  %s: vol ratio %sx, close %s%s\n",
			e.TradeDate, e.VolRatio20.StringFixed(2), fmtDec(e.Close), breakout)
	}
	if !found {
		cmd.Printf("  none\n")
	}
}

// fmtDec はnil許容のdecimalを表示用の文字列にします。
func fmtDec(d *decimal.Decimal) string {
	if d == nil {
		return "N/A"
	}
	return d.StringFixed(2)
}
