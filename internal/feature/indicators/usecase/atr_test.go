package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_indicators/internal/feature/indicators/domain"
)

// TestTrueRanges_FirstBar は先頭バーのTRが high - low になることを検証します。
func TestTrueRanges_FirstBar(t *testing.T) {
	t.Parallel()

	got := trueRanges(
		[]*decimal.Decimal{dp(10.5)},
		[]*decimal.Decimal{dp(9.8)},
		[]*decimal.Decimal{dp(10.2)},
	)

	require.NotNil(t, got[0])
	assert.True(t, got[0].Equal(decimal.NewFromFloat(0.7)), "got %s, want 0.7", got[0])
}

// TestTrueRanges_GapFromPrevClose は前日終値からのギャップがTRに反映される
// ことを検証します。
func TestTrueRanges_GapFromPrevClose(t *testing.T) {
	t.Parallel()

	highs := []*decimal.Decimal{dp(10.2), dp(11)}
	lows := []*decimal.Decimal{dp(9.8), dp(10.5)}
	closes := []*decimal.Decimal{dp(10), dp(10.8)}

	got := trueRanges(highs, lows, closes)

	// max(11-10.5, |11-10|, |10.5-10|) = 1
	require.NotNil(t, got[1])
	assert.True(t, got[1].Equal(decimal.NewFromInt(1)), "got %s, want 1", got[1])
}

// TestTrueRanges_MissingField はOHLCの欠損がTRを nil にし、
// 翌日のTRは前日TRではなく前日終値に依存することを検証します。
func TestTrueRanges_MissingField(t *testing.T) {
	t.Parallel()

	highs := []*decimal.Decimal{nil, dp(10.5)}
	lows := []*decimal.Decimal{dp(9.8), dp(10)}
	closes := []*decimal.Decimal{dp(10), dp(10.2)}

	got := trueRanges(highs, lows, closes)

	assert.Nil(t, got[0], "missing high makes TR nil")
	// 前日のTRが nil でも prevClose=10 は有効
	// max(10.5-10, |10.5-10|, |10-10|) = 0.5
	require.NotNil(t, got[1])
	assert.True(t, got[1].Equal(decimal.NewFromFloat(0.5)), "got %s, want 0.5", got[1])
}

// TestAverageTrueRange_MethodsShareSeed は位置 K-1 でSMA方式とWilder方式が
// 同一の値（共通のシード）を返すことを検証します。
func TestAverageTrueRange_MethodsShareSeed(t *testing.T) {
	t.Parallel()

	highs := []*decimal.Decimal{dp(11), dp(12), dp(13), dp(14)}
	lows := []*decimal.Decimal{dp(10), dp(11), dp(12), dp(13)}
	closes := []*decimal.Decimal{dp(10.5), dp(11.5), dp(12.5), dp(13.5)}
	const window = 3

	sma, err := averageTrueRange(highs, lows, closes, window, ATRMethodSMA)
	require.NoError(t, err)
	wilder, err := averageTrueRange(highs, lows, closes, window, ATRMethodWilder)
	require.NoError(t, err)

	for i := 0; i < window-1; i++ {
		assert.Nil(t, sma[i], "sma index %d", i)
		assert.Nil(t, wilder[i], "wilder index %d", i)
	}
	require.NotNil(t, sma[window-1])
	require.NotNil(t, wilder[window-1])
	assert.True(t, sma[window-1].Equal(*wilder[window-1]),
		"seed mismatch: sma=%s wilder=%s", sma[window-1], wilder[window-1])
}

// TestAverageTrueRange_UnsupportedMethod は未知の平滑化方式がエラーに
// なることを検証します。
func TestAverageTrueRange_UnsupportedMethod(t *testing.T) {
	t.Parallel()

	got, err := averageTrueRange(
		[]*decimal.Decimal{dp(11)},
		[]*decimal.Decimal{dp(10)},
		[]*decimal.Decimal{dp(10.5)},
		14,
		ATRMethod("ema"),
	)

	require.ErrorIs(t, err, domain.ErrUnsupportedATRMethod)
	assert.Contains(t, err.Error(), "ema")
	assert.Nil(t, got)
}

// TestWilderATR_Recursion は再帰式 ATR = (prev*(K-1)+TR)/K を手計算の
// 期待値と突き合わせます。
func TestWilderATR_Recursion(t *testing.T) {
	t.Parallel()

	trs := []*decimal.Decimal{dp(1), dp(2), dp(3), dp(4)}
	got := wilderATR(trs, 2)

	assert.Nil(t, got[0])
	// シード: mean(1, 2) = 1.5
	require.NotNil(t, got[1])
	assert.True(t, got[1].Equal(decimal.NewFromFloat(1.5)), "got %s, want 1.5", got[1])
	// (1.5*1 + 3) / 2 = 2.25
	require.NotNil(t, got[2])
	assert.True(t, got[2].Equal(decimal.NewFromFloat(2.25)), "got %s, want 2.25", got[2])
	// (2.25*1 + 4) / 2 = 3.125
	require.NotNil(t, got[3])
	assert.True(t, got[3].Equal(decimal.NewFromFloat(3.125)), "got %s, want 3.125", got[3])
}

// TestWilderATR_BrokenChainNeverReseeds は系列途中のTR欠損で平滑化チェーンが
// 切れ、以降の値がすべて nil のままになることを検証します。
func TestWilderATR_BrokenChainNeverReseeds(t *testing.T) {
	t.Parallel()

	trs := []*decimal.Decimal{dp(1), dp(1), dp(1), nil, dp(1), dp(1), dp(1)}
	got := wilderATR(trs, 2)

	assert.Nil(t, got[0])
	require.NotNil(t, got[1])
	require.NotNil(t, got[2])
	// 欠損以降は完全なTRが再び続いても復帰しない
	for i := 3; i < len(got); i++ {
		assert.Nil(t, got[i], "index %d should stay nil after the chain broke", i)
	}
}

// TestWilderATR_IncompleteSeedWindow はシード窓に欠損がある場合、
// シードが成立せず全行 nil になることを検証します。
func TestWilderATR_IncompleteSeedWindow(t *testing.T) {
	t.Parallel()

	trs := []*decimal.Decimal{dp(1), nil, dp(1), dp(1), dp(1)}
	got := wilderATR(trs, 3)

	for i := range got {
		assert.Nil(t, got[i], "index %d", i)
	}
}

// TestWilderState_StepReturnsStableValue は step の戻り値が以降のステップで
// 書き換わらないことを検証します（累積値の共有に対する回帰テスト）。
func TestWilderState_StepReturnsStableValue(t *testing.T) {
	t.Parallel()

	var s wilderState
	s.seed(decimal.NewFromInt(1))

	first := s.step(dp(3), 2) // (1*1+3)/2 = 2
	require.NotNil(t, first)
	second := s.step(dp(4), 2) // (2*1+4)/2 = 3
	require.NotNil(t, second)

	assert.True(t, first.Equal(decimal.NewFromInt(2)), "first step got %s, want 2", first)
	assert.True(t, second.Equal(decimal.NewFromInt(3)), "second step got %s, want 3", second)
}

// TestWilderState_StepAfterBreak は一度切れた状態での step が常に nil を
// 返すことを検証します。
func TestWilderState_StepAfterBreak(t *testing.T) {
	t.Parallel()

	var s wilderState
	s.seed(decimal.NewFromInt(1))

	require.Nil(t, s.step(nil, 2))
	assert.Nil(t, s.step(dp(1), 2), "a broken chain must not resume on valid TR")
}
