package dataservice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccip-dashboard-backend/internal/dataservice"
)

func TestFeeDataDailyRangesUseRealTotals(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"08-01-2025 CCIP.csv": csvFile(row("0x1", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 10)),
		"08-02-2025 CCIP.csv": csvFile(row("0x2", "0xb", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 20)),
		"08-03-2025 CCIP.csv": csvFile(row("0x3", "0xc", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 30)),
	}

	svc, _ := newTestService(files, nil)
	mustLoad(t, svc)

	series := svc.FeeData(dataservice.Range7d)
	assert.False(t, series.Synthetic)
	require.Len(t, series.Points, 3)

	// Chronological order with each date's real fee totals
	assert.Equal(t, "Aug 1", series.Points[0].Time)
	assert.Equal(t, 10.0, series.Points[0].Value)
	assert.Equal(t, "Aug 2", series.Points[1].Time)
	assert.Equal(t, 20.0, series.Points[1].Value)
	assert.Equal(t, "Aug 3", series.Points[2].Time)
	assert.Equal(t, 30.0, series.Points[2].Value)
}

func TestFeeDataWindowLimitsDates(t *testing.T) {
	t.Parallel()

	files := make(map[string]string)
	files["08-01-2025 CCIP.csv"] = csvFile(row("0x1", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 1))
	files["08-02-2025 CCIP.csv"] = csvFile(row("0x2", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 2))
	files["08-03-2025 CCIP.csv"] = csvFile(row("0x3", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 3))
	files["08-04-2025 CCIP.csv"] = csvFile(row("0x4", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 4))
	files["08-05-2025 CCIP.csv"] = csvFile(row("0x5", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 5))
	files["08-06-2025 CCIP.csv"] = csvFile(row("0x6", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 6))
	files["08-07-2025 CCIP.csv"] = csvFile(row("0x7", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 7))
	files["08-08-2025 CCIP.csv"] = csvFile(row("0x8", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 8))

	svc, _ := newTestService(files, nil)
	mustLoad(t, svc)

	series := svc.FeeData(dataservice.Range7d)
	require.Len(t, series.Points, 7)

	// The earliest of the eight days falls outside the window
	assert.Equal(t, "Aug 2", series.Points[0].Time)
	assert.Equal(t, "Aug 8", series.Points[6].Time)
}

func TestFeeData24hIsSyntheticAndCached(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"08-01-2025 CCIP.csv": csvFile(row("0x1", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 10)),
	}

	svc, _ := newTestService(files, nil)
	mustLoad(t, svc)

	series := svc.FeeData(dataservice.Range24h)
	assert.True(t, series.Synthetic)
	require.Len(t, series.Points, 24)
	for _, p := range series.Points {
		assert.Greater(t, p.Value, 0.0)
	}

	// The jittered series is memoized, a repeat query returns the same points
	again := svc.FeeData(dataservice.Range24h)
	assert.Equal(t, series, again)
}

func TestTimeSeriesDataIsSynthetic(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(nil, nil)
	mustLoad(t, svc)

	points := svc.TimeSeriesData(time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC), 24, 2)
	require.Len(t, points, 12)
	for _, p := range points {
		assert.Greater(t, p.Value, 0.0)
	}
}

func TestFeeBreakdownFixedSplit(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"08-01-2025 CCIP.csv": csvFile(
			row("0x1", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 60),
			row("0x2", "0xb", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 40),
		),
	}

	svc, _ := newTestService(files, nil)
	mustLoad(t, svc)

	breakdown := svc.FeeBreakdown(date(2025, time.August, 1))
	require.Len(t, breakdown, 3)

	assert.Equal(t, "Gas Fees", breakdown[0].Category)
	assert.InDelta(t, 60.0, breakdown[0].Amount, 1e-9)
	assert.InDelta(t, 60.0, breakdown[0].Percentage, 1e-9)

	assert.Equal(t, "Protocol Fees", breakdown[1].Category)
	assert.InDelta(t, 30.0, breakdown[1].Amount, 1e-9)

	assert.Equal(t, "Network Fees", breakdown[2].Category)
	assert.InDelta(t, 10.0, breakdown[2].Amount, 1e-9)

	var total float64
	for _, item := range breakdown {
		total += item.Amount
	}
	assert.InDelta(t, 100.0, total, 1e-9)
}

func TestFeeBreakdownZeroFees(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(nil, nil)
	mustLoad(t, svc)

	breakdown := svc.FeeBreakdown(date(2025, time.August, 1))
	require.Len(t, breakdown, 3)
	for _, item := range breakdown {
		assert.Zero(t, item.Amount)
		assert.Zero(t, item.Percentage)
	}
}
