package dataservice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccip-dashboard-backend/models"
)

func TestNetworkStatsCountsBothSides(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(nil, nil)
	mustLoad(t, svc)

	tx := models.Transaction{
		SourceNetworkName: "ethereum-mainnet",
		DestNetworkName:   "polygon-mainnet",
		Token:             "0xt1",
		TotalValue:        10,
		FeeInUSD:          1,
	}

	stats := svc.NetworkStats([]models.Transaction{tx})
	require.Len(t, stats, 2)

	for _, s := range stats {
		assert.Equal(t, 1, s.Transactions)
		assert.Equal(t, 10.0, s.Volume)
		assert.Equal(t, 1.0, s.Fees)
		assert.Equal(t, 1, s.TokenCount)
	}
	assert.ElementsMatch(t,
		[]string{"ethereum-mainnet", "polygon-mainnet"},
		[]string{stats[0].OriginalName, stats[1].OriginalName})
}

func TestNetworkStatsSortedByVolume(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"08-01-2025 CCIP.csv": csvFile(
			row("0x1", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 1),
			row("0x2", "0xb", "avalanche-mainnet", "sonic-mainnet", "0xt2", "LINK", 15, 700, 1),
		),
	}

	svc, _ := newTestService(files, nil)
	mustLoad(t, svc)

	stats := svc.NetworkStats(nil)
	require.Len(t, stats, 4)
	for i := 1; i < len(stats); i++ {
		assert.GreaterOrEqual(t, stats[i-1].Volume, stats[i].Volume)
	}
}

func TestNetworkStatsIdempotentAcrossCacheClear(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"08-01-2025 CCIP.csv": csvFile(
			row("0x1", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 1),
			row("0x2", "0xb", "avalanche-mainnet", "ethereum-mainnet", "0xt2", "LINK", 15, 700, 2),
		),
	}

	svc, _ := newTestService(files, nil)
	mustLoad(t, svc)

	first := svc.NetworkStats(nil)
	second := svc.NetworkStats(nil)
	assert.Equal(t, first, second)

	svc.ClearCache()
	third := svc.NetworkStats(nil)
	assert.Equal(t, first, third)
}

func TestNetworkStatsExplicitSliceBypassesCache(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"08-01-2025 CCIP.csv": csvFile(
			row("0x1", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 1),
		),
	}

	svc, _ := newTestService(files, nil)
	mustLoad(t, svc)

	all := svc.NetworkStats(nil)
	require.Len(t, all, 2)

	subset := svc.NetworkStats([]models.Transaction{{
		SourceNetworkName: "sonic-mainnet",
		DestNetworkName:   "sei-mainnet",
		Token:             "0xt9",
		TotalValue:        5,
	}})
	require.Len(t, subset, 2)
	assert.ElementsMatch(t,
		[]string{"sonic-mainnet", "sei-mainnet"},
		[]string{subset[0].OriginalName, subset[1].OriginalName})

	// Cached all-data result is untouched by the explicit query
	assert.Equal(t, all, svc.NetworkStats(nil))
}

func TestTokenStatsGroupsByNameWithAddressFallback(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"08-01-2025 CCIP.csv": csvFile(
			row("0x1", "0xa", "ethereum-mainnet", "polygon-mainnet", "0xt1", "USDC", 1, 100, 1),
			row("0x2", "0xb", "avalanche-mainnet", "ethereum-mainnet", "0xt2", "USDC", 1.01, 200, 1),
			row("0x3", "0xc", "sonic-mainnet", "sei-mainnet", "0xnameless", "", 2, 50, 1),
		),
	}

	svc, _ := newTestService(files, nil)
	mustLoad(t, svc)

	stats := svc.TokenStats(nil)
	require.Len(t, stats, 2)

	usdc := stats[0]
	assert.Equal(t, "USDC", usdc.Name)
	assert.Equal(t, 300.0, usdc.Volume)
	assert.Equal(t, 2, usdc.Transactions)
	assert.Equal(t, 3, usdc.ChainCount)
	assert.ElementsMatch(t, []string{"ethereum-mainnet", "polygon-mainnet", "avalanche-mainnet"}, usdc.Chains)

	nameless := stats[1]
	assert.Equal(t, "0xnameless", nameless.Name)
	assert.Equal(t, "0xnameless", nameless.Symbol)
	assert.Equal(t, 2, nameless.ChainCount)
}

func TestTokenStatsPriceIsLastObserved(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(nil, nil)
	mustLoad(t, svc)

	stats := svc.TokenStats([]models.Transaction{
		{Token: "0xt1", TokenName: "LINK", Price: 14.5, TotalValue: 10},
		{Token: "0xt1", TokenName: "LINK", Price: 15.25, TotalValue: 10},
	})
	require.Len(t, stats, 1)
	assert.Equal(t, 15.25, stats[0].Price)
}
