package dataservice

import (
	"log"
	"sort"
	"strings"

	"ccip-dashboard-backend/internal/chains"
	"ccip-dashboard-backend/models"
)

// NetworkStats aggregates per-chain rollups. When no explicit transaction
// slice is supplied it covers every loaded dataset and memoizes the result;
// an explicit slice is aggregated as-is and bypasses the cache. Every
// transfer updates both its source-chain and destination-chain rollup.
func (s *Service) NetworkStats(transactions []models.Transaction) []models.NetworkStats {
	useCache := len(transactions) == 0
	key := cacheKey{kind: kindNetworkStats}

	if useCache {
		if v, ok := s.cache.get(key); ok {
			log.Printf("[STATS] 💾 Cache HIT: network stats")
			return v.([]models.NetworkStats)
		}
		transactions = s.allTransactions()
	}

	type accum struct {
		stats  models.NetworkStats
		tokens map[string]struct{}
	}

	byChain := make(map[string]*accum)
	add := func(network string, tx models.Transaction) {
		a, ok := byChain[network]
		if !ok {
			a = &accum{
				stats: models.NetworkStats{
					Name:         strings.Replace(network, "-mainnet", "", 1),
					OriginalName: network,
					ShortName:    chains.ShortName(network),
					DisplayName:  chains.DisplayName(network),
				},
				tokens: make(map[string]struct{}),
			}
			byChain[network] = a
		}
		a.stats.Transactions++
		a.stats.Volume += tx.TotalValue
		a.stats.Fees += tx.FeeInUSD
		a.tokens[tx.Token] = struct{}{}
	}

	for _, tx := range transactions {
		// A transfer counts once for each side; a same-chain transfer hits
		// the same rollup twice.
		add(tx.SourceNetworkName, tx)
		add(tx.DestNetworkName, tx)
	}

	stats := make([]models.NetworkStats, 0, len(byChain))
	for _, a := range byChain {
		a.stats.TokenCount = len(a.tokens)
		stats = append(stats, a.stats)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Volume != stats[j].Volume {
			return stats[i].Volume > stats[j].Volume
		}
		if stats[i].Transactions != stats[j].Transactions {
			return stats[i].Transactions > stats[j].Transactions
		}
		return stats[i].OriginalName < stats[j].OriginalName
	})

	if useCache {
		s.cache.put(key, stats)
		log.Printf("[STATS] 💾 Cache STORED: network stats")
	}
	return stats
}
