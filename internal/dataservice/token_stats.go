package dataservice

import (
	"log"
	"sort"

	"ccip-dashboard-backend/models"
)

// TokenStats aggregates per-token rollups, grouped by display name with the
// token address as fallback. Same caching contract as NetworkStats: an
// explicit slice bypasses the cache, otherwise every loaded dataset is
// covered and the result memoized. Both sides of a transfer contribute to
// the token's chain set; the price is the last value observed.
func (s *Service) TokenStats(transactions []models.Transaction) []models.TokenStats {
	useCache := len(transactions) == 0
	key := cacheKey{kind: kindTokenStats}

	if useCache {
		if v, ok := s.cache.get(key); ok {
			log.Printf("[STATS] 💾 Cache HIT: token stats")
			return v.([]models.TokenStats)
		}
		transactions = s.allTransactions()
	}

	type accum struct {
		stats  models.TokenStats
		chains map[string]struct{}
	}

	byToken := make(map[string]*accum)
	for _, tx := range transactions {
		tokenKey := tx.TokenName
		if tokenKey == "" {
			tokenKey = tx.Token
		}

		a, ok := byToken[tokenKey]
		if !ok {
			a = &accum{
				stats: models.TokenStats{
					Symbol: tx.Token,
					Name:   tokenKey,
				},
				chains: make(map[string]struct{}),
			}
			byToken[tokenKey] = a
		}
		a.stats.Volume += tx.TotalValue
		a.stats.Transactions++
		a.stats.Price = tx.Price
		a.chains[tx.SourceNetworkName] = struct{}{}
		a.chains[tx.DestNetworkName] = struct{}{}
	}

	stats := make([]models.TokenStats, 0, len(byToken))
	for _, a := range byToken {
		chainList := make([]string, 0, len(a.chains))
		for chain := range a.chains {
			chainList = append(chainList, chain)
		}
		sort.Strings(chainList)
		a.stats.Chains = chainList
		a.stats.ChainCount = len(chainList)
		stats = append(stats, a.stats)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Volume != stats[j].Volume {
			return stats[i].Volume > stats[j].Volume
		}
		return stats[i].Name < stats[j].Name
	})

	if useCache {
		s.cache.put(key, stats)
		log.Printf("[STATS] 💾 Cache STORED: token stats")
	}
	return stats
}
