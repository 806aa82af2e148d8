package dataservice

import (
	"log"
	"sort"
	"strings"
	"time"

	"ccip-dashboard-backend/internal/chains"
	"ccip-dashboard-backend/models"
)

// trendUp is reported for every top-list entry: there is no per-entry
// historical comparison yet, so the indicator is a placeholder.
const trendUp = "up"

type chainSide int

const (
	sourceSide chainSide = iota
	destSide
)

// DashboardMetrics builds the aggregate snapshot for one selected date:
// totals with day-over-day percentage changes against the previous available
// day, plus the top chains by role and the top tokens for that date.
// It fails with ErrNoData when no dataset matches the date.
func (s *Service) DashboardMetrics(date time.Time) (models.DashboardMetrics, error) {
	key := cacheKey{kind: kindDashboard, param: dateKey(date)}
	if v, ok := s.cache.get(key); ok {
		log.Printf("[STATS] 💾 Cache HIT: dashboard metrics for %s", key.param)
		return v.(models.DashboardMetrics), nil
	}

	current, ok := s.DailyData(date)
	if !ok {
		return models.DashboardMetrics{}, ErrNoData
	}

	metrics := models.DashboardMetrics{
		TotalValueTransferred: current.TotalValue,
		TotalTransactions:     current.TotalTransactions,
		TotalFees:             current.TotalFees,
	}

	if previous, ok := s.previousDailyData(date); ok {
		metrics.ValueChange = percentChange(current.TotalValue, previous.TotalValue)
		metrics.TransactionChange = percentChange(float64(current.TotalTransactions), float64(previous.TotalTransactions))
		metrics.FeeChange = percentChange(current.TotalFees, previous.TotalFees)
	}

	metrics.TopSourceChains = s.topChains(current, sourceSide)
	metrics.TopDestinationChains = s.topChains(current, destSide)
	metrics.TopTokens = s.topTokens(current)

	s.cache.put(key, metrics)
	log.Printf("[STATS] 💾 Cache STORED: dashboard metrics for %s", key.param)
	return metrics, nil
}

// topChains ranks the chains of one role (source or destination) within a
// day. A transaction contributes to exactly one rollup per role.
func (s *Service) topChains(daily models.DailyData, side chainSide) []models.TopChainStat {
	type accum struct {
		value        float64
		transactions int
		fees         float64
	}

	byChain := make(map[string]*accum)
	for _, tx := range daily.Transactions {
		network := tx.SourceNetworkName
		if side == destSide {
			network = tx.DestNetworkName
		}

		a, ok := byChain[network]
		if !ok {
			a = &accum{}
			byChain[network] = a
		}
		a.value += tx.TotalValue
		a.transactions++
		a.fees += tx.FeeInUSD
	}

	top := make([]models.TopChainStat, 0, len(byChain))
	for network, a := range byChain {
		stat := models.TopChainStat{
			Name:         strings.Replace(network, "-mainnet", "", 1),
			OriginalName: network,
			ShortName:    chains.ShortName(network),
			DisplayName:  chains.DisplayName(network),
			Value:        a.value,
			Transactions: a.transactions,
			Fees:         a.fees,
			Trend:        trendUp,
		}
		if daily.TotalValue > 0 {
			stat.Percentage = a.value / daily.TotalValue * 100
		}
		top = append(top, stat)
	}

	// Value first, then transactions, then fees; name keeps full ties stable
	sort.Slice(top, func(i, j int) bool {
		if top[i].Value != top[j].Value {
			return top[i].Value > top[j].Value
		}
		if top[i].Transactions != top[j].Transactions {
			return top[i].Transactions > top[j].Transactions
		}
		if top[i].Fees != top[j].Fees {
			return top[i].Fees > top[j].Fees
		}
		return top[i].OriginalName < top[j].OriginalName
	})

	if len(top) > s.config.TopItemsLimit {
		top = top[:s.config.TopItemsLimit]
	}
	return top
}

// topTokens ranks the tokens within a day, grouped by display name with the
// token address as fallback
func (s *Service) topTokens(daily models.DailyData) []models.TopTokenStat {
	type accum struct {
		name         string
		value        float64
		transactions int
		fees         float64
	}

	byToken := make(map[string]*accum)
	for _, tx := range daily.Transactions {
		tokenKey := tx.TokenName
		if tokenKey == "" {
			tokenKey = tx.Token
		}

		a, ok := byToken[tokenKey]
		if !ok {
			a = &accum{name: tokenKey}
			byToken[tokenKey] = a
		}
		a.value += tx.TotalValue
		a.transactions++
		a.fees += tx.FeeInUSD
	}

	top := make([]models.TopTokenStat, 0, len(byToken))
	for _, a := range byToken {
		stat := models.TopTokenStat{
			Name:         a.name,
			Value:        a.value,
			Transactions: a.transactions,
			Fees:         a.fees,
			Trend:        trendUp,
		}
		if daily.TotalValue > 0 {
			stat.Percentage = a.value / daily.TotalValue * 100
		}
		top = append(top, stat)
	}

	sort.Slice(top, func(i, j int) bool {
		if top[i].Value != top[j].Value {
			return top[i].Value > top[j].Value
		}
		return top[i].Name < top[j].Name
	})

	if len(top) > s.config.TopItemsLimit {
		top = top[:s.config.TopItemsLimit]
	}
	return top
}
