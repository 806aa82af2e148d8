package dataservice

import (
	"github.com/axiomhq/hyperloglog"

	"ccip-dashboard-backend/models"
)

// OverviewStats summarizes everything currently loaded: totals across all
// days, distinct chain and token counts, and an estimated unique-sender
// count. The sender count is a HyperLogLog estimate, exact enough for a
// headline figure without keeping every address in memory.
func (s *Service) OverviewStats() models.OverviewStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chainSet := make(map[string]struct{})
	tokenSet := make(map[string]struct{})
	senders := hyperloglog.New16()

	var overview models.OverviewStats
	for _, daily := range s.dailyData {
		overview.TotalValue += daily.TotalValue
		overview.TotalFees += daily.TotalFees
		overview.TotalTransactions += daily.TotalTransactions

		for _, tx := range daily.Transactions {
			chainSet[tx.SourceNetworkName] = struct{}{}
			chainSet[tx.DestNetworkName] = struct{}{}
			tokenSet[tx.Token] = struct{}{}
			senders.Insert([]byte(tx.Sender))
		}
	}

	overview.DayCount = len(s.dailyData)
	overview.ChainCount = len(chainSet)
	overview.TokenCount = len(tokenSet)
	overview.UniqueSenders = senders.Estimate()
	return overview
}
