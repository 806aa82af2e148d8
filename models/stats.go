package models

// NetworkStats represents cumulative rollups for one chain. A transfer counts
// once for the source chain and once for the destination chain, so transaction
// counts summed across chains exceed the number of underlying transfers.
type NetworkStats struct {
	Name         string  `json:"name"`
	OriginalName string  `json:"originalName"`
	ShortName    string  `json:"shortName"`
	DisplayName  string  `json:"displayName"`
	Transactions int     `json:"transactions"`
	Volume       float64 `json:"volume"`
	Fees         float64 `json:"fees"`
	TokenCount   int     `json:"tokenCount"`
}

// TokenStats represents cumulative rollups for one token, grouped by display
// name with the token address as fallback. Price is the last value observed,
// not an average.
type TokenStats struct {
	Symbol       string   `json:"symbol"`
	Name         string   `json:"name"`
	Volume       float64  `json:"volume"`
	Transactions int      `json:"transactions"`
	Chains       []string `json:"chains"`
	ChainCount   int      `json:"chainCount"`
	Price        float64  `json:"price"`
}

// TopChainStat is one entry in a dashboard top-chains list
type TopChainStat struct {
	Name         string  `json:"name"`
	OriginalName string  `json:"originalName"`
	ShortName    string  `json:"shortName"`
	DisplayName  string  `json:"displayName"`
	Value        float64 `json:"value"`
	Transactions int     `json:"transactions"`
	Fees         float64 `json:"fees"`
	Percentage   float64 `json:"percentage"`
	Trend        string  `json:"trend"`
}

// TopTokenStat is one entry in the dashboard top-tokens list
type TopTokenStat struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	Transactions int     `json:"transactions"`
	Fees         float64 `json:"fees"`
	Percentage   float64 `json:"percentage"`
	Trend        string  `json:"trend"`
}

// DashboardMetrics is the point-in-time snapshot for one selected date,
// including day-over-day percentage changes against the previous available day
type DashboardMetrics struct {
	TotalValueTransferred float64        `json:"totalValueTransferred"`
	TotalTransactions     int            `json:"totalTransactions"`
	TotalFees             float64        `json:"totalFees"`
	ValueChange           float64        `json:"valueChange"`
	TransactionChange     float64        `json:"transactionChange"`
	FeeChange             float64        `json:"feeChange"`
	TopSourceChains       []TopChainStat `json:"topSourceChains"`
	TopDestinationChains  []TopChainStat `json:"topDestinationChains"`
	TopTokens             []TopTokenStat `json:"topTokens"`
}

// FeePoint is one point in a fee chart series
type FeePoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// FeeSeries is a chart series for one time range. Synthetic marks series that
// are generated rather than derived from the source data (the exports carry
// no intraday information, so the 24h series is always synthetic).
type FeeSeries struct {
	Range     string     `json:"range"`
	Synthetic bool       `json:"synthetic"`
	Points    []FeePoint `json:"points"`
}

// FeeBreakdownItem is one slice of the fee category breakdown for a date
type FeeBreakdownItem struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// OverviewStats summarizes everything currently loaded across all days
type OverviewStats struct {
	DayCount          int     `json:"dayCount"`
	TotalTransactions int     `json:"totalTransactions"`
	TotalValue        float64 `json:"totalValue"`
	TotalFees         float64 `json:"totalFees"`
	ChainCount        int     `json:"chainCount"`
	TokenCount        int     `json:"tokenCount"`
	UniqueSenders     uint64  `json:"uniqueSenders"`
}
