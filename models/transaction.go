package models

import "time"

// Transaction represents one cross-chain token transfer parsed from a daily CSV export
type Transaction struct {
	TransactionHash   string  `json:"transactionHash"`
	Sender            string  `json:"sender"`
	SourceNetworkName string  `json:"sourceNetworkName"`
	DestNetworkName   string  `json:"destNetworkName"`
	Token             string  `json:"token"`
	TokenName         string  `json:"tokenName"`
	Amount            string  `json:"amount"`
	AmountFormatted   string  `json:"amountFormatted"`
	Price             float64 `json:"price"`
	TotalValue        float64 `json:"totalValue"`
	FeeInUSD          float64 `json:"feeInUSD"`
	BlockTimestamp    string  `json:"blockTimestamp"`
}

// DailyData holds the transactions and precomputed totals for one source file.
// Totals are computed once at load time and never mutated afterward.
type DailyData struct {
	Date              time.Time     `json:"date"`
	Transactions      []Transaction `json:"transactions"`
	TotalValue        float64       `json:"totalValue"`
	TotalTransactions int           `json:"totalTransactions"`
	TotalFees         float64       `json:"totalFees"`
}
