package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccip-dashboard-backend/internal/parser"
)

func TestSafeParseFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "Currency formatting stripped", input: "$1,234.56", expected: 1234.56},
		{name: "Plain number", input: "1000", expected: 1000},
		{name: "Negative number", input: "-12.5", expected: -12.5},
		{name: "Trailing unit", input: "3.50 USD", expected: 3.5},
		{name: "Empty string", input: "", expected: 0},
		{name: "Whitespace only", input: "   ", expected: 0},
		{name: "Not a number", input: "abc", expected: 0},
		{name: "Garbage after cleaning", input: "--", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parser.SafeParseFloat(tt.input))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	p := parser.NewCSVParser()

	csvText := "transactionHash,sender,sourceNetworkName,destNetworkName,token,tokenName,amount,amountFormatted,price,totalValue,feeInUSD,blockTimestamp\r\n" +
		"0xabc,0xsender,ethereum-mainnet,polygon-mainnet,0xtoken,USDC,1000000,1.0,1.00,$1.00,0.25,2025-08-14T10:00:00Z\r\n" +
		"0xdef,0xsender2,avalanche-mainnet,ethereum-mainnet,0xtoken2,LINK,2,2.0,bad,abc,,"

	transactions, err := p.Parse(csvText)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	first := transactions[0]
	assert.Equal(t, "0xabc", first.TransactionHash)
	assert.Equal(t, "0xsender", first.Sender)
	assert.Equal(t, "ethereum-mainnet", first.SourceNetworkName)
	assert.Equal(t, "polygon-mainnet", first.DestNetworkName)
	assert.Equal(t, "USDC", first.TokenName)
	assert.Equal(t, 1.0, first.Price)
	assert.Equal(t, 1.0, first.TotalValue)
	assert.Equal(t, 0.25, first.FeeInUSD)

	// Malformed numerics coerce to zero instead of failing the row
	second := transactions[1]
	assert.Equal(t, "LINK", second.TokenName)
	assert.Equal(t, 0.0, second.Price)
	assert.Equal(t, 0.0, second.TotalValue)
	assert.Equal(t, 0.0, second.FeeInUSD)
}

func TestParseColumnOrderIndependent(t *testing.T) {
	t.Parallel()

	p := parser.NewCSVParser()

	csvText := "feeInUSD,sourceNetworkName,totalValue,tokenName\n" +
		"0.5,ethereum-mainnet,42.5,USDC"

	transactions, err := p.Parse(csvText)
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	assert.Equal(t, "ethereum-mainnet", transactions[0].SourceNetworkName)
	assert.Equal(t, 42.5, transactions[0].TotalValue)
	assert.Equal(t, 0.5, transactions[0].FeeInUSD)
}

func TestParseLegacyValueColumn(t *testing.T) {
	t.Parallel()

	p := parser.NewCSVParser()

	csvText := "sourceNetworkName,value,feeInUSD\n" +
		"ethereum-mainnet,99.5,1.5"

	transactions, err := p.Parse(csvText)
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	// Legacy "value" column backfills totalValue
	assert.Equal(t, 99.5, transactions[0].TotalValue)
}

func TestParseMissingTrailingValues(t *testing.T) {
	t.Parallel()

	p := parser.NewCSVParser()

	csvText := "sourceNetworkName,destNetworkName,totalValue,feeInUSD\n" +
		"ethereum-mainnet,polygon-mainnet"

	transactions, err := p.Parse(csvText)
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	assert.Equal(t, "polygon-mainnet", transactions[0].DestNetworkName)
	assert.Equal(t, 0.0, transactions[0].TotalValue)
	assert.Equal(t, 0.0, transactions[0].FeeInUSD)
}

func TestParseStrayQuoteKeepsOtherRows(t *testing.T) {
	t.Parallel()

	p := parser.NewCSVParser()

	csvText := "transactionHash,sourceNetworkName,totalValue\n" +
		"0x1,ethereum-mainnet,100\n" +
		"\"0x2,polygon-mainnet,50"

	transactions, err := p.Parse(csvText)
	require.NoError(t, err)
	require.NotEmpty(t, transactions)

	// The well-formed row survives a quoting irregularity elsewhere in the file
	assert.Equal(t, "0x1", transactions[0].TransactionHash)
	assert.Equal(t, 100.0, transactions[0].TotalValue)
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	p := parser.NewCSVParser()

	transactions, err := p.Parse("")
	require.NoError(t, err)
	assert.Empty(t, transactions)
}
