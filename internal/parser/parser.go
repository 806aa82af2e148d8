package parser

import (
	"encoding/csv"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"ccip-dashboard-backend/models"
)

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// SafeParseFloat parses a numeric CSV field tolerantly. All characters other
// than digits, '.' and '-' are stripped before parsing; empty or unparsable
// input yields 0. It never fails.
func SafeParseFloat(value string) float64 {
	if strings.TrimSpace(value) == "" {
		return 0
	}

	clean := nonNumeric.ReplaceAllString(value, "")
	parsed, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		log.Printf("[PARSER] ⚠️ Failed to parse value %q (cleaned: %q), using 0", value, clean)
		return 0
	}
	return parsed
}

// CSVParser turns raw daily CSV exports into transaction records
type CSVParser struct{}

// NewCSVParser creates a new CSV parser
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// Parse parses raw CSV text into transaction records. The first line declares
// the column names; order is not fixed, values are matched to headers by name
// and missing trailing values default to the empty string. Rows are passed
// through without schema validation beyond the tolerant numeric parsing;
// structurally malformed rows are logged and skipped, they never reject the
// rest of the file.
func (p *CSVParser) Parse(csvText string) ([]models.Transaction, error) {
	// Strip carriage returns before splitting, exports come from mixed platforms
	cleaned := strings.ReplaceAll(strings.TrimSpace(csvText), "\r", "")

	reader := csv.NewReader(strings.NewReader(cleaned))
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var headers []string
	var transactions []models.Transaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("[PARSER] ⚠️ Skipping malformed row: %v", err)
			continue
		}
		if headers == nil {
			headers = record
			continue
		}
		transactions = append(transactions, parseRow(headers, record))
	}
	return transactions, nil
}

func parseRow(headers, row []string) models.Transaction {
	fields := make(map[string]string, len(headers))
	for i, header := range headers {
		if i < len(row) {
			fields[header] = row[i]
		} else {
			fields[header] = ""
		}
	}

	// Older exports used "value" instead of "totalValue"
	if _, ok := fields["totalValue"]; !ok {
		if legacy, ok := fields["value"]; ok {
			fields["totalValue"] = legacy
		}
	}

	return models.Transaction{
		TransactionHash:   fields["transactionHash"],
		Sender:            fields["sender"],
		SourceNetworkName: fields["sourceNetworkName"],
		DestNetworkName:   fields["destNetworkName"],
		Token:             fields["token"],
		TokenName:         fields["tokenName"],
		Amount:            fields["amount"],
		AmountFormatted:   fields["amountFormatted"],
		Price:             SafeParseFloat(fields["price"]),
		TotalValue:        SafeParseFloat(fields["totalValue"]),
		FeeInUSD:          SafeParseFloat(fields["feeInUSD"]),
		BlockTimestamp:    fields["blockTimestamp"],
	}
}
