package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"ccip-dashboard-backend/config"
	"ccip-dashboard-backend/internal/dataservice"
	"ccip-dashboard-backend/internal/source"
	"ccip-dashboard-backend/models"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	dir := flag.String("dir", "data", "directory containing the daily CSV exports")
	dateStr := flag.String("date", "", "report date (YYYY-MM-DD), defaults to the most recent")
	flag.Parse()

	cfg := config.DefaultConfig()
	cfg.DataDir = *dir

	data := dataservice.NewService(cfg, source.NewDirSource(cfg.DataDir))
	if err := data.LoadData(context.Background()); err != nil {
		log.Fatalf("Error loading data: %v", err)
	}

	date, ok := data.MostRecentDate()
	if *dateStr != "" {
		parsed, err := time.Parse("2006-01-02", *dateStr)
		if err != nil {
			log.Fatalf("Error parsing date: %v", err)
		}
		date, ok = parsed, true
	}
	if !ok {
		log.Fatalf("No daily data available in %s", cfg.DataDir)
	}

	metrics, err := data.DashboardMetrics(date)
	if err != nil {
		log.Fatalf("Error building dashboard metrics: %v", err)
	}

	fmt.Printf("CCIP Analytics for %s:\n", date.Format("2006-01-02"))
	fmt.Printf("  Total value:        $%.2f (%+.1f%%)\n", metrics.TotalValueTransferred, metrics.ValueChange)
	fmt.Printf("  Total transactions: %d (%+.1f%%)\n", metrics.TotalTransactions, metrics.TransactionChange)
	fmt.Printf("  Total fees:         $%.2f (%+.1f%%)\n", metrics.TotalFees, metrics.FeeChange)
	fmt.Println()

	displayChains("Top Source Chains", metrics.TopSourceChains)
	displayChains("Top Destination Chains", metrics.TopDestinationChains)
	displayTokens(metrics.TopTokens)
	displayNetworks(data.NetworkStats(nil))
}

// displayChains prints one top-chains list in a table format
func displayChains(title string, chains []models.TopChainStat) {
	if len(chains) == 0 {
		return
	}

	fmt.Printf("%s:\n", title)
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Chain", "Short", "Value USD", "Transactions", "Fees USD", "Share"})
	for _, c := range chains {
		t.AppendRow(table.Row{
			c.DisplayName,
			c.ShortName,
			fmt.Sprintf("%.2f", c.Value),
			c.Transactions,
			fmt.Sprintf("%.2f", c.Fees),
			fmt.Sprintf("%.1f%%", c.Percentage),
		})
	}
	t.Render()
	fmt.Println()
}

func displayTokens(tokens []models.TopTokenStat) {
	if len(tokens) == 0 {
		return
	}

	fmt.Println("Top Tokens:")
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Token", "Value USD", "Transactions", "Share"})
	for _, tok := range tokens {
		t.AppendRow(table.Row{
			tok.Name,
			fmt.Sprintf("%.2f", tok.Value),
			tok.Transactions,
			fmt.Sprintf("%.1f%%", tok.Percentage),
		})
	}
	t.Render()
	fmt.Println()
}

func displayNetworks(networks []models.NetworkStats) {
	if len(networks) == 0 {
		fmt.Println("No network stats to display.")
		return
	}

	fmt.Println("All-time Network Rollups:")
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Chain", "Transactions", "Volume USD", "Fees USD", "Tokens"})
	for _, n := range networks {
		t.AppendRow(table.Row{
			n.DisplayName,
			n.Transactions,
			fmt.Sprintf("%.2f", n.Volume),
			fmt.Sprintf("%.2f", n.Fees),
			n.TokenCount,
		})
	}
	t.Render()
}
