package dataservice

import (
	"log"
	"math/rand"
	"time"

	"ccip-dashboard-backend/models"
)

// Fee ranges supported by FeeData
const (
	Range24h = "24h"
	Range7d  = "7d"
	Range30d = "30d"
)

// Fixed fee-category split. The exports carry a single fee figure per
// transfer, so the breakdown is a static heuristic, not measured data.
const (
	gasShare      = 0.6
	protocolShare = 0.3
	networkShare  = 0.1
)

// FeeData returns the fee chart series for "24h", "7d" or "30d". The daily
// ranges use each date's real fee totals in chronological order; the 24h
// series is synthetic (jitter around a base value) because the exports carry
// no intraday data, and is flagged as such. Results are cached per range.
func (s *Service) FeeData(timeRange string) models.FeeSeries {
	key := cacheKey{kind: kindFeeData, param: timeRange}
	if v, ok := s.cache.get(key); ok {
		log.Printf("[STATS] 💾 Cache HIT: fee data for %s", timeRange)
		return v.(models.FeeSeries)
	}

	series := models.FeeSeries{Range: timeRange}
	switch timeRange {
	case Range24h:
		series.Synthetic = true
		series.Points = syntheticFeePoints(time.Now(), 24, 1, 1000, 0.5)
	case Range7d:
		series.Points = s.dailyFeePoints(7)
	case Range30d:
		series.Points = s.dailyFeePoints(30)
	}

	s.cache.put(key, series)
	log.Printf("[STATS] 💾 Cache STORED: fee data for %s", timeRange)
	return series
}

// dailyFeePoints returns one point per available date within the window:
// the most recent n dates, reordered chronologically
func (s *Service) dailyFeePoints(n int) []models.FeePoint {
	dates := s.AvailableDates()
	if len(dates) > n {
		dates = dates[:n]
	}

	points := make([]models.FeePoint, 0, len(dates))
	for i := len(dates) - 1; i >= 0; i-- {
		daily, ok := s.DailyData(dates[i])
		if !ok {
			continue
		}
		points = append(points, models.FeePoint{
			Time:  dates[i].Format("Jan 2"),
			Value: daily.TotalFees,
		})
	}
	return points
}

// TimeSeriesData generates an hourly fee series ending at the given date.
// Synthetic placeholder: the exports have no intraday resolution.
func (s *Service) TimeSeriesData(date time.Time, hours, intervalHours int) []models.FeePoint {
	if intervalHours < 1 {
		intervalHours = 1
	}
	return syntheticFeePoints(date, hours, intervalHours, 100, 0.3)
}

// syntheticFeePoints generates jittered points around a base value, one per
// interval, oldest first
func syntheticFeePoints(end time.Time, hours, intervalHours int, baseFee, variation float64) []models.FeePoint {
	points := make([]models.FeePoint, 0, hours/intervalHours+1)
	for i := hours - 1; i >= 0; i -= intervalHours {
		t := end.Add(-time.Duration(i) * time.Hour)
		points = append(points, models.FeePoint{
			Time:  t.Format("3 PM"),
			Value: baseFee * (1 + (rand.Float64()-0.5)*variation),
		})
	}
	return points
}

// FeeBreakdown splits a date's total fees into the fixed gas/protocol/network
// proportions
func (s *Service) FeeBreakdown(date time.Time) []models.FeeBreakdownItem {
	daily, ok := s.DailyData(date)

	var totalFees float64
	if ok {
		totalFees = daily.TotalFees
	}

	if totalFees == 0 {
		return []models.FeeBreakdownItem{
			{Category: "Gas Fees", Color: "bg-blue-500"},
			{Category: "Protocol Fees", Color: "bg-green-500"},
			{Category: "Network Fees", Color: "bg-purple-500"},
		}
	}

	return []models.FeeBreakdownItem{
		{
			Category:   "Gas Fees",
			Amount:     totalFees * gasShare,
			Percentage: gasShare * 100,
			Color:      "bg-blue-500",
		},
		{
			Category:   "Protocol Fees",
			Amount:     totalFees * protocolShare,
			Percentage: protocolShare * 100,
			Color:      "bg-green-500",
		},
		{
			Category:   "Network Fees",
			Amount:     totalFees * networkShare,
			Percentage: networkShare * 100,
			Color:      "bg-purple-500",
		},
	}
}
