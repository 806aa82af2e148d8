package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"ccip-dashboard-backend/internal/chains"
	"ccip-dashboard-backend/internal/dataservice"
	"ccip-dashboard-backend/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] ❌ Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// parseDate reads the "date" query parameter, falling back to the most
// recent available date when absent
func (s *Server) parseDate(r *http.Request) (time.Time, bool, string) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		date, ok := s.data.MostRecentDate()
		if !ok {
			return time.Time{}, false, "no data loaded"
		}
		return date, true, ""
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, false, "invalid date format, use YYYY-MM-DD"
	}
	return date, true, ""
}

// requireLoaded answers 503 until the initial load has completed, so the
// dashboard can show its loading state
func (s *Server) requireLoaded(w http.ResponseWriter) bool {
	if !s.data.Loaded() {
		writeError(w, http.StatusServiceUnavailable, "data not loaded yet")
		return false
	}
	return true
}

func (s *Server) handleDates(w http.ResponseWriter, r *http.Request) {
	if !s.requireLoaded(w) {
		return
	}

	dates := s.data.AvailableDates()
	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = d.Format("2006-01-02")
	}

	response := map[string]interface{}{
		"dates": keys,
		"count": len(keys),
	}
	if mostRecent, ok := s.data.MostRecentDate(); ok {
		response["mostRecent"] = mostRecent.Format("2006-01-02")
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if !s.requireLoaded(w) {
		return
	}

	date, ok, msg := s.parseDate(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	metrics, err := s.data.DashboardMetrics(date)
	if err != nil {
		if errors.Is(err, dataservice.ErrNoData) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("[HTTP] ❌ Error building dashboard metrics: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

// handleNetworks returns per-chain rollups, restricted to one date when the
// "date" parameter is present and covering everything otherwise. A date with
// no dataset is a 404, not the global rollups.
func (s *Server) handleNetworks(w http.ResponseWriter, r *http.Request) {
	if !s.requireLoaded(w) {
		return
	}

	if r.URL.Query().Get("date") != "" {
		date, ok, msg := s.parseDate(r)
		if !ok {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
		daily, ok := s.data.DailyData(date)
		if !ok {
			writeError(w, http.StatusNotFound, dataservice.ErrNoData.Error())
			return
		}
		if len(daily.Transactions) == 0 {
			// An empty slice would read as "aggregate everything"
			writeJSON(w, http.StatusOK, []models.NetworkStats{})
			return
		}
		writeJSON(w, http.StatusOK, s.data.NetworkStats(daily.Transactions))
		return
	}
	writeJSON(w, http.StatusOK, s.data.NetworkStats(nil))
}

func (s *Server) handleTokens(w http.ResponseWriter, r *http.Request) {
	if !s.requireLoaded(w) {
		return
	}

	if r.URL.Query().Get("date") != "" {
		date, ok, msg := s.parseDate(r)
		if !ok {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
		daily, ok := s.data.DailyData(date)
		if !ok {
			writeError(w, http.StatusNotFound, dataservice.ErrNoData.Error())
			return
		}
		if len(daily.Transactions) == 0 {
			writeJSON(w, http.StatusOK, []models.TokenStats{})
			return
		}
		writeJSON(w, http.StatusOK, s.data.TokenStats(daily.Transactions))
		return
	}
	writeJSON(w, http.StatusOK, s.data.TokenStats(nil))
}

func (s *Server) handleFees(w http.ResponseWriter, r *http.Request) {
	if !s.requireLoaded(w) {
		return
	}

	timeRange := r.URL.Query().Get("range")
	if timeRange == "" {
		timeRange = dataservice.Range7d
	}
	switch timeRange {
	case dataservice.Range24h, dataservice.Range7d, dataservice.Range30d:
	default:
		writeError(w, http.StatusBadRequest, "invalid range, use 24h, 7d or 30d")
		return
	}
	writeJSON(w, http.StatusOK, s.data.FeeData(timeRange))
}

func (s *Server) handleFeeBreakdown(w http.ResponseWriter, r *http.Request) {
	if !s.requireLoaded(w) {
		return
	}

	date, ok, msg := s.parseDate(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	writeJSON(w, http.StatusOK, s.data.FeeBreakdown(date))
}

func (s *Server) handleTimeSeries(w http.ResponseWriter, r *http.Request) {
	if !s.requireLoaded(w) {
		return
	}

	date, ok, msg := s.parseDate(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	hours := queryInt(r, "hours", 24)
	interval := queryInt(r, "interval", 1)

	response := map[string]interface{}{
		"synthetic": true,
		"points":    s.data.TimeSeriesData(date, hours, interval),
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if !s.requireLoaded(w) {
		return
	}

	date, ok, msg := s.parseDate(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	transactions := s.data.TransactionsByDate(date)
	response := map[string]interface{}{
		"date":         date.Format("2006-01-02"),
		"count":        len(transactions),
		"transactions": transactions,
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleChains(w http.ResponseWriter, r *http.Request) {
	all := chains.All()
	response := map[string]interface{}{
		"chains": all,
		"count":  len(all),
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if !s.requireLoaded(w) {
		return
	}
	writeJSON(w, http.StatusOK, s.data.OverviewStats())
}

// handleReload forces a refresh of the daily datasets
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	// The reload outlives the triggering request; a dropped connection must
	// not cancel the fetches mid-round
	if err := s.data.Refresh(context.WithoutCancel(r.Context())); err != nil {
		log.Printf("[HTTP] ❌ Reload failed: %v", err)
		writeError(w, http.StatusInternalServerError, "reload failed, retry later")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "reloaded",
		"dates":  len(s.data.AvailableDates()),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "ok",
		"loaded":    s.data.Loaded(),
		"days":      len(s.data.AvailableDates()),
		"clients":   s.ClientCount(),
		"timestamp": time.Now(),
	}
	writeJSON(w, http.StatusOK, response)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
