package dataservice

import (
	"context"
	"errors"
	"log"
	"math"
	"regexp"
	"sort"
	"strconv"
	"sync"
	"time"

	"ccip-dashboard-backend/config"
	"ccip-dashboard-backend/internal/parser"
	"ccip-dashboard-backend/internal/source"
	"ccip-dashboard-backend/models"
)

// ErrNoData is returned when a query names a date with no loaded dataset
var ErrNoData = errors.New("no data available for selected date")

// filenameDate matches the M(M)-D(D)-YYYY date embedded in export filenames
var filenameDate = regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`)

// Service is the in-memory aggregation engine over the daily CSV exports.
// All mutable state is private; callers hold an explicit reference so tests
// can run isolated instances.
type Service struct {
	config *config.Config
	source source.Source
	parser *parser.CSVParser

	mu             sync.RWMutex
	dailyData      map[string]models.DailyData // keyed by source filename to avoid date/timezone collisions
	availableDates []time.Time                 // descending, most recent first
	loaded         bool
	lastLoaded     time.Time

	loadMu   sync.Mutex
	inFlight *loadOp

	cache *resultCache
}

// loadOp is a single in-flight load; concurrent callers wait on done
type loadOp struct {
	done chan struct{}
	err  error
}

// NewService creates a new data service over the given source
func NewService(cfg *config.Config, src source.Source) *Service {
	return &Service{
		config:    cfg,
		source:    src,
		parser:    parser.NewCSVParser(),
		dailyData: make(map[string]models.DailyData),
		cache:     newResultCache(),
	}
}

// LoadData ensures the daily datasets are loaded. It is a no-op while the
// last load is still within the cache-validity window, and at most one load
// is in flight process-wide: concurrent callers wait on the same operation.
func (s *Service) LoadData(ctx context.Context) error {
	s.loadMu.Lock()
	if s.isFresh() {
		s.loadMu.Unlock()
		log.Printf("[LOADER] 🚀 Using cached data, no need to reload CSV files")
		return nil
	}
	if s.inFlight != nil {
		op := s.inFlight
		s.loadMu.Unlock()
		log.Printf("[LOADER] ⏳ Data already loading, waiting for in-flight load")
		<-op.done
		return op.err
	}

	op := &loadOp{done: make(chan struct{})}
	s.inFlight = op
	s.loadMu.Unlock()

	op.err = s.loadAll(ctx)

	s.loadMu.Lock()
	s.inFlight = nil
	s.loadMu.Unlock()
	close(op.done)

	return op.err
}

// Refresh forces a reload regardless of the cache-validity window
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loaded = false
	s.mu.Unlock()
	return s.LoadData(ctx)
}

// ClearCache drops all memoized aggregation results
func (s *Service) ClearCache() {
	s.cache.clear()
}

// Loaded reports whether a load has completed
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Service) isFresh() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded && time.Since(s.lastLoaded) < s.config.CacheExpiry
}

// loadAll fetches every configured file concurrently. Per-file failures are
// logged and skipped; partial data is an accepted outcome. Results are merged
// into the store per filename after all fetches have settled, so a round
// where some or all fetches fail never loses previously loaded days.
func (s *Service) loadAll(ctx context.Context) error {
	log.Printf("[LOADER] Loading %d daily CSV files...", len(s.config.CSVFiles))

	type fileResult struct {
		filename string
		daily    models.DailyData
	}

	results := make(chan fileResult, len(s.config.CSVFiles))
	var wg sync.WaitGroup
	for _, filename := range s.config.CSVFiles {
		wg.Add(1)
		go func(filename string) {
			defer wg.Done()

			date, ok := dateFromFilename(filename)
			if !ok {
				log.Printf("[LOADER] ⚠️ No date found in filename %q, skipping", filename)
				return
			}

			raw, err := s.source.Fetch(ctx, filename)
			if err != nil {
				log.Printf("[LOADER] ⚠️ Failed to load %s: %v", filename, err)
				return
			}

			transactions, err := s.parser.Parse(string(raw))
			if err != nil {
				log.Printf("[LOADER] ⚠️ Failed to parse %s: %v", filename, err)
				return
			}

			daily := buildDailyData(date, transactions)
			log.Printf("[LOADER] Loaded %s: %d transactions, $%.2f value, $%.2f fees",
				filename, len(transactions), daily.TotalValue, daily.TotalFees)
			results <- fileResult{filename: filename, daily: daily}
		}(filename)
	}
	wg.Wait()
	close(results)

	s.mu.Lock()
	merged := make(map[string]models.DailyData, len(s.dailyData)+len(s.config.CSVFiles))
	for filename, daily := range s.dailyData {
		merged[filename] = daily
	}
	for r := range results {
		merged[r.filename] = r.daily
	}

	dates := make([]time.Time, 0, len(merged))
	for _, daily := range merged {
		dates = append(dates, daily.Date)
	}
	// Most recent first
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	s.dailyData = merged
	s.availableDates = dates
	s.loaded = true
	s.lastLoaded = time.Now()
	s.mu.Unlock()

	// Old cached aggregates are invalid against the new datasets
	s.cache.clear()

	log.Printf("[LOADER] ✅ All daily data loaded, %d dates available", len(dates))
	return nil
}

// buildDailyData computes the immutable per-day totals over the records
func buildDailyData(date time.Time, transactions []models.Transaction) models.DailyData {
	var totalValue, totalFees float64
	for _, tx := range transactions {
		totalValue += tx.TotalValue
		totalFees += tx.FeeInUSD
	}

	if math.IsNaN(totalValue) || math.IsInf(totalValue, 0) {
		log.Printf("[LOADER] ⚠️ Invalid total value for %s, coercing to 0", dateKey(date))
		totalValue = 0
	}
	if math.IsNaN(totalFees) || math.IsInf(totalFees, 0) {
		log.Printf("[LOADER] ⚠️ Invalid total fees for %s, coercing to 0", dateKey(date))
		totalFees = 0
	}

	return models.DailyData{
		Date:              date,
		Transactions:      transactions,
		TotalValue:        totalValue,
		TotalTransactions: len(transactions),
		TotalFees:         totalFees,
	}
}

// dateFromFilename derives the calendar date from an export filename
func dateFromFilename(filename string) (time.Time, bool) {
	m := filenameDate.FindStringSubmatch(filename)
	if m == nil {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// dateKey reduces a timestamp to its calendar date, independent of
// time-of-day and timezone offsets within the day
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// AvailableDates returns the dates with a loaded dataset, most recent first.
// The returned slice is a copy.
func (s *Service) AvailableDates() []time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dates := make([]time.Time, len(s.availableDates))
	copy(dates, s.availableDates)
	return dates
}

// MostRecentDate returns the most recent available date
func (s *Service) MostRecentDate() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.availableDates) == 0 {
		return time.Time{}, false
	}
	return s.availableDates[0], true
}

// DailyData returns the dataset whose date matches the given calendar date
func (s *Service) DailyData(date time.Time) (models.DailyData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dailyDataLocked(date)
}

func (s *Service) dailyDataLocked(date time.Time) (models.DailyData, bool) {
	key := dateKey(date)
	for _, daily := range s.dailyData {
		if dateKey(daily.Date) == key {
			return daily, true
		}
	}
	return models.DailyData{}, false
}

// TransactionsByDate returns the transactions for the given calendar date,
// or an empty slice when no dataset matches
func (s *Service) TransactionsByDate(date time.Time) []models.Transaction {
	daily, ok := s.DailyData(date)
	if !ok {
		return []models.Transaction{}
	}
	return daily.Transactions
}

// allTransactions flattens every loaded dataset into one slice
func (s *Service) allTransactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []models.Transaction
	for _, daily := range s.dailyData {
		all = append(all, daily.Transactions...)
	}
	return all
}

// previousDailyData returns the dataset for the date immediately after the
// given one in the descending index, i.e. the previous available day
func (s *Service) previousDailyData(date time.Time) (models.DailyData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := dateKey(date)
	for i, d := range s.availableDates {
		if dateKey(d) == key {
			if i+1 < len(s.availableDates) {
				return s.dailyDataLocked(s.availableDates[i+1])
			}
			return models.DailyData{}, false
		}
	}
	return models.DailyData{}, false
}

// percentChange returns the percentage change from previous to current,
// defaulting to 0 when the previous value is 0 to avoid division by zero
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
