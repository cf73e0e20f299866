package scheduler

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"SeasonScope/internal/collector"
	"SeasonScope/internal/model"
	"SeasonScope/internal/notifier"
	"SeasonScope/internal/scan"
	"SeasonScope/internal/seasonality"
	"SeasonScope/internal/store"
)

// Scheduler runs the periodic ticker scan: fetch each ticker's full
// history, compute forward-window metrics for every grid cell, and
// replace the stored dataset.
type Scheduler struct {
	Cron       *cron.Cron
	Fetcher    collector.Fetcher
	Store      store.Store
	Notifier   *notifier.TelegramNotifier // nil disables notifications
	AssetClass string
	Tickers    []string
	Grid       scan.Grid
	Ctx        context.Context

	// Now is the scan's reference date; overridable in tests.
	Now func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, fetcher collector.Fetcher, st store.Store, tn *notifier.TelegramNotifier, assetClass string, tickers []string, grid scan.Grid) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Fetcher:    fetcher,
		Store:      st,
		Notifier:   tn,
		AssetClass: assetClass,
		Tickers:    tickers,
		Grid:       grid,
		Ctx:        ctx,
		Now:        time.Now,
	}
}

// Register registers the scan task on the given cron spec.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan immediately (manual trigger /
// RUN_ON_START) and returns the run summary.
func (s *Scheduler) RunScanNow() (*notifier.ScanRunSummary, error) {
	return s.runScan()
}

func (s *Scheduler) scanTask() {
	if _, err := s.runScan(); err != nil {
		log.Printf("[ERROR] scan run: %v", err)
		s.trySend(fmt.Sprintf("❌ scan run failed: %v", err))
	}
}

func (s *Scheduler) runScan() (*notifier.ScanRunSummary, error) {
	today := s.Now().UTC()
	started := time.Now()
	log.Printf("[INFO] starting scan for %s: %d tickers, date %s",
		s.AssetClass, len(s.Tickers), today.Format("2006-01-02"))

	maxLookback := 0
	for _, lb := range s.Grid.LookbackYears {
		if lb > maxLookback {
			maxLookback = lb
		}
	}
	if maxLookback == 0 || len(s.Grid.ForwardMonths) == 0 {
		return nil, fmt.Errorf("empty scan grid")
	}
	startYear := today.Year() - maxLookback

	cells := make(map[store.Cell][]model.ScanMetrics)
	for _, lb := range s.Grid.LookbackYears {
		for _, fw := range s.Grid.ForwardMonths {
			cells[store.Cell{AssetClass: s.AssetClass, ForwardMonths: fw, LookbackYears: lb}] = nil
		}
	}

	summary := &notifier.ScanRunSummary{AssetClass: s.AssetClass, Tickers: len(s.Tickers)}
	for _, ticker := range s.Tickers {
		select {
		case <-s.Ctx.Done():
			return nil, s.Ctx.Err()
		default:
		}

		closes, err := s.Fetcher.FetchDailyCloses(ticker, startYear)
		if err != nil {
			log.Printf("[ERROR] fetch %s: %v", ticker, err)
			summary.Failed = append(summary.Failed, ticker)
			continue
		}
		series := seasonality.SortedSeries(closes)

		for _, lb := range s.Grid.LookbackYears {
			sliced := scan.SliceLookback(series, lb, today)
			for _, fw := range s.Grid.ForwardMonths {
				m := scan.ForwardMetrics(sliced, fw, today)
				if m == nil {
					continue
				}
				m.Ticker = ticker
				cell := store.Cell{AssetClass: s.AssetClass, ForwardMonths: fw, LookbackYears: lb}
				cells[cell] = append(cells[cell], *m)
			}
		}
		log.Printf("[INFO] scanned %s (%d days of data)", ticker, len(series))
	}

	for cell, entries := range cells {
		if err := s.Store.ReplaceCell(cell, entries); err != nil {
			return nil, fmt.Errorf("store cell %s/%s: %w",
				cell.AssetClass, scan.CellKey(cell.ForwardMonths, cell.LookbackYears), err)
		}
		summary.EntriesWritten += len(entries)
	}
	summary.Cells = len(cells)
	summary.Duration = time.Since(started)

	log.Printf("[INFO] scan complete: %d entries across %d cells in %s",
		summary.EntriesWritten, summary.Cells, summary.Duration.Round(time.Millisecond))
	s.trySend(notifier.FormatScanReport(summary))
	return summary, nil
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Send(text); err != nil {
		log.Printf("[ERROR] telegram send: %v", err)
	}
}

// LoadTickers reads one ticker per line, uppercased; blank lines and
// #-comments are skipped.
func LoadTickers(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ticker file: %w", err)
	}
	defer f.Close()

	var tickers []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tickers = append(tickers, strings.ToUpper(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read ticker file: %w", err)
	}
	if len(tickers) == 0 {
		return nil, fmt.Errorf("ticker file %s is empty", path)
	}
	return tickers, nil
}
