package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/olekukonko/tablewriter"

	"SeasonScope/internal/collector"
	"SeasonScope/internal/config"
	"SeasonScope/internal/notifier"
	"SeasonScope/internal/scan"
	"SeasonScope/internal/scheduler"
	"SeasonScope/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var (
		cfgPath      = flag.String("config", "configs/config.yaml", "path to config file")
		once         = flag.Bool("once", false, "run a single scan and exit")
		showCell     = flag.String("show", "", `print a cell after a -once run, e.g. "1m_10y"`)
		minWinRate   = flag.Float64("min-win-rate", 0, "win rate threshold for -show")
		minAvgReturn = flag.Float64("min-avg-return", 0, "average return threshold for -show")
		minYears     = flag.Int("min-years", 0, "years-of-data threshold for -show")
	)
	flag.Parse()
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		*cfgPath = v
	}

	log.Println("[INFO] SeasonScope scanner starting...")
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.Source == "stooq" {
		fetcher = collector.NewStooqFetcher(cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init scan store
	var st store.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using noop: %v", err)
			st = store.NewNoopStore()
		} else {
			st = ss
			defer ss.Close()
		}
	} else {
		st = store.NewNoopStore()
	}

	// Init Telegram notifier (optional)
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	tickers, err := scheduler.LoadTickers(cfg.Scan.TickersFile)
	if err != nil {
		log.Fatalf("[FATAL] load tickers: %v", err)
	}
	log.Printf("[INFO] loaded %d tickers from %s", len(tickers), cfg.Scan.TickersFile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	grid := scan.Grid{
		LookbackYears: cfg.Scan.LookbackYears,
		ForwardMonths: cfg.Scan.ForwardMonths,
	}
	sched := scheduler.NewScheduler(ctx, fetcher, st, tn, cfg.Scan.AssetClass, tickers, grid)

	if *once {
		if _, err := sched.RunScanNow(); err != nil {
			log.Fatalf("[FATAL] scan: %v", err)
		}
		if *showCell != "" {
			printCell(st, cfg.Scan.AssetClass, *showCell, scan.Filter{
				MinWinRate:   *minWinRate,
				MinAvgReturn: *minAvgReturn,
				MinYears:     *minYears,
			})
		}
		return
	}

	if err := sched.Register(cfg.Scan.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] SeasonScope scanner is running. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] SeasonScope scanner stopped")
}

// printCell renders one grid cell's filtered entries as a console
// table.
func printCell(st store.Store, assetClass, cellKey string, f scan.Filter) {
	forward, lookback, err := scan.ParseCellKey(cellKey)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return
	}
	entries, err := st.QueryCell(store.Cell{
		AssetClass:    assetClass,
		ForwardMonths: forward,
		LookbackYears: lookback,
	})
	if err != nil {
		log.Printf("[ERROR] query cell: %v", err)
		return
	}
	filtered := scan.Apply(entries, f)

	fmt.Printf("\n%s/%s: %d of %d entries\n\n", assetClass, cellKey, len(filtered), len(entries))
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Ticker", "Win rate", "Avg return", "Max profit", "Max loss", "Years")
	for _, e := range filtered {
		table.Append(
			e.Ticker,
			fmt.Sprintf("%.1f%%", e.WinRate),
			fmt.Sprintf("%+.2f%%", e.AvgReturn),
			fmt.Sprintf("%+.2f%%", e.MaxProfit),
			fmt.Sprintf("%+.2f%%", e.MaxLoss),
			fmt.Sprintf("%d", e.YearsOfData),
		)
	}
	table.Render()
}
