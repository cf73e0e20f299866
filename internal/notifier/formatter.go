package notifier

import (
	"fmt"
	"strings"
	"time"
)

// ScanRunSummary aggregates one scan run's outcome for reporting.
type ScanRunSummary struct {
	AssetClass     string
	Tickers        int
	Failed         []string
	EntriesWritten int
	Cells          int
	Duration       time.Duration
}

// FormatScanReport formats a scan run summary into a Telegram message.
func FormatScanReport(s *ScanRunSummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>SeasonScope scan</b> | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Asset class: %s\n", s.AssetClass))
	b.WriteString(fmt.Sprintf("Tickers: %d (%d failed)\n", s.Tickers, len(s.Failed)))
	b.WriteString(fmt.Sprintf("Entries written: %d across %d cells\n", s.EntriesWritten, s.Cells))
	b.WriteString(fmt.Sprintf("Duration: %s\n", s.Duration.Round(time.Second)))

	if len(s.Failed) > 0 {
		b.WriteString(fmt.Sprintf("\n❌ failed: %s\n", strings.Join(s.Failed, ", ")))
	} else {
		b.WriteString("\n✅ all tickers processed\n")
	}
	return b.String()
}
