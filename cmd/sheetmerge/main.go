package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/leengari/sheetmerge/internal/logging"
	"github.com/leengari/sheetmerge/internal/pipeline"
	"github.com/leengari/sheetmerge/internal/report"
	"github.com/leengari/sheetmerge/internal/storage"
)

func main() {
	loadsURL := flag.String("loads", "data/loads.csv", "Loads CSV source")
	quotesURL := flag.String("quotes", "data/quotes.csv", "Quotes CSV source")
	carriersURL := flag.String("carriers", "data/carriers.csv", "Carriers CSV source")
	outURL := flag.String("out", "report.csv", "Report destination")
	flag.Parse()

	logger, closeFn := logging.SetupLogger()
	defer closeFn()
	slog.SetDefault(logger)

	slog.Info("Starting sheetmerge...")

	ctx := context.Background()
	store := storage.New()

	// Fixed pipeline order: each step's join columns filter the next
	// step's table. Quote rows joined per load, carrier rows per quote.
	sources := []pipeline.Source{
		{Name: "load", URL: *loadsURL, JoinColumns: []string{"load_id"}},
		{Name: "quote", URL: *quotesURL, JoinColumns: []string{"carrier_id"}},
		{Name: "carrier", URL: *carriersURL},
	}

	sheet, err := pipeline.New(store).Run(ctx, sources)
	if err != nil {
		slog.Error("pipeline failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	lines, err := report.Build(sheet, report.Options{
		KeyStep:    "load",
		KeyColumn:  "load_id",
		RateStep:   "quote",
		RateColumn: "rate",
	})
	if err != nil {
		slog.Error("report build failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []string{line.Key, line.Rate.String()})
	}

	if err := store.WriteCSV(ctx, *outURL, []string{"load_id", "rate"}, rows); err != nil {
		slog.Error("report write failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	slog.Info("Done", "report", *outURL, "lines", len(lines))
}
