package main

import (
	"context"
	"flag"
	"sync"

	"mina_explorer/internal/app"
	"mina_explorer/internal/config"
	"mina_explorer/internal/explorer"
	"mina_explorer/internal/sheets"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	account := flag.String("account", "", "Public key of the account whose feed is shown")
	fromFile := flag.String("from", "", "Snapshot of transactions sent from the account")
	toFile := flag.String("to", "", "Snapshot of transactions sent to the account")
	blockFile := flag.String("block", "", "Snapshot of the block to analyze")
	stakesFile := flag.String("stakes", "", "Snapshot of the staking ledger")
	page := flag.Int("page", 1, "Page of each table to show (1-based)")
	publish := flag.Bool("publish", false, "Publish pages and charts to Google Sheets")
	flag.Parse()

	log.Info().
		Str("account", *account).
		Int("page", *page).
		Bool("publish", *publish).
		Msg("Starting explorer report")

	// Load configuration
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	var reports *sheets.ReportSheetsManager
	if *publish {
		if !cfg.PublishingEnabled() {
			log.Fatal().Msg("SPREADSHEET_ID must be set to publish")
		}
		sheetsClient, err := sheets.NewClient(ctx, cfg.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create sheets client")
		}
		reports = sheets.NewReportSheetsManager(sheets.NewRetryingAPI(sheetsClient, config.DefaultSheetWrite), explorer.FormatMina)
	}

	tracker := explorer.NewCycleTracker()
	defer tracker.LogSessionSummary()

	if *fromFile != "" || *toFile != "" {
		transactions, ok := loadAccountFeed(explorer.NewAccountFeed(*account, tracker), *fromFile, *toFile, cfg.FetchLimit)
		if ok {
			view, err := explorer.NewTableView[app.Transaction](explorer.TransactionsTable, cfg.PageSize)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to create transactions table")
			}
			view.SetRecords(transactions)
			view.SetPage(*page)
			showPage(ctx, reports, cfg, view, explorer.TransactionColumns, explorer.TransactionRow)
		}
	}

	if *stakesFile != "" {
		slots, err := explorer.LoadStakes(*stakesFile)
		if err != nil {
			log.Error().Err(err).Str("file", *stakesFile).Msg("Failed to load stakes")
		} else {
			view, err := explorer.NewTableView[app.Stake](explorer.StakesTable, cfg.PageSize)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to create stakes table")
			}
			view.SetRecords(present(explorer.Limit(slots, cfg.FetchLimit)))
			view.SetPage(*page)
			showPage(ctx, reports, cfg, view, explorer.StakeColumns, explorer.StakeRow)
		}
	}

	if *blockFile != "" {
		if err := analyzeBlock(ctx, reports, cfg, *blockFile); err != nil {
			log.Error().Err(err).Str("file", *blockFile).Msg("Failed to analyze block")
		}
	}
}

// loadAccountFeed fetches both sides of the account feed concurrently and
// returns the merged transactions once both have resolved.
func loadAccountFeed(feed *explorer.AccountFeed, fromFile, toFile string, fetchLimit int) ([]app.Transaction, bool) {
	cycle := feed.Begin()

	var (
		wg     sync.WaitGroup
		mutex  sync.Mutex
		merged []app.Transaction
		done   bool
	)

	fetch := func(path string, resolve func(uint64, []*app.Transaction) ([]app.Transaction, bool)) {
		defer wg.Done()

		var slots []*app.Transaction
		if path != "" {
			loaded, err := explorer.LoadTransactions(path)
			if err != nil {
				feed.Fail(cycle, err)
				return
			}
			slots = explorer.Limit(loaded, fetchLimit)
		}

		if result, ok := resolve(cycle, slots); ok {
			mutex.Lock()
			merged, done = result, true
			mutex.Unlock()
		}
	}

	wg.Add(2)
	go fetch(fromFile, feed.ResolveFrom)
	go fetch(toFile, feed.ResolveTo)
	wg.Wait()

	return merged, done
}

// showPage logs the visible page of a table and publishes it when reports is set
func showPage[T any](ctx context.Context, reports *sheets.ReportSheetsManager, cfg *app.Config, view *explorer.TableView[T], columns []string, format func(T) []string) {
	page := view.Page()
	rows := explorer.Rows(page.Records, format)

	log.Info().
		Str("table", view.Name()).
		Int("page", page.Number).
		Int("total_pages", page.TotalPages).
		Msg(page.Summary())

	for _, row := range rows {
		log.Debug().Str("table", view.Name()).Strs("row", row).Msg("Record")
	}

	if reports == nil {
		return
	}
	if err := reports.PublishPage(ctx, cfg.SpreadsheetID, view.Name(), page.Summary(), columns, rows); err != nil {
		log.Error().Err(err).Str("table", view.Name()).Msg("Failed to publish page")
	}
}

// analyzeBlock computes the spotlight totals and top-N charts of the first
// block in the snapshot.
func analyzeBlock(ctx context.Context, reports *sheets.ReportSheetsManager, cfg *app.Config, path string) error {
	blocks, err := explorer.LoadBlocks(path)
	if err != nil {
		return err
	}

	candidates := present(blocks)
	if len(candidates) == 0 {
		log.Warn().Str("file", path).Msg("Block snapshot holds no blocks")
		return nil
	}
	block := candidates[0]

	analytics := explorer.AnalyzeBlock(block)
	for _, row := range analytics.Rows() {
		log.Info().Str("state_hash", block.StateHash).Str("mina", row[1]).Msg(row[0])
	}

	feeChart, err := explorer.FeeTransferChart(block, cfg.TopK, cfg.OtherLabel)
	if err != nil {
		return err
	}
	paymentChart, err := explorer.PaymentChart(block, cfg.TopK, cfg.OtherLabel)
	if err != nil {
		return err
	}

	log.Info().
		Str("state_hash", block.StateHash).
		Int("fee_transfer_slices", len(feeChart)).
		Int("payment_slices", len(paymentChart)).
		Msg("Block charts aggregated")

	if reports == nil {
		return nil
	}
	if err := reports.PublishAnalytics(ctx, cfg.SpreadsheetID, block.StateHash, analytics.Rows()); err != nil {
		return err
	}
	if err := reports.PublishChart(ctx, cfg.SpreadsheetID, explorer.FeeTransferChartTitle, feeChart); err != nil {
		return err
	}
	return reports.PublishChart(ctx, cfg.SpreadsheetID, explorer.PaymentChartTitle, paymentChart)
}

// present drops absent slots
func present[T any](slots []*T) []T {
	records := make([]T, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			records = append(records, *s)
		}
	}
	return records
}
