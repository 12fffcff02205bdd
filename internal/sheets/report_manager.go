package sheets

import (
	"context"
	"fmt"

	"mina_explorer/internal/domain/aggregate"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ValueFormatter renders a chart value for a cell
type ValueFormatter func(decimal.Decimal) string

// ReportSheetsManager lays out explorer pages, charts and block analytics as
// spreadsheet tabs. Every publish rewrites the whole tab.
type ReportSheetsManager struct {
	api         SheetsAPI
	formatValue ValueFormatter
}

// NewReportSheetsManager creates a report manager. formatValue renders chart
// values; nil writes them as plain decimals.
func NewReportSheetsManager(api SheetsAPI, formatValue ValueFormatter) *ReportSheetsManager {
	if formatValue == nil {
		formatValue = decimal.Decimal.String
	}
	return &ReportSheetsManager{
		api:         api,
		formatValue: formatValue,
	}
}

// ChartTabName creates a standardized tab name for a chart
func (m *ReportSheetsManager) ChartTabName(title string) string {
	return fmt.Sprintf("Chart - %s", title)
}

// PageTabName creates a standardized tab name for a table page
func (m *ReportSheetsManager) PageTabName(table string) string {
	return fmt.Sprintf("Page - %s", table)
}

// AnalyticsTabName creates a standardized tab name for block analytics
func (m *ReportSheetsManager) AnalyticsTabName(stateHash string) string {
	return fmt.Sprintf("Analytics - %s", stateHash)
}

// EnsureReportSheet creates the tab if it does not exist yet
func (m *ReportSheetsManager) EnsureReportSheet(ctx context.Context, spreadsheetID, tabName string) error {
	exists, err := m.api.SheetExists(ctx, spreadsheetID, tabName)
	if err != nil {
		return fmt.Errorf("failed to check if sheet %s exists: %w", tabName, err)
	}
	if exists {
		return nil
	}

	log.Info().
		Str("sheet_name", tabName).
		Msg("Creating report sheet")

	if err := m.api.CreateSheet(ctx, spreadsheetID, tabName); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", tabName, err)
	}
	return nil
}

// PublishChart writes a Top-N aggregate as Key | Value | Share rows
func (m *ReportSheetsManager) PublishChart(ctx context.Context, spreadsheetID, title string, entries []aggregate.Entry[int64]) error {
	rows := m.GenerateChartRows(title, entries)
	return m.writeTab(ctx, spreadsheetID, m.ChartTabName(title), rows)
}

// PublishPage writes one table page: its record counter, column headers and rows
func (m *ReportSheetsManager) PublishPage(ctx context.Context, spreadsheetID, table, summary string, columns []string, records [][]string) error {
	rows := make([][]interface{}, 0, len(records)+3)
	rows = append(rows, []interface{}{table}, []interface{}{summary}, toRow(columns))
	for _, record := range records {
		rows = append(rows, toRow(record))
	}
	return m.writeTab(ctx, spreadsheetID, m.PageTabName(table), rows)
}

// PublishAnalytics writes labelled block totals
func (m *ReportSheetsManager) PublishAnalytics(ctx context.Context, spreadsheetID, stateHash string, totals [][2]string) error {
	rows := make([][]interface{}, 0, len(totals)+2)
	rows = append(rows, []interface{}{"Block Analytics"}, []interface{}{"State Hash", stateHash})
	for _, total := range totals {
		rows = append(rows, []interface{}{total[0], total[1]})
	}
	return m.writeTab(ctx, spreadsheetID, m.AnalyticsTabName(stateHash), rows)
}

// GenerateChartRows lays out a chart: title, header, one row per entry.
// Shares are percentages of the chart total with two decimals.
func (m *ReportSheetsManager) GenerateChartRows(title string, entries []aggregate.Entry[int64]) [][]interface{} {
	total := decimal.NewFromInt(aggregate.Sum(entries))

	rows := make([][]interface{}, 0, len(entries)+2)
	rows = append(rows, []interface{}{title}, []interface{}{"Key", "Value", "Share"})
	for _, e := range entries {
		value := decimal.NewFromInt(e.Value)
		share := decimal.Zero
		if !total.IsZero() {
			share = value.Div(total).Shift(2)
		}
		rows = append(rows, []interface{}{e.Key, m.formatValue(value), share.StringFixed(2) + "%"})
	}
	return rows
}

// writeTab replaces the content of a tab, creating and growing it as needed
func (m *ReportSheetsManager) writeTab(ctx context.Context, spreadsheetID, tabName string, rows [][]interface{}) error {
	if err := m.EnsureReportSheet(ctx, spreadsheetID, tabName); err != nil {
		return err
	}

	if err := m.api.EnsureSheetCapacity(ctx, spreadsheetID, tabName, len(rows), widest(rows)); err != nil {
		return fmt.Errorf("failed to ensure capacity of %s: %w", tabName, err)
	}

	if err := m.api.ClearRange(ctx, spreadsheetID, fmt.Sprintf("'%s'!A:Z", tabName)); err != nil {
		return fmt.Errorf("failed to clear %s: %w", tabName, err)
	}

	if err := m.api.UpdateRange(ctx, spreadsheetID, fmt.Sprintf("'%s'!A1", tabName), rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", tabName, err)
	}

	log.Debug().
		Str("sheet_name", tabName).
		Int("rows", len(rows)).
		Msg("Published report sheet")

	return nil
}

func toRow(cells []string) []interface{} {
	row := make([]interface{}, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

func widest(rows [][]interface{}) int {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	return width
}
