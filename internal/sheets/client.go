package sheets

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// capacityMargin is the number of spare rows added when a sheet is grown
const capacityMargin = 20

// Client implements the SheetsAPI interface using Google Sheets API.
//
// Note: This client uses [][]interface{} as required by the Google Sheets API.
// This is the only layer where interface{} should appear.
type Client struct {
	service *sheets.Service
}

// NewClient creates a new Google Sheets client with the provided credentials
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service: service,
	}, nil
}

// UpdateRange updates the specified sheet range with the provided values.
// Values are written RAW: cells are preformatted strings and must not be reinterpreted.
func (c *Client) UpdateRange(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error {
	valueRange := &sheets.ValueRange{
		Values: values,
	}

	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, range_, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update range: %w", err)
	}

	return nil
}

// ClearRange clears all values in the specified sheet range
func (c *Client) ClearRange(ctx context.Context, spreadsheetID, range_ string) error {
	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, range_, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear range: %w", err)
	}

	return nil
}

// CreateSheet creates a new sheet with the specified name
func (c *Client) CreateSheet(ctx context.Context, spreadsheetID, sheetName string) error {
	req := &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{
				Title: sheetName,
			},
		},
	}

	batchUpdate := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{req},
	}

	_, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, batchUpdate).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetName, err)
	}

	return nil
}

// SheetExists checks if a sheet with the given name exists in the spreadsheet
func (c *Client) SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error) {
	sheet, err := c.findSheet(ctx, spreadsheetID, sheetName)
	if err != nil {
		return false, err
	}
	return sheet != nil, nil
}

// EnsureSheetCapacity grows the sheet grid so it holds at least the required
// rows and columns. Report tabs are rewritten on every publish, so the grid is
// sized to fit with a small margin rather than a growth buffer.
func (c *Client) EnsureSheetCapacity(ctx context.Context, spreadsheetID, sheetName string, requiredRows, requiredCols int) error {
	sheet, err := c.findSheet(ctx, spreadsheetID, sheetName)
	if err != nil {
		return err
	}
	if sheet == nil {
		return fmt.Errorf("sheet %s not found", sheetName)
	}

	grid := sheet.Properties.GridProperties
	newRows, newCols, grow := grownGrid(int(grid.RowCount), int(grid.ColumnCount), requiredRows, requiredCols)
	if !grow {
		return nil
	}

	log.Debug().
		Str("sheet_name", sheetName).
		Int64("current_rows", grid.RowCount).
		Int64("current_cols", grid.ColumnCount).
		Int("new_rows", newRows).
		Int("new_cols", newCols).
		Msg("Expanding sheet capacity")

	req := &sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId: sheet.Properties.SheetId,
				GridProperties: &sheets.GridProperties{
					RowCount:    int64(newRows),
					ColumnCount: int64(newCols),
				},
			},
			Fields: "gridProperties.rowCount,gridProperties.columnCount",
		},
	}

	_, err = c.service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{req},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to resize sheet %s: %w", sheetName, err)
	}

	return nil
}

// findSheet returns the named sheet, or nil if the spreadsheet has none
func (c *Client) findSheet(ctx context.Context, spreadsheetID, sheetName string) (*sheets.Sheet, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == sheetName {
			return sheet, nil
		}
	}
	return nil, nil
}

// grownGrid returns the grid size needed to hold the required cells and
// whether the current grid is too small. Dimensions never shrink.
func grownGrid(currentRows, currentCols, requiredRows, requiredCols int) (int, int, bool) {
	if requiredRows <= currentRows && requiredCols <= currentCols {
		return currentRows, currentCols, false
	}
	rows := currentRows
	if requiredRows > currentRows {
		rows = requiredRows + capacityMargin
	}
	return rows, max(currentCols, requiredCols), true
}
