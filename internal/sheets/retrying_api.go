package sheets

import (
	"context"

	"mina_explorer/internal/config"
)

// RetryingAPI retries the calls of another SheetsAPI with backoff
type RetryingAPI struct {
	api    SheetsAPI
	policy config.RetryConfig
}

// NewRetryingAPI wraps api with the given retry policy
func NewRetryingAPI(api SheetsAPI, policy config.RetryConfig) *RetryingAPI {
	return &RetryingAPI{api: api, policy: policy}
}

func (r *RetryingAPI) UpdateRange(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error {
	return config.Retry(ctx, r.policy, "update range "+range_, func(ctx context.Context) error {
		return r.api.UpdateRange(ctx, spreadsheetID, range_, values)
	})
}

func (r *RetryingAPI) ClearRange(ctx context.Context, spreadsheetID, range_ string) error {
	return config.Retry(ctx, r.policy, "clear range "+range_, func(ctx context.Context) error {
		return r.api.ClearRange(ctx, spreadsheetID, range_)
	})
}

// CreateSheet is not retried: a create that timed out may still have
// succeeded, and a second AddSheet for the same title fails.
func (r *RetryingAPI) CreateSheet(ctx context.Context, spreadsheetID, sheetName string) error {
	return r.api.CreateSheet(ctx, spreadsheetID, sheetName)
}

func (r *RetryingAPI) SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error) {
	var exists bool
	err := config.Retry(ctx, r.policy, "check sheet "+sheetName, func(ctx context.Context) error {
		var err error
		exists, err = r.api.SheetExists(ctx, spreadsheetID, sheetName)
		return err
	})
	return exists, err
}

func (r *RetryingAPI) EnsureSheetCapacity(ctx context.Context, spreadsheetID, sheetName string, requiredRows, requiredCols int) error {
	return config.Retry(ctx, r.policy, "resize sheet "+sheetName, func(ctx context.Context) error {
		return r.api.EnsureSheetCapacity(ctx, spreadsheetID, sheetName, requiredRows, requiredCols)
	})
}
