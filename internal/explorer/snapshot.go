package explorer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"mina_explorer/internal/app"
)

// ErrEmptyResponse is returned when a snapshot carries neither data nor errors
var ErrEmptyResponse = errors.New("no data available")

// queryError is one entry of a GraphQL "errors" array
type queryError struct {
	Message string `json:"message"`
}

// envelope is the top level of a saved GraphQL response
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []queryError    `json:"errors"`
}

// LoadTransactions reads a saved transactions query response
func LoadTransactions(path string) ([]*app.Transaction, error) {
	resp, err := loadSnapshot[app.TransactionsResponse](path)
	if err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// LoadBlocks reads a saved blocks query response
func LoadBlocks(path string) ([]*app.Block, error) {
	resp, err := loadSnapshot[app.BlocksResponse](path)
	if err != nil {
		return nil, err
	}
	return resp.Blocks, nil
}

// LoadSnarks reads a saved snarks query response
func LoadSnarks(path string) ([]*app.Snark, error) {
	resp, err := loadSnapshot[app.SnarksResponse](path)
	if err != nil {
		return nil, err
	}
	return resp.Snarks, nil
}

// LoadStakes reads a saved stakes query response
func LoadStakes(path string) ([]*app.Stake, error) {
	resp, err := loadSnapshot[app.StakesResponse](path)
	if err != nil {
		return nil, err
	}
	return resp.Stakes, nil
}

// loadSnapshot decodes either a full {"data": ..., "errors": ...} response or
// a bare data object.
func loadSnapshot[T any](path string) (*T, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	return decodeSnapshot[T](body)
}

func decodeSnapshot[T any](body []byte) (*T, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if len(env.Errors) > 0 {
		messages := make([]string, len(env.Errors))
		for i, e := range env.Errors {
			messages[i] = e.Message
		}
		return nil, fmt.Errorf("query returned errors: %s", strings.Join(messages, "; "))
	}

	payload := body
	if len(env.Data) > 0 {
		if string(env.Data) == "null" {
			return nil, ErrEmptyResponse
		}
		payload = env.Data
	}

	var data T
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot data: %w", err)
	}
	return &data, nil
}
