package sheets

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client appends rows to a single spreadsheet. The underlying API service is
// built lazily on first use and cached for the process lifetime; rotating
// credentials requires a restart.
type Client struct {
	creds         Credentials
	spreadsheetID string

	once    sync.Once
	srv     *sheets.Service
	initErr error
}

func NewClient(creds Credentials, spreadsheetID string) *Client {
	return &Client{creds: creds, spreadsheetID: spreadsheetID}
}

// service initializes the sheets API client at most once. The error is
// cached alongside the service, so a bad credential source fails every call
// the same way instead of retrying construction.
func (c *Client) service(ctx context.Context) (*sheets.Service, error) {
	c.once.Do(func() {
		b, err := c.creds.load()
		if err != nil {
			c.initErr = err
			return
		}
		jwt, err := google.JWTConfigFromJSON(b, sheets.SpreadsheetsScope)
		if err != nil {
			c.initErr = fmt.Errorf("failed to parse service account key: %w", err)
			return
		}
		srv, err := sheets.NewService(ctx, option.WithHTTPClient(jwt.Client(context.Background())))
		if err != nil {
			c.initErr = fmt.Errorf("failed to create sheets client: %w", err)
			return
		}
		c.srv = srv
	})
	return c.srv, c.initErr
}

// Append writes one row to the end of readRange. Each cell is looked up in
// record by column name; missing columns become empty strings, so the row
// width always equals len(columns).
func (c *Client) Append(ctx context.Context, readRange string, columns []string, record map[string]string) error {
	srv, err := c.service(ctx)
	if err != nil {
		return err
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{rowValues(columns, record)}}
	_, err = srv.Spreadsheets.Values.Append(c.spreadsheetID, readRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}
	return nil
}

func rowValues(columns []string, record map[string]string) []interface{} {
	row := make([]interface{}, len(columns))
	for i, col := range columns {
		row[i] = record[col]
	}
	return row
}
