package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Client wraps the Google Sheets API for a single spreadsheet tab.
type Client struct {
	service       *gsheets.Service
	spreadsheetID string
	sheetName     string
}

// NewClient creates a Sheets client authenticated with the configured
// service account.
func NewClient(ctx context.Context, config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	creds, err := config.credentialBytes()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := google.JWTConfigFromJSON(creds, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	service, err := gsheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: config.SpreadsheetID,
		sheetName:     config.sheetName(),
	}, nil
}

// HeaderRow returns the first row of the tab, or an empty slice when the
// range has never been written.
func (c *Client) HeaderRow(ctx context.Context) ([]string, error) {
	readRange := fmt.Sprintf("%s!1:1", c.sheetName)
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	if len(resp.Values) == 0 {
		return nil, nil
	}
	return toStrings(resp.Values[0]), nil
}

// AppendRows appends the given rows below the last populated row of the tab.
func (c *Client) AppendRows(ctx context.Context, rows [][]string) error {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	appendRange := fmt.Sprintf("%s!A1", c.sheetName)
	_, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, appendRange, &gsheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAppendFailed, err)
	}
	return nil
}

// AllRows returns every populated row of the tab, header included.
func (c *Client) AllRows(ctx context.Context) ([][]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, c.sheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		rows[i] = toStrings(row)
	}
	return rows, nil
}

func toStrings(row []interface{}) []string {
	cells := make([]string, len(row))
	for i, v := range row {
		cells[i] = fmt.Sprint(v)
	}
	return cells
}
