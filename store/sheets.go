package store

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"pos-service/config"
	"pos-service/models"
)

const (
	newSheetRows = 1000
	newSheetCols = 20
)

// SheetStore reads and writes worksheets of one fixed spreadsheet. The
// client is built once at startup and shared by all requests; every data
// access still hits the remote service, nothing is cached locally.
type SheetStore struct {
	svc           *sheets.Service
	spreadsheetID string
	products      string
	orders        string

	mu      sync.Mutex
	ensured map[string]bool
}

func NewSheetStore(ctx context.Context, cfg *config.Config) (*SheetStore, error) {
	svc, err := sheets.NewService(ctx,
		credentialsOption(cfg),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return &SheetStore{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		products:      cfg.ProductsSheet,
		orders:        cfg.OrdersSheet,
		ensured:       make(map[string]bool),
	}, nil
}

// credentialsOption prefers inline credentials, which is what the
// *_FILE secret indirection yields, and falls back to the key file path.
func credentialsOption(cfg *config.Config) option.ClientOption {
	if cfg.CredentialsJSON != "" {
		return option.WithCredentialsJSON([]byte(cfg.CredentialsJSON))
	}
	return option.WithCredentialsFile(cfg.CredentialsFile)
}

// ensureSheet resolves a logical table name to a worksheet, creating it
// at the default size when absent. Existence is only checked once per
// process per name; a worksheet deleted externally after that is not
// re-created until restart. Data reads and writes always hit the remote
// service, only this existence check is memoized.
func (s *SheetStore) ensureSheet(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ensured[name] {
		return nil
	}

	doc, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, sh := range doc.Sheets {
		if sh.Properties != nil && sh.Properties.Title == name {
			s.ensured[name] = true
			return nil
		}
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: name,
					GridProperties: &sheets.GridProperties{
						RowCount:    newSheetRows,
						ColumnCount: newSheetCols,
					},
				},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("create worksheet %q: %w", name, err)
	}
	s.ensured[name] = true
	return nil
}

func (s *SheetStore) LoadProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.loadRows(ctx, s.products)
	if err != nil {
		return nil, err
	}
	items := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		items = append(items, productFromRow(row))
	}
	return items, nil
}

// SaveProducts replaces the entire products worksheet: clear, header,
// then one row per item in the given order.
func (s *SheetStore) SaveProducts(ctx context.Context, items []models.Product) error {
	if err := s.ensureSheet(ctx, s.products); err != nil {
		return err
	}
	if _, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, s.products, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}
	values := make([][]interface{}, 0, len(items)+1)
	values = append(values, productHeader)
	for _, p := range items {
		values = append(values, productToRow(p))
	}
	vr := &sheets.ValueRange{Values: values}
	if _, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, s.products+"!A1", vr).ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	return nil
}

func (s *SheetStore) AppendOrder(ctx context.Context, o models.Order) error {
	if err := s.ensureSheet(ctx, s.orders); err != nil {
		return err
	}
	// header exists iff the first cell is non-empty
	first, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.orders+"!A1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("check orders header: %w", err)
	}
	if len(first.Values) == 0 {
		vr := &sheets.ValueRange{Values: [][]interface{}{orderHeader}}
		if _, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, s.orders+"!A1", vr).ValueInputOption("RAW").Context(ctx).Do(); err != nil {
			return fmt.Errorf("write orders header: %w", err)
		}
	}

	row, err := orderToRow(o)
	if err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	if _, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.orders+"!A1", vr).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do(); err != nil {
		return fmt.Errorf("append order: %w", err)
	}
	return nil
}

func (s *SheetStore) LoadOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.loadRows(ctx, s.orders)
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, orderFromRow(row))
	}
	return orders, nil
}

// loadRows fetches every data row of a worksheet, skipping the header.
func (s *SheetStore) loadRows(ctx context.Context, name string) ([][]interface{}, error) {
	if err := s.ensureSheet(ctx, name); err != nil {
		return nil, err
	}
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, name).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	if len(resp.Values) <= 1 {
		return nil, nil
	}
	return resp.Values[1:], nil
}
