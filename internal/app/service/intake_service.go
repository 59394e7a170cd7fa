package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/pamatshop4/blacklight-backend/internal/app/model"
	"github.com/pamatshop4/blacklight-backend/pkg/logger"
	"github.com/pamatshop4/blacklight-backend/pkg/util"
)

var (
	ErrNotConfigured = errors.New("submission sheet is not configured")
)

// RowStore is the slice of the spreadsheet API the intake pipeline needs.
// *sheets.Client satisfies it; tests use a fake.
type RowStore interface {
	HeaderRow(ctx context.Context) ([]string, error)
	AppendRows(ctx context.Context, rows [][]string) error
}

type IntakeService interface {
	// Submit flattens a validated record into a sheet row and appends it,
	// writing the header row first if the sheet has never been written.
	Submit(ctx context.Context, record *model.BusinessIntakeRecord, tags []string) error
	// Columns returns the sheet's fixed column order.
	Columns() []string
}

type intakeService struct {
	store RowStore
}

func NewIntakeService(store RowStore) IntakeService {
	return &intakeService{store: store}
}

func (s *intakeService) Columns() []string {
	return model.Columns
}

func (s *intakeService) Submit(ctx context.Context, record *model.BusinessIntakeRecord, tags []string) error {
	if s.store == nil {
		return ErrNotConfigured
	}

	header, err := s.store.HeaderRow(ctx)
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}

	rows := make([][]string, 0, 2)
	if len(header) == 0 {
		// First submission ever: prepend the header row. Two concurrent
		// first submissions can both take this branch and write duplicate
		// headers; the read-then-append against the remote sheet is not
		// atomic and no locking is attempted.
		logger.Info("Bootstrapping submission sheet header row", map[string]interface{}{
			"columns": len(model.Columns),
		})
		rows = append(rows, model.Columns)
	}
	rows = append(rows, buildRow(record, tags))

	if err := s.store.AppendRows(ctx, rows); err != nil {
		return fmt.Errorf("failed to append submission row: %w", err)
	}

	logger.Info("Submission appended", map[string]interface{}{
		"business_name": record.BusinessName,
		"rows_written":  len(rows),
	})
	return nil
}

// buildRow renders the record as display strings in model.Columns order.
// Booleans become "Yes"/"No", lists are comma-joined, and the location list
// becomes a single JSON-encoded cell. Not_USA is always derived from
// is_usa_based, never taken from the submission.
func buildRow(record *model.BusinessIntakeRecord, tags []string) []string {
	notUSA := 1
	if record.IsUSABased {
		notUSA = 0
	}

	return []string{
		record.BusinessName,
		record.Category,
		record.Description,
		record.Products,
		record.Website,
		record.Phone,
		record.Email,
		record.ContactFirst,
		record.ContactLast,
		record.Street,
		record.Street2,
		record.City,
		record.State,
		record.ZipCode,
		util.JoinTags(tags),
		util.YesNo(record.AfricanAmerican),
		util.YesNo(record.WomenOwned),
		record.TypeOfBusiness,
		util.YesNo(record.IsUSABased),
		strconv.Itoa(notUSA),
		util.YesNo(record.ConsentMarketing),
		record.Facebook,
		record.Instagram,
		record.LinkedIn,
		util.JoinTags(record.Keywords),
		util.YesNo(record.HasMultipleLocations),
		encodeLocations(record.AdditionalLocations),
	}
}

func encodeLocations(locations []model.AdditionalLocation) string {
	if len(locations) == 0 {
		return "[]"
	}
	encoded, err := json.Marshal(locations)
	if err != nil {
		// Locations are plain strings; this cannot realistically fail.
		return "[]"
	}
	return string(encoded)
}
