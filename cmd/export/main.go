package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pamatshop4/blacklight-backend/config"
	"github.com/pamatshop4/blacklight-backend/pkg/sheets"
	"github.com/xuri/excelize/v2"
)

// Pulls every row of the submissions sheet and writes a local .xlsx
// snapshot, header included.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/export/main.go <output_xlsx_path>")
	}

	outputPath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	client, err := sheets.NewClient(context.Background(), sheets.Config{
		CredentialsJSON: cfg.Sheets.CredentialsJSON,
		SpreadsheetID:   cfg.Sheets.SpreadsheetID,
		SheetName:       cfg.Sheets.SheetName,
	})
	if err != nil {
		log.Fatal("Failed to create sheets client:", err)
	}

	fmt.Printf("Reading submissions from spreadsheet %s\n", cfg.Sheets.SpreadsheetID)
	rows, err := client.AllRows(context.Background())
	if err != nil {
		log.Fatal("Failed to read submissions:", err)
	}
	fmt.Printf("Fetched %d rows\n", len(rows))

	if err := writeSnapshot(outputPath, cfg.Sheets.SheetName, rows); err != nil {
		log.Fatal("Failed to write snapshot:", err)
	}

	fmt.Printf("Snapshot written to %s\n", outputPath)
}

func writeSnapshot(path, sheetName string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = "Sheet1"
	}
	if sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
	}

	for i, row := range rows {
		for j, cell := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to compute cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cellName, cell); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cellName, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save xlsx: %w", err)
	}
	return nil
}
