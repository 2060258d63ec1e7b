package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/intellij1704/mobile-display-sub002/models"
)

var leadExportHeader = []string{"Name", "Phone", "Shop", "City", "Message", "Created"}

// ExportLeadsXLSX renders the shop-owner leads as an XLSX workbook
func ExportLeadsXLSX(leads []models.ShopOwnerLead) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, title := range leadExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build sheet: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to build sheet: %w", err)
		}
	}

	for row, lead := range leads {
		values := []interface{}{
			lead.Name, lead.Phone, lead.ShopName, lead.City, lead.Message,
			lead.CreatedAt.Format("02 Jan 2006 15:04"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build sheet: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to build sheet: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportLeadsPDF renders the shop-owner leads as a PDF table
func ExportLeadsPDF(leads []models.ShopOwnerLead) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Shop Owner Leads")
	pdf.Ln(12)

	widths := []float64{40, 30, 45, 30, 90, 35}

	pdf.SetFont("Helvetica", "B", 9)
	for i, title := range leadExportHeader {
		pdf.CellFormat(widths[i], 7, title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, lead := range leads {
		values := []string{
			lead.Name, lead.Phone, lead.ShopName, lead.City, lead.Message,
			lead.CreatedAt.Format("02 Jan 2006"),
		}
		for i, value := range values {
			pdf.CellFormat(widths[i], 7, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}
	return buf.Bytes(), nil
}
