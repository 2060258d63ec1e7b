package services

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/intellij1704/mobile-display-sub002/models"
)

var invoiceLog = componentLogger("invoice")

// NextInvoiceNumber assigns the next invoice number from the single counter
// row, held under a row lock for the duration of the transaction so two
// concurrent delivery transitions cannot draw the same number.
func NextInvoiceNumber(tx *gorm.DB) (int, error) {
	query := tx
	// sqlite has no row locks; its writes are serialized by the file lock
	if tx.Dialector.Name() == "postgres" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var counter models.InvoiceCounter
	err := query.First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		counter = models.InvoiceCounter{Next: 1}
		if err := tx.Create(&counter).Error; err != nil {
			return 0, fmt.Errorf("failed to create invoice counter: %w", err)
		}
	} else if err != nil {
		return 0, fmt.Errorf("failed to lock invoice counter: %w", err)
	}

	number := counter.Next
	if err := tx.Model(&counter).UpdateColumn("next", number+1).Error; err != nil {
		return 0, fmt.Errorf("failed to bump invoice counter: %w", err)
	}
	return number, nil
}

// RenderInvoicePDF renders a simple A4 invoice for a delivered order
func RenderInvoicePDF(order *models.Order, number int) ([]byte, error) {
	session := order.CheckoutSession

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Mobile Display - Tax Invoice")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Invoice No: INV-%06d", number))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Order ID: %s", order.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", order.UpdatedAt.Format("02 Jan 2006")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Ship to")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, session.AddressName)
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("%s, %s, %s - %s", session.AddressLine, session.AddressCity, session.AddressState, session.AddressPin))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 7, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Unit", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range session.Items {
		title := item.Title
		if item.Color != "" || item.Quality != "" {
			title = fmt.Sprintf("%s (%s %s)", item.Title, item.Color, item.Quality)
		}
		pdf.CellFormat(90, 7, title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", item.UnitPrice*float64(item.Quantity)), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	for _, row := range []struct {
		label  string
		amount float64
	}{
		{"Subtotal", session.Subtotal},
		{"Delivery", session.DeliveryFee},
		{"COD fee", session.CODFee},
		{"Total", session.Total},
	} {
		pdf.CellFormat(150, 6, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", row.amount), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateInvoice assigns an invoice number to a delivered order, renders
// the PDF and uploads it, persisting the number and URL on the order row.
func GenerateInvoice(db *gorm.DB, order *models.Order) error {
	var number int
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		number, err = NextInvoiceNumber(tx)
		if err != nil {
			return err
		}
		return tx.Model(order).Update("invoice_number", number).Error
	})
	if err != nil {
		return err
	}

	pdfBytes, err := RenderInvoicePDF(order, number)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("invoices/INV-%06d.pdf", number)
	if _, err := GetS3Service().UploadBytes(key, "application/pdf", pdfBytes); err != nil {
		return err
	}

	url := GetS3Service().PublicURL(key)
	if err := db.Model(order).Update("invoice_url", url).Error; err != nil {
		return err
	}

	num := number
	order.InvoiceNumber = &num
	order.InvoiceURL = url
	invoiceLog.Infof("invoice INV-%06d generated for order %s", number, order.ID)
	return nil
}
