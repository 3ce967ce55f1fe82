package service

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/moghalakrambaig/sparkle-clean-service/internal/model"
)

var exportColumns = []string{"ID", "Booking #", "Name", "Email", "Phone", "Address", "Service", "Date", "Time", "Status"}

// WriteBookingsXLSX записывает список заявок в xlsx-файл для выгрузки из админки.
func WriteBookingsXLSX(wr io.Writer, bookings []model.Booking) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	f.SetSheetName("Sheet1", sheet)

	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	// Жирный шрифт для строки заголовков.
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, 1)
		endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		_ = f.SetCellStyle(sheet, startCell, endCell, style)
	}

	for rowIdx, b := range bookings {
		values := []interface{}{
			b.ID, b.BookingNumber, b.Name, b.Email, b.Phone,
			b.Address, b.Service, b.Date, b.Time, string(b.Status),
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}

	if err := f.Write(wr); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}

	return nil
}
