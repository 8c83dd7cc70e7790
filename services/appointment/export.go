// File: services/appointment/export.go
package appointment

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"cliniq/models"
)

const exportSheet = "Appointments"

var exportHeaders = []string{"Patient Name", "Doctor Name", "Date", "Time Slot", "Status", "Notes"}

// Export renders all of a hospital's appointments as an xlsx workbook,
// newest first, matching the admin portal's download.
func (s *DefaultAppointmentService) Export(ctx context.Context, hospitalID string) ([]byte, error) {
	details, err := s.List(ctx, hospitalID, models.AppointmentFilter{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), exportSheet)
	for col, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write export header: %w", err)
		}
	}

	for row, d := range details {
		values := []interface{}{d.PatientName, d.DoctorName, d.Date, d.TimeSlot, d.Status, d.Notes}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write export row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
