package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const excelSheet = "Laporan"

var excelHeaders = []string{
	"Tanggal", "Nomor", "Nama", "Jenis", "Kategori", "Keterangan",
	"Qty Diminta", "Qty Disetujui", "Nominal Diminta", "Nominal Disetujui",
	"Nominal Efektif", "Status",
}

func (s *service) ExportExcel(ctx context.Context, filter ReportFilterRequest) ([]byte, error) {
	data, err := s.Generate(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(excelSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range excelHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(excelSheet, cell, header)
	}

	for rowIdx, row := range data.Details {
		values := []any{
			row.Date,
			row.Number,
			row.EmployeeName,
			row.Type,
			row.Category,
			row.Description,
			intOrNil(row.RequestedQty),
			intOrNil(row.ApprovedQty),
			int64OrNil(row.RequestedAmount),
			int64OrNil(row.ApprovedAmount),
			row.EffectiveNominal,
			row.Status,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(excelSheet, cell, v)
		}
	}

	summaryRow := len(data.Details) + 3
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	f.SetCellValue(excelSheet, cell, fmt.Sprintf(
		"Disetujui: %d dari %d | Kas: %d | Reimbursement: %d | Barang: %d unit",
		data.Summary.ApprovedRows, data.Summary.TotalRows,
		data.Summary.TotalCash, data.Summary.TotalReimbursement, data.Summary.TotalGoodsQty,
	))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func intOrNil(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func int64OrNil(v *int64) any {
	if v == nil {
		return ""
	}
	return *v
}
