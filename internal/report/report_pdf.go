package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Tanggal", 24},
	{"Nomor", 36},
	{"Nama", 44},
	{"Jenis", 30},
	{"Kategori", 34},
	{"Keterangan", 62},
	{"Nominal", 30},
	{"Status", 22},
}

func (s *service) ExportPDF(ctx context.Context, filter ReportFilterRequest) ([]byte, error) {
	data, err := s.Generate(ctx, filter)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Laporan Pengajuan")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	period := "Semua tanggal"
	if filter.StartDate != "" || filter.EndDate != "" {
		period = fmt.Sprintf("%s s/d %s", orDash(filter.StartDate), orDash(filter.EndDate))
	}
	pdf.Cell(0, 7, fmt.Sprintf("Periode: %s", period))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf(
		"Disetujui: %d dari %d pengajuan | Kas: Rp%d | Reimbursement: Rp%d | Barang: %d unit",
		data.Summary.ApprovedRows, data.Summary.TotalRows,
		data.Summary.TotalCash, data.Summary.TotalReimbursement, data.Summary.TotalGoodsQty,
	))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range data.Details {
		cells := []string{
			row.Date,
			row.Number,
			row.EmployeeName,
			row.Type,
			row.Category,
			truncate(row.Description, 48),
			fmt.Sprintf("%d", row.EffectiveNominal),
			row.Status,
		}
		for i, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func truncate(v string, max int) string {
	if len(v) <= max {
		return v
	}
	return v[:max-3] + "..."
}
