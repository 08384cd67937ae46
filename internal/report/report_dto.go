package report

type ReportFilterRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Type      string `form:"type"`
}

type ReportSummary struct {
	TotalRows          int   `json:"total_rows"`
	ApprovedRows       int   `json:"approved_rows"`
	TotalGoodsQty      int   `json:"total_goods_qty"`
	TotalCash          int64 `json:"total_cash"`
	TotalReimbursement int64 `json:"total_reimbursement"`
}

// ReportRow adalah satu baris detail. EffectiveNominal memakai nominal
// disetujui bila baris APPROVED dan nominalnya terisi, selain itu
// memakai nominal yang diminta.
type ReportRow struct {
	Date             string `json:"date"`
	Number           string `json:"number"`
	EmployeeName     string `json:"employee_name"`
	Type             string `json:"type"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	RequestedQty     *int   `json:"requested_qty,omitempty"`
	ApprovedQty      *int   `json:"approved_qty,omitempty"`
	RequestedAmount  *int64 `json:"requested_amount,omitempty"`
	ApprovedAmount   *int64 `json:"approved_amount,omitempty"`
	EffectiveNominal int64  `json:"effective_nominal"`
	Status           string `json:"status"`
}

type ReportResponse struct {
	Summary ReportSummary `json:"summary"`
	Details []ReportRow   `json:"details"`
}
