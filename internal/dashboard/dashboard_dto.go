package dashboard

// BadgeCountsResponse menjadi sumber badge di sidebar admin yang
// dipoll tiap 30 detik oleh portal.
type BadgeCountsResponse struct {
	PendingGoods         int64 `json:"pending_goods"`
	PendingCash          int64 `json:"pending_cash"`
	PendingReimbursement int64 `json:"pending_reimbursement"`
	PendingLeave         int64 `json:"pending_leave"`
	TotalPending         int64 `json:"total_pending"`
}
