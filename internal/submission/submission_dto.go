package submission

import "io"

type CreateSubmissionRequest struct {
	Type            string `form:"type" binding:"required"`
	ItemName        string `form:"item_name"`
	Category        string `form:"category" binding:"required"`
	Description     string `form:"description" binding:"required"`
	RequestedQty    *int   `form:"requested_qty"`
	RequestedAmount *int64 `form:"requested_amount"`
}

// DecideSubmissionRequest menimpa seluruh field keputusan sekaligus.
// Keputusan boleh diulang berapa kali pun dengan hasil yang sama.
type DecideSubmissionRequest struct {
	Status         string  `json:"status" binding:"required"`
	AdminNote      *string `json:"admin_note"`
	ApprovedQty    *int    `json:"approved_qty"`
	ApprovedAmount *int64  `json:"approved_amount"`
}

type ListFilterRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Search    string `form:"search"`
	Category  string `form:"category"`
	Status    string `form:"status"`
	Type      string `form:"type"`
}

type Evidence struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type SubmissionResponse struct {
	ID                string  `json:"id"`
	Number            string  `json:"number"`
	Type              string  `json:"type"`
	UserID            string  `json:"user_id"`
	EmployeeName      string  `json:"employee_name,omitempty"`
	ItemName          *string `json:"item_name,omitempty"`
	Category          string  `json:"category"`
	Description       string  `json:"description"`
	RequestedQty      *int    `json:"requested_qty,omitempty"`
	RequestedAmount   *int64  `json:"requested_amount,omitempty"`
	ApprovedQty       *int    `json:"approved_qty,omitempty"`
	ApprovedAmount    *int64  `json:"approved_amount,omitempty"`
	EvidencePath      *string `json:"evidence_path,omitempty"`
	TransferProofPath *string `json:"transfer_proof_path,omitempty"`
	Status            string  `json:"status"`
	AdminNote         *string `json:"admin_note,omitempty"`
	DecidedBy         *string `json:"decided_by,omitempty"`
	DecidedAt         *string `json:"decided_at,omitempty"`
	CreatedAt         string  `json:"created_at"`
}
