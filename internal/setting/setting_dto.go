package setting

type UpdateSettingRequest struct {
	Open *bool `json:"open" binding:"required"`
}

type SettingResponse struct {
	SubmissionOpen bool   `json:"submission_open"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}
