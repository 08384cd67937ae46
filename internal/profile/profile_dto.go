package profile

type InviteUserRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	FullName         string `json:"full_name" binding:"required"`
	Role             string `json:"role" binding:"required"`
	Division         string `json:"division"`
	Position         string `json:"position"`
	EmploymentStatus string `json:"employment_status"`
	JoinDate         string `json:"join_date" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	Role             string `json:"role" binding:"required"`
	Division         string `json:"division"`
	Position         string `json:"position"`
	EmploymentStatus string `json:"employment_status"`
	JoinDate         string `json:"join_date" binding:"required"`
}

type ProfileResponse struct {
	UserID           string `json:"user_id"`
	Email            string `json:"email,omitempty"`
	FullName         string `json:"full_name"`
	Role             string `json:"role"`
	Division         string `json:"division,omitempty"`
	Position         string `json:"position,omitempty"`
	EmploymentStatus string `json:"employment_status,omitempty"`
	JoinDate         string `json:"join_date"`
}
