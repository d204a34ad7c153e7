package types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type ResetPasswordRequest struct {
	Username    string `json:"username"`
	NewPassword string `json:"new_password"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
	Deadline    string `json:"deadline"`
	Severity    string `json:"severity"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

type SubmitLeaveRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	LeaveType string `json:"leave_type"`
	Reason    string `json:"reason"`
}

type DecideLeaveRequest struct {
	Outcome string `json:"outcome"`
}

type UpdateProgressRequest struct {
	Tasks []string `json:"tasks"`
	Notes string   `json:"notes"`
}
