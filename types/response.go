package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

type LogoutResponse struct {
	LogoutTime  string  `json:"logout_time"`
	HoursWorked float64 `json:"hours_worked"`
}

// AdminOverview backs the admin dashboard page.
type AdminOverview struct {
	TaskStatusCounts map[string]int     `json:"task_status_counts"`
	PendingTasks     []Task             `json:"pending_tasks"`
	PendingLeaves    []LeaveRequest     `json:"pending_leaves"`
	HoursByEmployee  map[string]float64 `json:"hours_by_employee"`
}

// EmployeeOverview backs the employee dashboard page.
type EmployeeOverview struct {
	TaskStatusCounts map[string]int     `json:"task_status_counts"`
	Tasks            []Task             `json:"tasks"`
	Leaves           []LeaveRequest     `json:"leaves"`
	HoursByDate      map[string]float64 `json:"hours_by_date"`
}
