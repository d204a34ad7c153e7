package types

const (
	USER_ROLE_ADMIN    = "admin"
	USER_ROLE_EMPLOYEE = "employee"
)

const (
	TASK_STATUS_NOT_STARTED = "Not Started"
	TASK_STATUS_IN_PROGRESS = "In Progress"
	TASK_STATUS_COMPLETED   = "Completed"
)

const (
	TASK_SEVERITY_LOW    = "Low"
	TASK_SEVERITY_MEDIUM = "Medium"
	TASK_SEVERITY_HIGH   = "High"
)

const (
	LEAVE_TYPE_VACATION       = "Vacation"
	LEAVE_TYPE_SICK           = "Sick Leave"
	LEAVE_TYPE_WORK_FROM_HOME = "Work from Home"
)

const (
	LEAVE_STATUS_PENDING  = "Pending"
	LEAVE_STATUS_APPROVED = "Approved"
	LEAVE_STATUS_REJECTED = "Rejected"
)

// Serialization formats for the CSV date and time columns.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Principal is the authenticated actor on whose behalf an operation
// runs. Services never read ambient session state; callers pass this
// explicitly.
type Principal struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == USER_ROLE_ADMIN
}

type User struct {
	Username string `json:"username" csv:"username"`
	Password string `json:"-" csv:"password"`
	Role     string `json:"role" csv:"role"`
}

type Task struct {
	TaskID      string `json:"task_id" csv:"task_id"`
	Title       string `json:"title" csv:"title"`
	Description string `json:"description" csv:"description"`
	AssignedTo  string `json:"assigned_to" csv:"assigned_to"`
	Deadline    string `json:"deadline" csv:"deadline"`
	Severity    string `json:"severity" csv:"severity"`
	Status      string `json:"status" csv:"status"`
	CreatedBy   string `json:"created_by" csv:"created_by"`
	Approved    bool   `json:"approved" csv:"approved"`
}

type LeaveRequest struct {
	LeaveID   string `json:"leave_id" csv:"leave_id"`
	Employee  string `json:"employee" csv:"employee"`
	StartDate string `json:"start_date" csv:"start_date"`
	EndDate   string `json:"end_date" csv:"end_date"`
	LeaveType string `json:"leave_type" csv:"leave_type"`
	Status    string `json:"status" csv:"status"`
	Reason    string `json:"reason" csv:"reason"`
}

// TimesheetEntry is one (employee, date) row of the login/logout
// timesheet. LogoutTime and HoursWorked stay empty/zero until logout;
// once LogoutTime is set the entry is terminal for that date.
type TimesheetEntry struct {
	TimesheetID string  `json:"timesheet_id" csv:"timesheet_id"`
	Employee    string  `json:"employee" csv:"employee"`
	Date        string  `json:"date" csv:"date"`
	LoginTime   string  `json:"login_time" csv:"login_time"`
	LogoutTime  string  `json:"logout_time" csv:"logout_time"`
	Tasks       string  `json:"tasks" csv:"tasks"`
	TaskNotes   string  `json:"task_notes" csv:"task_notes"`
	HoursWorked float64 `json:"hours_worked" csv:"hours_worked"`
}

func ValidRole(role string) bool {
	return role == USER_ROLE_ADMIN || role == USER_ROLE_EMPLOYEE
}

func ValidTaskStatus(status string) bool {
	switch status {
	case TASK_STATUS_NOT_STARTED, TASK_STATUS_IN_PROGRESS, TASK_STATUS_COMPLETED:
		return true
	}
	return false
}

func ValidTaskSeverity(severity string) bool {
	switch severity {
	case TASK_SEVERITY_LOW, TASK_SEVERITY_MEDIUM, TASK_SEVERITY_HIGH:
		return true
	}
	return false
}

func ValidLeaveType(leaveType string) bool {
	switch leaveType {
	case LEAVE_TYPE_VACATION, LEAVE_TYPE_SICK, LEAVE_TYPE_WORK_FROM_HOME:
		return true
	}
	return false
}
