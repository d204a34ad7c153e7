package service

import (
	"testing"

	"github.com/jagadeeshwarid/TaskTrackerPro/repository"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

func TestReportOverviews(t *testing.T) {
	store := newTestStore(t)
	taskRepo := repository.NewTaskRepo(store.Tasks)
	leaveRepo := repository.NewLeaveRepo(store.Leaves)
	timesheetRepo := repository.NewTimesheetRepo(store.Timesheets)
	svc := NewReportService(taskRepo, leaveRepo, timesheetRepo)

	tasks := []types.Task{
		{TaskID: "1", Title: "A", AssignedTo: "alice", Status: types.TASK_STATUS_COMPLETED, CreatedBy: "admin", Approved: true},
		{TaskID: "2", Title: "B", AssignedTo: "alice", Status: types.TASK_STATUS_IN_PROGRESS, CreatedBy: "alice", Approved: false},
		{TaskID: "3", Title: "C", AssignedTo: "bob", Status: types.TASK_STATUS_COMPLETED, CreatedBy: "admin", Approved: true},
	}
	for _, task := range tasks {
		if err := taskRepo.Create(task); err != nil {
			t.Fatalf("Create task: %v", err)
		}
	}
	leaves := []types.LeaveRequest{
		{LeaveID: "l1", Employee: "alice", Status: types.LEAVE_STATUS_PENDING},
		{LeaveID: "l2", Employee: "bob", Status: types.LEAVE_STATUS_APPROVED},
	}
	for _, leave := range leaves {
		if err := leaveRepo.Create(leave); err != nil {
			t.Fatalf("Create leave: %v", err)
		}
	}
	entries := []types.TimesheetEntry{
		{TimesheetID: "t1", Employee: "alice", Date: "2024-05-06", HoursWorked: 8},
		{TimesheetID: "t2", Employee: "alice", Date: "2024-05-07", HoursWorked: 7.5},
		{TimesheetID: "t3", Employee: "bob", Date: "2024-05-06", HoursWorked: 6},
	}
	for _, entry := range entries {
		if err := timesheetRepo.Create(entry); err != nil {
			t.Fatalf("Create entry: %v", err)
		}
	}

	admin, err := svc.AdminOverview()
	if err != nil {
		t.Fatalf("AdminOverview: %v", err)
	}
	if admin.TaskStatusCounts[types.TASK_STATUS_COMPLETED] != 2 {
		t.Fatalf("expected 2 completed tasks, got %d", admin.TaskStatusCounts[types.TASK_STATUS_COMPLETED])
	}
	if len(admin.PendingTasks) != 1 || admin.PendingTasks[0].TaskID != "2" {
		t.Fatalf("unexpected pending tasks %+v", admin.PendingTasks)
	}
	if len(admin.PendingLeaves) != 1 || admin.PendingLeaves[0].LeaveID != "l1" {
		t.Fatalf("unexpected pending leaves %+v", admin.PendingLeaves)
	}
	if admin.HoursByEmployee["alice"] != 15.5 || admin.HoursByEmployee["bob"] != 6 {
		t.Fatalf("unexpected hours %+v", admin.HoursByEmployee)
	}

	employee, err := svc.EmployeeOverview(alicePrincipal)
	if err != nil {
		t.Fatalf("EmployeeOverview: %v", err)
	}
	if len(employee.Tasks) != 2 {
		t.Fatalf("alice must see her 2 assigned tasks, got %d", len(employee.Tasks))
	}
	if len(employee.Leaves) != 1 || employee.Leaves[0].LeaveID != "l1" {
		t.Fatalf("unexpected leaves %+v", employee.Leaves)
	}
	if employee.HoursByDate["2024-05-07"] != 7.5 {
		t.Fatalf("unexpected hours by date %+v", employee.HoursByDate)
	}
}
