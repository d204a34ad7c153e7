package service

import (
	"errors"
	"testing"

	"github.com/jagadeeshwarid/TaskTrackerPro/repository"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

var (
	adminPrincipal = types.Principal{Username: "admin", Role: types.USER_ROLE_ADMIN}
	alicePrincipal = types.Principal{Username: "alice", Role: types.USER_ROLE_EMPLOYEE}
	bobPrincipal   = types.Principal{Username: "bob", Role: types.USER_ROLE_EMPLOYEE}
)

func newTaskService(t *testing.T) TaskService {
	t.Helper()
	return NewTaskService(repository.NewTaskRepo(newTestStore(t).Tasks))
}

func taskRequest(title, assignedTo string) types.CreateTaskRequest {
	return types.CreateTaskRequest{
		Title:       title,
		Description: "desc for " + title,
		AssignedTo:  assignedTo,
		Deadline:    "2024-06-30",
		Severity:    types.TASK_SEVERITY_MEDIUM,
	}
}

func TestTaskCreate_ApprovalDefaults(t *testing.T) {
	svc := newTaskService(t)

	byEmployee, err := svc.Create(taskRequest("employee task", "alice"), alicePrincipal)
	if err != nil {
		t.Fatalf("Create (employee): %v", err)
	}
	if byEmployee.Approved {
		t.Fatal("employee-created task must start unapproved")
	}
	if byEmployee.Status != types.TASK_STATUS_NOT_STARTED {
		t.Fatalf("unexpected initial status %q", byEmployee.Status)
	}

	byAdmin, err := svc.Create(taskRequest("admin task", "alice"), adminPrincipal)
	if err != nil {
		t.Fatalf("Create (admin): %v", err)
	}
	if !byAdmin.Approved {
		t.Fatal("admin-created task must be auto-approved")
	}
	if byAdmin.TaskID == byEmployee.TaskID {
		t.Fatal("task ids must be unique")
	}
}

func TestTaskCreate_Validation(t *testing.T) {
	svc := newTaskService(t)

	cases := []struct {
		name string
		req  types.CreateTaskRequest
	}{
		{"empty title", types.CreateTaskRequest{Description: "d", AssignedTo: "alice", Severity: types.TASK_SEVERITY_LOW}},
		{"empty description", types.CreateTaskRequest{Title: "t", AssignedTo: "alice", Severity: types.TASK_SEVERITY_LOW}},
		{"empty assignee", types.CreateTaskRequest{Title: "t", Description: "d", Severity: types.TASK_SEVERITY_LOW}},
		{"bad severity", types.CreateTaskRequest{Title: "t", Description: "d", AssignedTo: "alice", Severity: "Critical"}},
		{"bad deadline", types.CreateTaskRequest{Title: "t", Description: "d", AssignedTo: "alice", Severity: types.TASK_SEVERITY_LOW, Deadline: "30-06-2024"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(tc.req, alicePrincipal); !errors.Is(err, types.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestTaskList_ScopesByRole(t *testing.T) {
	svc := newTaskService(t)

	a, err := svc.Create(taskRequest("A", "alice"), adminPrincipal)
	if err != nil {
		t.Fatalf("Create A: %v", err)
	}
	if _, err := svc.Create(taskRequest("B", "bob"), adminPrincipal); err != nil {
		t.Fatalf("Create B: %v", err)
	}

	aliceTasks, err := svc.List(alicePrincipal)
	if err != nil {
		t.Fatalf("List (alice): %v", err)
	}
	if len(aliceTasks) != 1 || aliceTasks[0].TaskID != a.TaskID {
		t.Fatalf("alice must see exactly her task, got %+v", aliceTasks)
	}

	adminTasks, err := svc.List(adminPrincipal)
	if err != nil {
		t.Fatalf("List (admin): %v", err)
	}
	if len(adminTasks) != 2 {
		t.Fatalf("admin must see all tasks, got %d", len(adminTasks))
	}
}

func TestTaskList_IncludesTasksCreatedByViewer(t *testing.T) {
	svc := newTaskService(t)

	// Alice created it but assigned it to bob; both should see it.
	created, err := svc.Create(taskRequest("handoff", "bob"), alicePrincipal)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, viewer := range []types.Principal{alicePrincipal, bobPrincipal} {
		tasks, err := svc.List(viewer)
		if err != nil {
			t.Fatalf("List (%s): %v", viewer.Username, err)
		}
		if len(tasks) != 1 || tasks[0].TaskID != created.TaskID {
			t.Fatalf("%s must see the task, got %+v", viewer.Username, tasks)
		}
	}
}

func TestTaskUpdateStatus(t *testing.T) {
	svc := newTaskService(t)

	task, err := svc.Create(taskRequest("work", "alice"), adminPrincipal)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Assignee can move it anywhere, including backwards.
	if err := svc.UpdateStatus(task.TaskID, types.TASK_STATUS_COMPLETED, alicePrincipal); err != nil {
		t.Fatalf("UpdateStatus (assignee): %v", err)
	}
	if err := svc.UpdateStatus(task.TaskID, types.TASK_STATUS_NOT_STARTED, adminPrincipal); err != nil {
		t.Fatalf("UpdateStatus (admin, backwards): %v", err)
	}

	// A bystander employee cannot.
	if err := svc.UpdateStatus(task.TaskID, types.TASK_STATUS_IN_PROGRESS, bobPrincipal); !errors.Is(err, types.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if err := svc.UpdateStatus(task.TaskID, "Done", alicePrincipal); !errors.Is(err, types.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown status, got %v", err)
	}
	if err := svc.UpdateStatus("missing", types.TASK_STATUS_COMPLETED, adminPrincipal); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskApprovalFlow(t *testing.T) {
	svc := newTaskService(t)

	task, err := svc.Create(taskRequest("needs approval", "alice"), alicePrincipal)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	pending, err := svc.ListPendingApproval()
	if err != nil {
		t.Fatalf("ListPendingApproval: %v", err)
	}
	if len(pending) != 1 || pending[0].TaskID != task.TaskID {
		t.Fatalf("expected the new task in the approval queue, got %+v", pending)
	}

	if err := svc.Approve(task.TaskID); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	pending, err = svc.ListPendingApproval()
	if err != nil {
		t.Fatalf("ListPendingApproval after approve: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("approval queue must be empty, got %+v", pending)
	}

	tasks, err := svc.List(alicePrincipal)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !tasks[0].Approved {
		t.Fatal("task must be approved after Approve")
	}

	if err := svc.Approve("missing"); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskDelete_RemovesRecord(t *testing.T) {
	svc := newTaskService(t)

	task, err := svc.Create(taskRequest("reject me", "alice"), alicePrincipal)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(task.TaskID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	tasks, err := svc.List(adminPrincipal)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("rejection must delete the record entirely, got %+v", tasks)
	}

	if err := svc.Delete(task.TaskID); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
