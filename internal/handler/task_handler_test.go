package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"task-tracker-backend/internal/model"
	"task-tracker-backend/internal/notifier"
	"task-tracker-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type fakeTaskRepo struct {
	tasks  map[uint]*model.Task
	nextID uint
}

func (f *fakeTaskRepo) Create(t *model.Task) error {
	f.nextID++
	t.ID = f.nextID
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Update(t *model.Task) error {
	if _, ok := f.tasks[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Delete(t *model.Task) error {
	delete(f.tasks, t.ID)
	return nil
}

func (f *fakeTaskRepo) FindByID(id uint) (*model.Task, error) {
	if t, ok := f.tasks[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTaskRepo) Find(filter repository.TaskFilter) ([]model.Task, error) {
	out := []model.Task{}
	for _, t := range f.tasks {
		out = append(out, *t)
	}
	return out, nil
}

type stubUserRepo struct {
	users map[uint]*model.User
}

func (s *stubUserRepo) Create(u *model.User) error { return nil }
func (s *stubUserRepo) Update(u *model.User) error { return nil }
func (s *stubUserRepo) Delete(u *model.User) error { return nil }

func (s *stubUserRepo) FindByID(id uint) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByEmail(email string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByIDs(ids []uint) ([]model.User, error) { return nil, nil }
func (s *stubUserRepo) Find(department string) ([]model.User, error) {
	return nil, nil
}

func (s *stubUserRepo) CountByDepartment(department string) (int64, error) {
	var n int64
	for _, u := range s.users {
		if u.Department == department {
			n++
		}
	}
	return n, nil
}

type capturedNotifications struct {
	created []model.Notification
}

func (c *capturedNotifications) Create(n *model.Notification) error { return nil }
func (c *capturedNotifications) CreateMany(ns []model.Notification) error {
	c.created = append(c.created, ns...)
	return nil
}
func (c *capturedNotifications) Update(n *model.Notification) error { return nil }
func (c *capturedNotifications) FindByID(id uint) (*model.Notification, error) {
	return nil, gorm.ErrRecordNotFound
}
func (c *capturedNotifications) FindByRecipient(recipientID uint, limit int) ([]model.Notification, error) {
	return nil, nil
}
func (c *capturedNotifications) MarkAllRead(recipientID uint) error { return nil }

// asUser injects a verified claim set like the auth middleware would.
func asUser(actor model.Claims) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("claims", actor)
		return c.Next()
	}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newTaskApp(repo *fakeTaskRepo, notifications *capturedNotifications, actor model.Claims) *fiber.App {
	n := notifier.New(notifications, &stubUserRepo{}, nil, zerolog.Nop())
	hdl := NewTaskHandler(repo, n)

	app := fiber.New()
	app.Use(asUser(actor))
	app.Post("/api/tasks", hdl.Create)
	app.Patch("/api/tasks/:id", hdl.Update)
	return app
}

func seedTask(status model.TaskStatus) *fakeTaskRepo {
	return &fakeTaskRepo{
		nextID: 1,
		tasks: map[uint]*model.Task{
			1: {
				Model:        gorm.Model{ID: 1},
				Title:        "Quarterly report",
				AssignedToID: 2,
				AssignedByID: 3,
				Status:       status,
			},
		},
	}
}

func TestTaskCreateNotifiesAssignee(t *testing.T) {
	repo := &fakeTaskRepo{tasks: map[uint]*model.Task{}}
	notifications := &capturedNotifications{}
	app := newTaskApp(repo, notifications, model.Claims{UserID: 3, Role: model.RoleDirector, Department: "Engineering"})

	resp, err := app.Test(jsonRequest("POST", "/api/tasks", `{"title":"Quarterly report","assigned_to":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	if len(notifications.created) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifications.created))
	}
	n := notifications.created[0]
	if n.RecipientID != 2 || n.Type != model.NotifTaskAssigned {
		t.Errorf("notification = recipient %d type %s, want assignee 2 TASK_ASSIGNED", n.RecipientID, n.Type)
	}
}

func TestTaskCompletionNotification(t *testing.T) {
	assignee := model.Claims{UserID: 2, Role: model.RoleEmployee, Department: "Engineering"}

	t.Run("transition to completed notifies the assigner", func(t *testing.T) {
		repo := seedTask(model.TaskInProgress)
		notifications := &capturedNotifications{}
		app := newTaskApp(repo, notifications, assignee)

		resp, err := app.Test(jsonRequest("PATCH", "/api/tasks/1", `{"status":"COMPLETED"}`))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		if len(notifications.created) != 1 {
			t.Fatalf("notifications = %d, want 1", len(notifications.created))
		}
		n := notifications.created[0]
		if n.RecipientID != 3 {
			t.Errorf("recipient = %d, want the assigner 3", n.RecipientID)
		}
		if n.Type != model.NotifTaskUpdated || n.Title != "Task Completed" {
			t.Errorf("notification = %s %q", n.Type, n.Title)
		}
		if repo.tasks[1].Status != model.TaskCompleted {
			t.Errorf("stored status = %s, want COMPLETED", repo.tasks[1].Status)
		}
	})

	t.Run("patching an already completed task stays silent", func(t *testing.T) {
		repo := seedTask(model.TaskCompleted)
		notifications := &capturedNotifications{}
		app := newTaskApp(repo, notifications, assignee)

		resp, err := app.Test(jsonRequest("PATCH", "/api/tasks/1", `{"status":"COMPLETED"}`))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if len(notifications.created) != 0 {
			t.Fatalf("notifications = %d, want none on COMPLETED to COMPLETED", len(notifications.created))
		}
	})

	t.Run("non-completion patch stays silent", func(t *testing.T) {
		repo := seedTask(model.TaskPending)
		notifications := &capturedNotifications{}
		app := newTaskApp(repo, notifications, assignee)

		if _, err := app.Test(jsonRequest("PATCH", "/api/tasks/1", `{"status":"IN_PROGRESS"}`)); err != nil {
			t.Fatal(err)
		}
		if len(notifications.created) != 0 {
			t.Fatalf("notifications = %d, want none", len(notifications.created))
		}
	})

	t.Run("outsider may not patch", func(t *testing.T) {
		repo := seedTask(model.TaskInProgress)
		notifications := &capturedNotifications{}
		app := newTaskApp(repo, notifications, model.Claims{UserID: 9, Role: model.RoleEmployee})

		resp, err := app.Test(jsonRequest("PATCH", "/api/tasks/1", `{"status":"COMPLETED"}`))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusForbidden {
			t.Fatalf("status = %d, want 403", resp.StatusCode)
		}
	})
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return body
}
