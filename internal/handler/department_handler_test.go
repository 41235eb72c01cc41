package handler

import (
	"net/http/httptest"
	"testing"

	"task-tracker-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type fakeDepartmentRepo struct {
	departments map[uint]*model.Department
	deleteCalls int
}

func (f *fakeDepartmentRepo) Create(d *model.Department) error { return nil }
func (f *fakeDepartmentRepo) Update(d *model.Department) error { return nil }

func (f *fakeDepartmentRepo) Delete(d *model.Department) error {
	f.deleteCalls++
	delete(f.departments, d.ID)
	return nil
}

func (f *fakeDepartmentRepo) FindByID(id uint) (*model.Department, error) {
	if d, ok := f.departments[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDepartmentRepo) FindByName(name string) (*model.Department, error) {
	for _, d := range f.departments {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDepartmentRepo) FindAll() ([]model.Department, error) {
	out := []model.Department{}
	for _, d := range f.departments {
		out = append(out, *d)
	}
	return out, nil
}

func newDepartmentApp(repo *fakeDepartmentRepo, users *stubUserRepo) *fiber.App {
	hdl := NewDepartmentHandler(repo, users)

	app := fiber.New()
	app.Use(asUser(model.Claims{UserID: 1, Role: model.RoleAdmin}))
	app.Get("/api/departments", hdl.List)
	app.Delete("/api/departments/:id", hdl.Delete)
	return app
}

func TestDepartmentDelete(t *testing.T) {
	t.Run("refused while users remain", func(t *testing.T) {
		repo := &fakeDepartmentRepo{departments: map[uint]*model.Department{
			1: {Model: gorm.Model{ID: 1}, Name: "Engineering", IsActive: true},
		}}
		users := &stubUserRepo{users: map[uint]*model.User{
			2: {Model: gorm.Model{ID: 2}, Department: "Engineering"},
		}}
		app := newDepartmentApp(repo, users)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/departments/1", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}

		body := decodeBody(t, resp)
		if body["error"] != "Cannot delete department with active users" || body["kind"] != "validation" {
			t.Errorf("body = %v", body)
		}
		if repo.deleteCalls != 0 {
			t.Errorf("delete reached the store %d times, want 0", repo.deleteCalls)
		}
		if _, err := repo.FindByID(1); err != nil {
			t.Error("department was removed despite refusal")
		}
	})

	t.Run("empty department deletes", func(t *testing.T) {
		repo := &fakeDepartmentRepo{departments: map[uint]*model.Department{
			1: {Model: gorm.Model{ID: 1}, Name: "Marketing", IsActive: true},
		}}
		app := newDepartmentApp(repo, &stubUserRepo{})

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/departments/1", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if repo.deleteCalls != 1 {
			t.Errorf("delete calls = %d, want 1", repo.deleteCalls)
		}
	})

	t.Run("missing department is not found", func(t *testing.T) {
		repo := &fakeDepartmentRepo{departments: map[uint]*model.Department{}}
		app := newDepartmentApp(repo, &stubUserRepo{})

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/departments/7", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Fatalf("status = %d, want 404", resp.StatusCode)
		}
	})
}

func TestDepartmentListEmployeeCount(t *testing.T) {
	repo := &fakeDepartmentRepo{departments: map[uint]*model.Department{
		1: {Model: gorm.Model{ID: 1}, Name: "Engineering", IsActive: true},
	}}
	users := &stubUserRepo{users: map[uint]*model.User{
		2: {Model: gorm.Model{ID: 2}, Department: "Engineering"},
		3: {Model: gorm.Model{ID: 3}, Department: "Engineering"},
		4: {Model: gorm.Model{ID: 4}, Department: "Sales"},
	}}
	app := newDepartmentApp(repo, users)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/departments", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	data, ok := body["data"].([]interface{})
	if !ok || len(data) != 1 {
		t.Fatalf("data = %v, want one department", body["data"])
	}
	dept := data[0].(map[string]interface{})
	if dept["employee_count"] != float64(2) {
		t.Errorf("employee_count = %v, want 2", dept["employee_count"])
	}
}
