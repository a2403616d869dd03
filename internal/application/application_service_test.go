package application_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-leave-admin/internal/application"
	applicationerrors "go-leave-admin/internal/application/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeApplicationRepository struct {
	withTxFn                func(tx *sql.Tx) application.Repository
	createFn                func(ctx context.Context, a *application.Application) error
	findAllFn               func(ctx context.Context, filter application.ListApplicationsFilter) ([]application.Application, error)
	findByIDFn              func(ctx context.Context, id string) (*application.Application, error)
	updateFn                func(ctx context.Context, a *application.Application) error
	deleteFn                func(ctx context.Context, id string) error
	employeeDepartmentIDFn  func(ctx context.Context, employeeID string) (*string, error)
	hasDepartmentConflictFn func(ctx context.Context, departmentID, applicationType string, fromDate time.Time) (bool, error)
}

func (f *fakeApplicationRepository) WithTx(tx *sql.Tx) application.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeApplicationRepository) Create(ctx context.Context, a *application.Application) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeApplicationRepository) FindAll(ctx context.Context, filter application.ListApplicationsFilter) ([]application.Application, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeApplicationRepository) FindByID(ctx context.Context, id string) (*application.Application, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &application.Application{}, nil
}

func (f *fakeApplicationRepository) Update(ctx context.Context, a *application.Application) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, a)
	}
	return nil
}

func (f *fakeApplicationRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeApplicationRepository) EmployeeDepartmentID(ctx context.Context, employeeID string) (*string, error) {
	if f.employeeDepartmentIDFn != nil {
		return f.employeeDepartmentIDFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeApplicationRepository) HasDepartmentConflict(ctx context.Context, departmentID, applicationType string, fromDate time.Time) (bool, error) {
	if f.hasDepartmentConflictFn != nil {
		return f.hasDepartmentConflictFn(ctx, departmentID, applicationType, fromDate)
	}
	return false, nil
}

type applicationServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service application.Service
	repo    *fakeApplicationRepository
}

func setupApplicationServiceTest(t *testing.T) *applicationServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeApplicationRepository{}
	svc := application.NewService(db, repo)

	return &applicationServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validCreateRequest(employeeID string) application.CreateApplicationRequest {
	return application.CreateApplicationRequest{
		EmployeeID:      employeeID,
		ApplicationType: application.TypeWorkFromHome,
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-02",
		Subject:         "WFH request",
		Reason:          "Plumber visit",
		Status:          application.StatusPending,
	}
}

func TestApplicationService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deptID := uuid.New().String()
		deps.repo.employeeDepartmentIDFn = func(ctx context.Context, gotID string) (*string, error) {
			assert.Equal(t, employeeID.String(), gotID)
			return &deptID, nil
		}
		deps.repo.hasDepartmentConflictFn = func(ctx context.Context, gotDept, gotType string, fromDate time.Time) (bool, error) {
			assert.Equal(t, deptID, gotDept)
			assert.Equal(t, application.TypeWorkFromHome, gotType)
			assert.Equal(t, "2026-03-02", fromDate.Format("2006-01-02"))
			return false, nil
		}
		deps.repo.createFn = func(ctx context.Context, a *application.Application) error {
			assert.NotEqual(t, uuid.Nil, a.ID)
			assert.Equal(t, employeeID, a.EmployeeID)
			assert.Equal(t, application.StatusPending, a.Status)
			return nil
		}

		resp, err := deps.service.Create(ctx, validCreateRequest(employeeID.String()))
		assert.NoError(t, err)
		assert.Equal(t, employeeID.String(), resp.EmployeeID)
		assert.Equal(t, "2026-03-02", resp.FromDate)
	})

	t.Run("department conflict rejected", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deptID := uuid.New().String()
		deps.repo.employeeDepartmentIDFn = func(ctx context.Context, gotID string) (*string, error) {
			return &deptID, nil
		}
		deps.repo.hasDepartmentConflictFn = func(ctx context.Context, gotDept, gotType string, fromDate time.Time) (bool, error) {
			return true, nil
		}
		deps.repo.createFn = func(ctx context.Context, a *application.Application) error {
			t.Fatal("create must not run after a department conflict")
			return nil
		}

		_, err := deps.service.Create(ctx, validCreateRequest(employeeID.String()))
		assert.ErrorIs(t, err, applicationerrors.ErrDepartmentConflict)
	})

	t.Run("no department skips the conflict check", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.employeeDepartmentIDFn = func(ctx context.Context, gotID string) (*string, error) {
			return nil, nil
		}
		deps.repo.hasDepartmentConflictFn = func(ctx context.Context, gotDept, gotType string, fromDate time.Time) (bool, error) {
			t.Fatal("conflict check must not run for an employee without a department")
			return false, nil
		}

		_, err := deps.service.Create(ctx, validCreateRequest(employeeID.String()))
		assert.NoError(t, err)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.employeeDepartmentIDFn = func(ctx context.Context, gotID string) (*string, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Create(ctx, validCreateRequest(employeeID.String()))
		assert.ErrorIs(t, err, applicationerrors.ErrEmployeeNotFound)
	})

	t.Run("bad from date", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest(employeeID.String())
		req.FromDate = "02-03-2026"

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, applicationerrors.ErrInvalidDateFormat)
	})
}

func TestApplicationService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("filter passthrough", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		employeeID := uuid.New().String()
		deps.repo.findAllFn = func(ctx context.Context, filter application.ListApplicationsFilter) ([]application.Application, error) {
			assert.Equal(t, application.StatusApproved, filter.Status)
			assert.Equal(t, application.TypeLeave, filter.ApplicationType)
			assert.Equal(t, "2026-03-02", filter.FromDate)
			assert.Equal(t, "plumber", filter.Search)
			assert.Equal(t, employeeID, filter.EmployeeID)
			return []application.Application{}, nil
		}

		resp, err := deps.service.GetAll(ctx, application.ListApplicationsFilter{
			Status:          application.StatusApproved,
			ApplicationType: application.TypeLeave,
			FromDate:        "2026-03-02",
			Search:          "plumber",
			EmployeeID:      employeeID,
		})
		assert.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, application.ListApplicationsFilter{Status: "MAYBE"})
		assert.ErrorIs(t, err, applicationerrors.ErrInvalidStatus)
	})

	t.Run("invalid type filter", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, application.ListApplicationsFilter{ApplicationType: "SABBATICAL"})
		assert.ErrorIs(t, err, applicationerrors.ErrInvalidApplicationType)
	})

	t.Run("invalid employee filter", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, application.ListApplicationsFilter{EmployeeID: "not-a-uuid"})
		assert.ErrorIs(t, err, applicationerrors.ErrInvalidEmployeeID)
	})
}

func TestApplicationService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	employeeID := uuid.New()

	existing := func() *application.Application {
		fromDate, _ := time.Parse("2006-01-02", "2026-03-02")
		return &application.Application{
			ID:              id,
			EmployeeID:      employeeID,
			ApplicationType: application.TypeLeave,
			FromDate:        fromDate,
			ToDate:          fromDate,
			Subject:         "Leave request",
			Reason:          "Family function",
			Status:          application.StatusPending,
		}
	}

	t.Run("patch leaves absent fields untouched", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*application.Application, error) {
			return existing(), nil
		}
		deps.repo.updateFn = func(ctx context.Context, a *application.Application) error {
			assert.Equal(t, application.StatusApproved, a.Status)
			assert.Equal(t, "Leave request", a.Subject)
			assert.Equal(t, application.TypeLeave, a.ApplicationType)
			return nil
		}

		status := application.StatusApproved
		resp, err := deps.service.Update(ctx, id.String(), application.UpdateApplicationRequest{Status: &status})
		assert.NoError(t, err)
		assert.Equal(t, application.StatusApproved, resp.Status)
	})

	t.Run("no conflict check on update", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*application.Application, error) {
			return existing(), nil
		}
		deps.repo.hasDepartmentConflictFn = func(ctx context.Context, gotDept, gotType string, fromDate time.Time) (bool, error) {
			t.Fatal("conflict check must not run on update")
			return false, nil
		}

		newType := application.TypeWorkFromHome
		_, err := deps.service.Update(ctx, id.String(), application.UpdateApplicationRequest{ApplicationType: &newType})
		assert.NoError(t, err)
	})

	t.Run("unknown replacement employee", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*application.Application, error) {
			return existing(), nil
		}
		deps.repo.employeeDepartmentIDFn = func(ctx context.Context, gotID string) (*string, error) {
			return nil, gorm.ErrRecordNotFound
		}

		other := uuid.New().String()
		_, err := deps.service.Update(ctx, id.String(), application.UpdateApplicationRequest{EmployeeID: &other})
		assert.ErrorIs(t, err, applicationerrors.ErrEmployeeNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*application.Application, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Update(ctx, id.String(), application.UpdateApplicationRequest{})
		assert.ErrorIs(t, err, applicationerrors.ErrApplicationNotFound)
	})
}

func TestApplicationService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("returns deleted id", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*application.Application, error) {
			return &application.Application{ID: id}, nil
		}
		deleted := false
		deps.repo.deleteFn = func(ctx context.Context, gotID string) error {
			assert.Equal(t, id.String(), gotID)
			deleted = true
			return nil
		}

		gotID, err := deps.service.Delete(ctx, id.String())
		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, id.String(), gotID)
	})

	t.Run("unknown id", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*application.Application, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Delete(ctx, id.String())
		assert.ErrorIs(t, err, applicationerrors.ErrApplicationNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Delete(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, applicationerrors.ErrInvalidApplicationID)
	})
}
