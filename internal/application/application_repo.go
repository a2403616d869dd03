package application

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=application_repo.go -destination=mock/application_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Application) error
	FindAll(ctx context.Context, filter ListApplicationsFilter) ([]Application, error)
	FindByID(ctx context.Context, id string) (*Application, error)
	Update(ctx context.Context, a *Application) error
	Delete(ctx context.Context, id string) error

	// EmployeeDepartmentID resolves the candidate employee's department.
	// Returns gorm.ErrRecordNotFound when the employee row is missing; the
	// department pointer is nil for employees outside any department.
	EmployeeDepartmentID(ctx context.Context, employeeID string) (*string, error)
	HasDepartmentConflict(ctx context.Context, departmentID, applicationType string, fromDate time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListApplicationsFilter) ([]Application, error) {
	db := r.db.WithContext(ctx).Model(&Application{})

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.ApplicationType != "" {
		db = db.Where("application_type = ?", filter.ApplicationType)
	}
	if filter.FromDate != "" {
		db = db.Where("from_date = ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		db = db.Where("to_date = ?", filter.ToDate)
	}
	if filter.Search != "" {
		db = db.Where("reason ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}

	var apps []Application
	err := db.Find(&apps).Error
	return apps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Application{}, "id = ?", id).Error
}

func (r *repository) EmployeeDepartmentID(ctx context.Context, employeeID string) (*string, error) {
	var row struct {
		DepartmentID *string
	}
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("department_id").
		Where("id = ?", employeeID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return row.DepartmentID, nil
}

func (r *repository) HasDepartmentConflict(ctx context.Context, departmentID, applicationType string, fromDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Application{}).
		Joins("JOIN employees ON employees.id = applications.employee_id").
		Where("employees.department_id = ?", departmentID).
		Where("applications.application_type = ?", applicationType).
		Where("applications.from_date = ?", fromDate).
		Count(&count).Error
	return count > 0, err
}
