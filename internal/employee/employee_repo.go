package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	FindAll(ctx context.Context, filter ListEmployeesFilter) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	PhoneExists(ctx context.Context, phone string, excludeID *string) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID *string) (bool, error)
	DepartmentExists(ctx context.Context, departmentID string) (bool, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListEmployeesFilter) ([]Employee, error) {
	db := r.db.WithContext(ctx).Model(&Employee{})

	if filter.Gender != "" {
		db = db.Where("gender = ?", filter.Gender)
	}
	if filter.Email != "" {
		db = db.Where("personal_email_id = ?", filter.Email)
	}
	if filter.DepartmentID != "" {
		db = db.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Search != "" {
		db = db.Where("first_name ILIKE ?", "%"+filter.Search+"%")
	}

	var emps []Employee
	err := db.Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) PhoneExists(ctx context.Context, phone string, excludeID *string) (bool, error) {
	return r.exists(ctx, "phone_number", phone, excludeID)
}

func (r *repository) EmailExists(ctx context.Context, email string, excludeID *string) (bool, error) {
	return r.exists(ctx, "personal_email_id", email, excludeID)
}

func (r *repository) exists(ctx context.Context, column, value string, excludeID *string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where(column+" = ?", value)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("id = ?", departmentID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}
