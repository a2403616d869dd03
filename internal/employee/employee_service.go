package employee

import (
	"context"
	"database/sql"
	"time"

	employeeerrors "go-leave-admin/internal/employee/errors"
	"go-leave-admin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) (string, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("first_name", req.FirstName),
		zap.String("phone_number", req.PhoneNumber),
		zap.String("personal_email_id", req.PersonalEmailID),
	)

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, err
	}

	var departmentID *uuid.UUID
	if req.DepartmentID != nil && *req.DepartmentID != "" {
		parsed, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDepartmentID
		}
		departmentID = &parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if departmentID != nil {
		exists, err := qtx.DepartmentExists(ctx, departmentID.String())
		if err != nil {
			s.logger.Error("create employee department check failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if !exists {
			return EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
		}
	}

	taken, err := qtx.PhoneExists(ctx, req.PhoneNumber, nil)
	if err != nil {
		s.logger.Error("create employee phone check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		s.logger.Warn("create employee duplicate phone", zap.String("phone_number", req.PhoneNumber))
		return EmployeeResponse{}, employeeerrors.ErrPhoneNumberExists
	}

	taken, err = qtx.EmailExists(ctx, req.PersonalEmailID, nil)
	if err != nil {
		s.logger.Error("create employee email check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		s.logger.Warn("create employee duplicate email", zap.String("personal_email_id", req.PersonalEmailID))
		return EmployeeResponse{}, employeeerrors.ErrEmailExists
	}

	emp := &Employee{
		ID:               uuid.New(),
		DepartmentID:     departmentID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		DateOfBirth:      dob,
		Gender:           req.Gender,
		PhoneNumber:      req.PhoneNumber,
		PersonalEmailID:  req.PersonalEmailID,
		IsDepartmentHead: req.IsDepartmentHead,
	}

	if err := qtx.Create(ctx, emp); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	s.logger.Info("create employee success", zap.String("request_id", rid), zap.String("employee_id", emp.ID.String()))

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, error) {
	if filter.Gender != "" && !ValidGender(filter.Gender) {
		return nil, employeeerrors.ErrInvalidGender
	}
	if filter.DepartmentID != "" {
		if _, err := uuid.Parse(filter.DepartmentID); err != nil {
			return nil, employeeerrors.ErrInvalidDepartmentID
		}
	}

	emps, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested", zap.String("request_id", rid), zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// Uniqueness is re-checked with the values the row will hold after the
	// patch, against every other employee, before anything is applied.
	phone := emp.PhoneNumber
	if req.PhoneNumber != nil {
		phone = *req.PhoneNumber
	}
	taken, err := qtx.PhoneExists(ctx, phone, &id)
	if err != nil {
		s.logger.Error("update employee phone check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		s.logger.Warn("update employee duplicate phone", zap.String("employee_id", id))
		return EmployeeResponse{}, employeeerrors.ErrPhoneNumberExists
	}

	email := emp.PersonalEmailID
	if req.PersonalEmailID != nil {
		email = *req.PersonalEmailID
	}
	taken, err = qtx.EmailExists(ctx, email, &id)
	if err != nil {
		s.logger.Error("update employee email check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		s.logger.Warn("update employee duplicate email", zap.String("employee_id", id))
		return EmployeeResponse{}, employeeerrors.ErrEmailExists
	}

	if req.DepartmentID != nil && *req.DepartmentID != "" {
		parsed, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDepartmentID
		}
		exists, err := qtx.DepartmentExists(ctx, parsed.String())
		if err != nil {
			s.logger.Error("update employee department check failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if !exists {
			return EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
		}
		emp.DepartmentID = &parsed
	}

	// Patch semantics: only supplied fields change.
	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = req.LastName
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return EmployeeResponse{}, err
		}
		emp.DateOfBirth = dob
	}
	if req.Gender != nil {
		if !ValidGender(*req.Gender) {
			return EmployeeResponse{}, employeeerrors.ErrInvalidGender
		}
		emp.Gender = *req.Gender
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = *req.PhoneNumber
	}
	if req.PersonalEmailID != nil {
		emp.PersonalEmailID = *req.PersonalEmailID
	}
	if req.IsDepartmentHead != nil {
		emp.IsDepartmentHead = *req.IsDepartmentHead
	}

	if err := qtx.Update(ctx, emp); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}
	s.logger.Info("update employee success", zap.String("request_id", rid), zap.String("employee_id", id))

	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return "", err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return "", mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return "", err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.String("employee_id", id), zap.Error(err))
		return "", err
	}
	s.logger.Info("delete employee success", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.String("employee_id", id))

	return emp.ID.String(), nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               emp.ID.String(),
		FirstName:        emp.FirstName,
		LastName:         emp.LastName,
		DateOfBirth:      emp.DateOfBirth.Format(dateLayout),
		Gender:           emp.Gender,
		PhoneNumber:      emp.PhoneNumber,
		PersonalEmailID:  emp.PersonalEmailID,
		IsDepartmentHead: emp.IsDepartmentHead,
	}
	if emp.DepartmentID != nil {
		v := emp.DepartmentID.String()
		resp.DepartmentID = &v
	}
	return resp
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		resp[i] = mapToResponse(e)
	}
	return resp
}
