package application

import (
	"context"
	"database/sql"
	"errors"
	"time"

	applicationerrors "go-leave-admin/internal/application/errors"
	"go-leave-admin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=application_service.go -destination=mock/application_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateApplicationRequest) (ApplicationResponse, error)
	GetAll(ctx context.Context, filter ListApplicationsFilter) ([]ApplicationResponse, error)
	GetByID(ctx context.Context, id string) (ApplicationResponse, error)
	Update(ctx context.Context, id string, req UpdateApplicationRequest) (ApplicationResponse, error)
	Delete(ctx context.Context, id string) (string, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateApplicationRequest) (ApplicationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create application requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("application_type", req.ApplicationType),
		zap.String("from_date", req.FromDate),
	)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ApplicationResponse{}, applicationerrors.ErrInvalidEmployeeID
	}
	fromDate, err := parseDate(req.FromDate)
	if err != nil {
		return ApplicationResponse{}, err
	}
	toDate, err := parseDate(req.ToDate)
	if err != nil {
		return ApplicationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create application begin tx failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	departmentID, err := qtx.EmployeeDepartmentID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, applicationerrors.ErrEmployeeNotFound
		}
		s.logger.Error("create application employee lookup failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	// One application of a given type per department per start date. An
	// employee without a department can never collide.
	if departmentID != nil {
		conflict, err := qtx.HasDepartmentConflict(ctx, *departmentID, req.ApplicationType, fromDate)
		if err != nil {
			s.logger.Error("create application conflict check failed", zap.Error(err))
			return ApplicationResponse{}, err
		}
		if conflict {
			s.logger.Warn("create application department conflict",
				zap.String("department_id", *departmentID),
				zap.String("application_type", req.ApplicationType),
				zap.String("from_date", req.FromDate),
			)
			return ApplicationResponse{}, applicationerrors.ErrDepartmentConflict
		}
	}

	a := &Application{
		ID:                    uuid.New(),
		EmployeeID:            employeeID,
		ApplicationType:       req.ApplicationType,
		FromDate:              fromDate,
		ToDate:                toDate,
		Subject:               req.Subject,
		Reason:                req.Reason,
		Status:                req.Status,
		BalanceBeforeApproval: req.BalanceBeforeApproval,
		BalanceAfterApproval:  req.BalanceAfterApproval,
	}

	if err := qtx.Create(ctx, a); err != nil {
		s.logger.Error("create application persist failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create application commit failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	s.logger.Info("create application success",
		zap.String("request_id", rid),
		zap.String("application_id", a.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, filter ListApplicationsFilter) ([]ApplicationResponse, error) {
	if filter.Status != "" && !ValidStatus(filter.Status) {
		return nil, applicationerrors.ErrInvalidStatus
	}
	if filter.ApplicationType != "" && !ValidType(filter.ApplicationType) {
		return nil, applicationerrors.ErrInvalidApplicationType
	}
	if filter.FromDate != "" {
		if _, err := parseDate(filter.FromDate); err != nil {
			return nil, err
		}
	}
	if filter.ToDate != "" {
		if _, err := parseDate(filter.ToDate); err != nil {
			return nil, err
		}
	}
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return nil, applicationerrors.ErrInvalidEmployeeID
		}
	}

	apps, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(apps), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ApplicationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ApplicationResponse{}, applicationerrors.ErrInvalidApplicationID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ApplicationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateApplicationRequest) (ApplicationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update application requested", zap.String("request_id", rid), zap.String("application_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return ApplicationResponse{}, applicationerrors.ErrInvalidApplicationID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update application begin tx failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ApplicationResponse{}, mapRepositoryError(err)
	}

	// Patch semantics: only supplied fields change. The department conflict
	// rule applies at creation only, not here.
	if req.EmployeeID != nil {
		employeeID, err := uuid.Parse(*req.EmployeeID)
		if err != nil {
			return ApplicationResponse{}, applicationerrors.ErrInvalidEmployeeID
		}
		if _, err := qtx.EmployeeDepartmentID(ctx, *req.EmployeeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ApplicationResponse{}, applicationerrors.ErrEmployeeNotFound
			}
			s.logger.Error("update application employee lookup failed", zap.Error(err))
			return ApplicationResponse{}, err
		}
		a.EmployeeID = employeeID
	}
	if req.ApplicationType != nil {
		if !ValidType(*req.ApplicationType) {
			return ApplicationResponse{}, applicationerrors.ErrInvalidApplicationType
		}
		a.ApplicationType = *req.ApplicationType
	}
	if req.FromDate != nil {
		fromDate, err := parseDate(*req.FromDate)
		if err != nil {
			return ApplicationResponse{}, err
		}
		a.FromDate = fromDate
	}
	if req.ToDate != nil {
		toDate, err := parseDate(*req.ToDate)
		if err != nil {
			return ApplicationResponse{}, err
		}
		a.ToDate = toDate
	}
	if req.Subject != nil {
		a.Subject = *req.Subject
	}
	if req.Reason != nil {
		a.Reason = *req.Reason
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return ApplicationResponse{}, applicationerrors.ErrInvalidStatus
		}
		a.Status = *req.Status
	}
	if req.BalanceBeforeApproval != nil {
		a.BalanceBeforeApproval = *req.BalanceBeforeApproval
	}
	if req.BalanceAfterApproval != nil {
		a.BalanceAfterApproval = *req.BalanceAfterApproval
	}

	if err := qtx.Update(ctx, a); err != nil {
		s.logger.Error("update application persist failed", zap.String("application_id", id), zap.Error(err))
		return ApplicationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update application commit failed", zap.String("application_id", id), zap.Error(err))
		return ApplicationResponse{}, err
	}
	s.logger.Info("update application success", zap.String("request_id", rid), zap.String("application_id", id))

	return mapToResponse(*a), nil
}

func (s *service) Delete(ctx context.Context, id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", applicationerrors.ErrInvalidApplicationID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete application begin tx failed", zap.Error(err))
		return "", err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		return "", mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete application persist failed", zap.String("application_id", id), zap.Error(err))
		return "", err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete application commit failed", zap.String("application_id", id), zap.Error(err))
		return "", err
	}
	s.logger.Info("delete application success", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.String("application_id", id))

	return a.ID.String(), nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, applicationerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                    a.ID.String(),
		EmployeeID:            a.EmployeeID.String(),
		ApplicationType:       a.ApplicationType,
		FromDate:              a.FromDate.Format(dateLayout),
		ToDate:                a.ToDate.Format(dateLayout),
		Subject:               a.Subject,
		Reason:                a.Reason,
		Status:                a.Status,
		BalanceBeforeApproval: a.BalanceBeforeApproval,
		BalanceAfterApproval:  a.BalanceAfterApproval,
	}
}

func mapToListResponse(apps []Application) []ApplicationResponse {
	resp := make([]ApplicationResponse, len(apps))
	for i, a := range apps {
		resp[i] = mapToResponse(a)
	}
	return resp
}
