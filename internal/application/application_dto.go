package application

type CreateApplicationRequest struct {
	EmployeeID            string `json:"employee_id" binding:"required,uuid"`
	ApplicationType       string `json:"application_type" binding:"required,oneof=LEAVE WORK_FROM_HOME"`
	FromDate              string `json:"from_date" binding:"required"`
	ToDate                string `json:"to_date" binding:"required"`
	Subject               string `json:"subject" binding:"required"`
	Reason                string `json:"reason" binding:"required"`
	Status                string `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED"`
	BalanceBeforeApproval int    `json:"balance_before_approval"`
	BalanceAfterApproval  int    `json:"balance_after_approval"`
}

// UpdateApplicationRequest is a patch: nil fields are left untouched. Status
// is a flat field, any of the three values may be set at any time.
type UpdateApplicationRequest struct {
	EmployeeID            *string `json:"employee_id" binding:"omitempty,uuid"`
	ApplicationType       *string `json:"application_type" binding:"omitempty,oneof=LEAVE WORK_FROM_HOME"`
	FromDate              *string `json:"from_date"`
	ToDate                *string `json:"to_date"`
	Subject               *string `json:"subject"`
	Reason                *string `json:"reason"`
	Status                *string `json:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	BalanceBeforeApproval *int    `json:"balance_before_approval"`
	BalanceAfterApproval  *int    `json:"balance_after_approval"`
}

// ListApplicationsFilter holds the optional query parameters of the list
// endpoint. Empty fields are no-ops; set fields combine with AND.
type ListApplicationsFilter struct {
	Status          string
	ApplicationType string
	FromDate        string
	ToDate          string
	Search          string
	EmployeeID      string
}

type ApplicationResponse struct {
	ID                    string `json:"id"`
	EmployeeID            string `json:"employee_id"`
	ApplicationType       string `json:"application_type"`
	FromDate              string `json:"from_date"`
	ToDate                string `json:"to_date"`
	Subject               string `json:"subject"`
	Reason                string `json:"reason"`
	Status                string `json:"status"`
	BalanceBeforeApproval int    `json:"balance_before_approval"`
	BalanceAfterApproval  int    `json:"balance_after_approval"`
}
