package employee

type CreateEmployeeRequest struct {
	FirstName        string  `json:"first_name" binding:"required"`
	LastName         *string `json:"last_name"`
	DepartmentID     *string `json:"department_id" binding:"omitempty,uuid"`
	DateOfBirth      string  `json:"date_of_birth" binding:"required"`
	Gender           string  `json:"gender" binding:"required,oneof=MALE FEMALE OTHER"`
	PhoneNumber      string  `json:"phone_number" binding:"required"`
	PersonalEmailID  string  `json:"personal_email_id" binding:"required,email"`
	IsDepartmentHead bool    `json:"is_department_head"`
}

// UpdateEmployeeRequest is a patch: nil fields are left untouched. A JSON
// null decodes to the same nil as an absent key, so a set department_id or
// last_name cannot be cleared through this endpoint, only replaced.
type UpdateEmployeeRequest struct {
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	DepartmentID     *string `json:"department_id" binding:"omitempty,uuid"`
	DateOfBirth      *string `json:"date_of_birth"`
	Gender           *string `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	PhoneNumber      *string `json:"phone_number"`
	PersonalEmailID  *string `json:"personal_email_id" binding:"omitempty,email"`
	IsDepartmentHead *bool   `json:"is_department_head"`
}

// ListEmployeesFilter holds the optional query parameters of the list
// endpoint. Empty fields are no-ops; set fields combine with AND.
type ListEmployeesFilter struct {
	Gender       string
	Email        string
	DepartmentID string
	Search       string
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	DepartmentID     *string `json:"department_id"`
	FirstName        string  `json:"first_name"`
	LastName         *string `json:"last_name"`
	DateOfBirth      string  `json:"date_of_birth"`
	Gender           string  `json:"gender"`
	PhoneNumber      string  `json:"phone_number"`
	PersonalEmailID  string  `json:"personal_email_id"`
	IsDepartmentHead bool    `json:"is_department_head"`
}
