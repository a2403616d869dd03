package department

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateDepartmentRequest is a patch: nil fields are left untouched.
type UpdateDepartmentRequest struct {
	Name *string `json:"name"`
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
