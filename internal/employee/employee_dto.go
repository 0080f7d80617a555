package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string  `json:"employee_number"`
	FullName       string  `json:"full_name" binding:"required"`
	Phone          *string `json:"phone"`
	Email          string  `json:"email" binding:"required,email"`
	ChatUserID     *string `json:"chat_user_id"`
	DepartmentID   string  `json:"department_id" binding:"required,uuid"`
	PositionID     string  `json:"position_id" binding:"required,uuid"`
	RoleID         string  `json:"role_id" binding:"required,uuid"`
	AccountID      *string `json:"account_id"`
}

type UpdateEmployeeRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Phone        *string `json:"phone"`
	Email        string  `json:"email" binding:"required,email"`
	ChatUserID   *string `json:"chat_user_id"`
	DepartmentID string  `json:"department_id" binding:"required,uuid"`
	PositionID   string  `json:"position_id" binding:"required,uuid"`
	RoleID       string  `json:"role_id" binding:"required,uuid"`
}

// UpdateContactRequest is the self-service subset: an employee may change
// how they are reached, nothing else.
type UpdateContactRequest struct {
	Phone      *string `json:"phone"`
	Email      string  `json:"email" binding:"required,email"`
	ChatUserID *string `json:"chat_user_id"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeNumber string  `json:"employee_number"`
	FullName       string  `json:"full_name"`
	Phone          *string `json:"phone,omitempty"`
	Email          string  `json:"email"`
	ChatUserID     *string `json:"chat_user_id,omitempty"`
	DepartmentID   string  `json:"department_id"`
	DepartmentName string  `json:"department_name,omitempty"`
	PositionID     string  `json:"position_id"`
	PositionName   string  `json:"position_name,omitempty"`
	RoleID         string  `json:"role_id"`
	RoleName       string  `json:"role_name,omitempty"`
	RoleKind       string  `json:"role_kind,omitempty"`
}
