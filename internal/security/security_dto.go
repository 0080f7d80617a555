package security

type ReadyToLeaveResponse struct {
	RequestID    string `json:"request_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	LeaveDate    string `json:"leave_date"`
	Duration     string `json:"duration"`
	Reason       string `json:"reason"`
}

type InOutResponse struct {
	ID           string  `json:"id"`
	RequestID    string  `json:"request_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	GuardID      string  `json:"guard_id"`
	GuardName    string  `json:"guard_name,omitempty"`
	TimeOut      string  `json:"time_out"`
	TimeIn       *string `json:"time_in,omitempty"`
	Status       string  `json:"status"`
}

type VisitorInRequest struct {
	VisitorName   string `json:"visitor_name" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"required"`
	Reason        string `json:"reason" binding:"required"`
}

type VisitorResponse struct {
	ID            string  `json:"id"`
	VisitorName   string  `json:"visitor_name"`
	ContactPerson string  `json:"contact_person"`
	Reason        string  `json:"reason"`
	GuardID       string  `json:"guard_id"`
	GuardName     string  `json:"guard_name,omitempty"`
	TimeIn        string  `json:"time_in"`
	TimeOut       *string `json:"time_out,omitempty"`
	Status        string  `json:"status"`
}
