package request

const (
	DecisionApprove     = "approve"
	DecisionReject      = "reject"
	DecisionRequestInfo = "request_info"
)

type SubmitLeaveRequest struct {
	Reason        string  `json:"reason" binding:"required"`
	LeaveDate     string  `json:"leave_date" binding:"required"`
	Duration      string  `json:"duration" binding:"required,oneof=SHORT HALF_DAY FULL_DAY"`
	AttachmentRef *string `json:"attachment_ref"`
}

type DecideRequest struct {
	Decision string  `json:"decision" binding:"required,oneof=approve reject request_info"`
	Comment  *string `json:"comment"`
}

type ProvideInfoRequest struct {
	Reason        string  `json:"reason" binding:"required"`
	AttachmentRef *string `json:"attachment_ref"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type StatusView struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

type LeaveRequestResponse struct {
	ID                  string     `json:"id"`
	EmployeeID          string     `json:"employee_id"`
	EmployeeName        string     `json:"employee_name,omitempty"`
	Reason              string     `json:"reason"`
	LeaveDate           string     `json:"leave_date"`
	Duration            string     `json:"duration"`
	Status              string     `json:"status"`
	CurrentApproverRole string     `json:"current_approver_role"`
	DetailedStatus      StatusView `json:"detailed_status"`
	InfoRequestComment  *string    `json:"info_request_comment,omitempty"`
	AttachmentRef       *string    `json:"attachment_ref,omitempty"`
	Version             int64      `json:"version"`
	CreatedAt           string     `json:"created_at"`
}

type ApprovalHistoryResponse struct {
	ID            string  `json:"id"`
	RequestID     string  `json:"request_id"`
	ApproverID    string  `json:"approver_id"`
	ApproverName  string  `json:"approver_name,omitempty"`
	ApprovalOrder int     `json:"approval_order"`
	Status        string  `json:"status"`
	Comment       *string `json:"comment,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
}

// InboxItemResponse is one pending work item plus enough of the request to
// act on it without a second fetch.
type InboxItemResponse struct {
	HistoryID     string               `json:"history_id"`
	ApprovalOrder int                  `json:"approval_order"`
	Request       LeaveRequestResponse `json:"request"`
}
