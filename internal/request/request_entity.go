package request

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending       = "Pending"
	StatusApproved      = "Approved"
	StatusRejected      = "Rejected"
	StatusInfoRequested = "Info Requested"
)

const (
	ApproverRoleManager    = "manager"
	ApproverRoleSupervisor = "supervisor"
	ApproverRoleHRSafety   = "hr_safety"
	ApproverRoleCompleted  = "completed"
)

const (
	DurationShort   = "SHORT"
	DurationHalfDay = "HALF_DAY"
	DurationFullDay = "FULL_DAY"
)

const (
	OrderManager    = 1
	OrderSupervisor = 2
	OrderHRSafety   = 3
)

// LeaveRequest is never deleted; it is the audit trail of every
// out-of-office request, terminal or not.
type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee"`

	Reason    string    `gorm:"type:text;not null"`
	LeaveDate time.Time `gorm:"type:date;not null;index:idx_leave_requests_date"`
	Duration  string    `gorm:"type:varchar(10);not null"`

	Status              string `gorm:"type:varchar(20);not null;default:'Pending';index:idx_leave_requests_status"`
	CurrentApproverRole string `gorm:"type:varchar(15);not null;default:'manager'"`

	InfoRequestComment *string `gorm:"type:text"`
	AttachmentRef      *string `gorm:"type:varchar(255)"`

	// Version guards concurrent decisions; every transition is a
	// compare-and-set on (id, version).
	Version int64 `gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// ApprovalHistory is one approver's work item on one request at one stage.
// Stage 3 fans out to several simultaneous rows, one per HR/Safety approver.
type ApprovalHistory struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID     uuid.UUID `gorm:"type:uuid;not null;index:idx_approval_histories_request"`
	ApproverID    uuid.UUID `gorm:"type:uuid;not null;index:idx_approval_histories_approver"`
	ApprovalOrder int       `gorm:"type:int;not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	Comment       *string   `gorm:"type:text"`
	DecidedAt     *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`

	Request  *LeaveRequest `gorm:"foreignKey:RequestID;references:ID;constraint:OnDelete:CASCADE"`
	Approver *EmployeeRef  `gorm:"foreignKey:ApproverID;references:ID"`
}

func (ApprovalHistory) TableName() string {
	return "approval_histories"
}

// EmployeeRef is a read-only projection of the employees table for preloads
// and approver routing.
type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName     string
	Email        string
	ChatUserID   *string
	DepartmentID uuid.UUID `gorm:"type:uuid"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
