package security

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOut       = "OUT"
	StatusCompleted = "COMPLETED"
)

const (
	VisitorStatusIn  = "IN"
	VisitorStatusOut = "OUT"
)

// InOutHistory records one physical exit against an approved leave request.
// The 1:1 link to the request is enforced in the service, not the store.
type InOutHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID  uuid.UUID `gorm:"type:uuid;not null;index:idx_in_out_histories_request"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_in_out_histories_employee"`
	GuardID    uuid.UUID `gorm:"type:uuid;not null"`
	TimeOut    time.Time `gorm:"not null"`
	TimeIn     *time.Time
	Status     string    `gorm:"type:varchar(15);not null;default:'OUT'"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Request  *LeaveRequestRef `gorm:"foreignKey:RequestID;references:ID"`
	Employee *EmployeeRef     `gorm:"foreignKey:EmployeeID;references:ID"`
	Guard    *EmployeeRef     `gorm:"foreignKey:GuardID;references:ID"`
}

func (InOutHistory) TableName() string {
	return "in_out_histories"
}

// VisitorLog covers external visitors; same out/in pairing, no request link.
type VisitorLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VisitorName   string    `gorm:"size:255;not null"`
	ContactPerson string    `gorm:"size:255;not null"`
	Reason        string    `gorm:"type:text;not null"`
	GuardID       uuid.UUID `gorm:"type:uuid;not null"`
	TimeIn        time.Time `gorm:"not null"`
	TimeOut       *time.Time
	Status        string    `gorm:"type:varchar(10);not null;default:'IN'"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`

	Guard *EmployeeRef `gorm:"foreignKey:GuardID;references:ID"`
}

func (VisitorLog) TableName() string {
	return "visitor_logs"
}

type LeaveRequestRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid"`
	Reason     string
	LeaveDate  time.Time
	Duration   string
	Status     string

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (LeaveRequestRef) TableName() string {
	return "leave_requests"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string
}

func (EmployeeRef) TableName() string {
	return "employees"
}
