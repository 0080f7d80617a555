package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number"`
	FullName       string    `gorm:"size:255;not null"`
	Phone          *string   `gorm:"type:varchar(32)"`
	Email          string    `gorm:"size:255;not null;uniqueIndex:uq_employee_email"`
	// ChatUserID is the employee's chat-push address; empty means no chat
	// notifications for this employee.
	ChatUserID   *string   `gorm:"type:varchar(64)"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	PositionID   uuid.UUID `gorm:"type:uuid;not null"`
	RoleID       uuid.UUID `gorm:"type:uuid;not null"`
	// AccountID links to the external identity subsystem.
	AccountID *string        `gorm:"type:varchar(64);uniqueIndex:uq_employee_account"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Department *DepartmentRef `gorm:"foreignKey:DepartmentID;references:ID"`
	Position   *PositionRef   `gorm:"foreignKey:PositionID;references:ID"`
	Role       *RoleRef       `gorm:"foreignKey:RoleID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

type DepartmentRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (DepartmentRef) TableName() string {
	return "departments"
}

type PositionRef struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Level int
}

func (PositionRef) TableName() string {
	return "positions"
}

type RoleRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Kind string
}

func (RoleRef) TableName() string {
	return "roles"
}
