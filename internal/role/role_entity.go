package role

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kind is the enumerated capability of a role. Approver-stage eligibility and
// guard/admin access are resolved from this tag, never by matching the
// display name.
const (
	KindManager    = "manager"
	KindSupervisor = "supervisor"
	KindHR         = "hr"
	KindSafety     = "safety"
	KindSecurity   = "security"
	KindAdmin      = "admin"
	KindEmployee   = "employee"
)

// ApproverKinds lists the kinds that may hold approval work items.
func ApproverKinds() []string {
	return []string{KindManager, KindSupervisor, KindHR, KindSafety}
}

type Role struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"size:255;not null"`
	Kind      string         `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Role) TableName() string {
	return "roles"
}
