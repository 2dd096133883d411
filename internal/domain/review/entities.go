package review

import (
	"time"
)

type Action string

const (
	ActionApproved Action = "approved"
	ActionRejected Action = "rejected"
)

func (a Action) Valid() bool { return a == ActionApproved || a == ActionRejected }

// AdminAction is the append-only audit row written once per review decision.
type AdminAction struct {
	ID       uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AdminID  uint64    `gorm:"column:admin_id;not null;index" json:"admin_id"`
	LoanID   uint64    `gorm:"column:loan_id;not null;index" json:"loan_id"`
	Action   Action    `gorm:"column:action;size:16;not null" json:"action"`
	Comment  *string   `gorm:"column:comment;type:text" json:"comment,omitempty"`
	ActionAt time.Time `gorm:"column:action_at;autoCreateTime" json:"action_at"`
}

func (AdminAction) TableName() string { return "admin_actions" }
