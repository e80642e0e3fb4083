// internal/model/report.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportDraft     ReportStatus = "draft"
	ReportSubmitted ReportStatus = "submitted"
	ReportApproved  ReportStatus = "approved"
	ReportRejected  ReportStatus = "rejected"
	ReportPublished ReportStatus = "published"
)

type Report struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string       `gorm:"type:text;not null" json:"title"`
	Content     string       `gorm:"type:text" json:"content"`
	Status      ReportStatus `gorm:"type:report_status;not null;default:'draft'" json:"status"`
	AIGenerated bool         `gorm:"not null;default:false" json:"ai_generated"`
	AuthorID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"author_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author   User             `gorm:"foreignKey:AuthorID" json:"-"`
	Projects []Project        `gorm:"many2many:report_projects" json:"projects,omitempty"`
	Tags     []Tag            `gorm:"many2many:report_tags" json:"tags,omitempty"`
	History  []ReportHistory  `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"history,omitempty"`
	Feedback []ReportFeedback `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"feedback,omitempty"`
}

// ReportHistory entries are append-only prior drafts. Existing rows are
// never updated.
type ReportHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ReportID  uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ReportFeedback struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ReportID  uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
}
