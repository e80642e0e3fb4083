// internal/model/project.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectPlanning      ProjectStatus = "planning"
	ProjectInProgress    ProjectStatus = "in_progress"
	ProjectCompleted     ProjectStatus = "completed"
	ProjectPendingReview ProjectStatus = "pending_review"
	ProjectOnHold        ProjectStatus = "on_hold"
)

// OutcomeCount is the number of competency outcomes defined by the
// professional registration body. Outcome numbers run 1..OutcomeCount.
const OutcomeCount = 11

type Project struct {
	ID               uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name             string        `gorm:"type:text;not null" json:"name"`
	Description      string        `gorm:"type:text" json:"description"`
	StartDate        time.Time     `gorm:"not null" json:"start_date"`
	EndDate          *time.Time    `json:"end_date,omitempty"`
	Status           ProjectStatus `gorm:"type:project_status;not null;default:'planning'" json:"status"`
	Discipline       string        `gorm:"type:text" json:"discipline"`
	RoleTitle        string        `gorm:"type:text" json:"role_title"`
	Company          string        `gorm:"type:text" json:"company"`
	Image            *string       `gorm:"type:text" json:"image,omitempty"`
	Responsibilities string        `gorm:"type:text" json:"responsibilities"`
	RefereeName      *string       `gorm:"type:text" json:"referee_name,omitempty"`

	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null" json:"organization_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User         User               `gorm:"foreignKey:UserID" json:"-"`
	Organization Organization       `gorm:"foreignKey:OrganizationID" json:"-"`
	Milestones   []ProjectMilestone `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"milestones,omitempty"`
	Outcomes     []ProjectOutcome   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"outcomes,omitempty"`
}

// ProjectMilestone rows keep insertion order; there is no uniqueness
// constraint on titles or dates.
type ProjectMilestone struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Date        time.Time `gorm:"not null" json:"date"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectOutcome records how a project demonstrated one outcome. At most one
// row per (project, outcome number); writers upsert, never accumulate.
type ProjectOutcome struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProjectID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_project_outcome" json:"project_id"`
	OutcomeNumber int       `gorm:"not null;uniqueIndex:idx_project_outcome;check:outcome_number >= 1 AND outcome_number <= 11" json:"outcome_number"`
	Response      *string   `gorm:"type:text" json:"response,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
