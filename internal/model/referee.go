// internal/model/referee.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Referee struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name    string    `gorm:"type:text;not null" json:"name"`
	Title   string    `gorm:"type:text" json:"title"`
	Company string    `gorm:"type:text" json:"company"`
	Email   string    `gorm:"type:citext;not null" json:"email"`
	Phone   *string   `gorm:"type:text" json:"phone,omitempty"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Projects []Project `gorm:"many2many:referee_projects" json:"projects,omitempty"`
}

// RefereeProject is the explicit join table behind the many2many above.
// Association writes replace the full set for a referee in one call.
type RefereeProject struct {
	RefereeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"referee_id"`
	ProjectID uuid.UUID `gorm:"type:uuid;primaryKey" json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
}
