// internal/model/prompt.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AIPromptTemplate is static configuration consumed by the external drafting
// workflow. Placeholders use {{name}} tokens. End users do not mutate these.
type AIPromptTemplate struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	Template string    `gorm:"type:text;not null" json:"template"`
	Purpose  string    `gorm:"type:text" json:"purpose"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
