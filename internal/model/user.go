// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleEngineer UserRole = "engineer"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionInactive  SubscriptionStatus = "inactive"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Role         UserRole  `gorm:"type:user_role;not null;default:'engineer'" json:"role"`
	ProfileImage *string   `gorm:"type:text" json:"profile_image,omitempty"`

	// Engineering profile collected during onboarding. All optional.
	Discipline         *string `gorm:"type:text" json:"discipline,omitempty"`
	ExperienceBracket  *string `gorm:"type:text" json:"experience_bracket,omitempty"`
	HasMentor          bool    `gorm:"not null;default:false" json:"has_mentor"`
	HoursPerWeek       *int    `json:"hours_per_week,omitempty"`
	CompletionTimeline *string `gorm:"type:text" json:"completion_timeline,omitempty"`

	SubscriptionStatus  SubscriptionStatus `gorm:"type:subscription_status;not null;default:'inactive'" json:"subscription_status"`
	SubscriptionExpires *time.Time         `json:"subscription_expires,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
