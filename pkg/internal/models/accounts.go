package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	RoleStandard      = "usuario"
	RoleAdministrator = "administrador"
)

type Account struct {
	BaseModel

	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email" gorm:"uniqueIndex"`
	Username    string    `json:"username" gorm:"uniqueIndex"`
	Password    string    `json:"-"`
	Birthday    time.Time `json:"birthday"`
	Description string    `json:"description"`
	AvatarURL   *string   `json:"avatar_url"`
	Role        string    `json:"role" gorm:"default:usuario"`
	Active      bool      `json:"active" gorm:"default:true"`
}

func (a Account) IsAdmin() bool {
	return a.Role == RoleAdministrator
}

// MinimalProfile is the public shape other entities embed when they
// reference an account. It never carries credential material.
type MinimalProfile struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Username    string    `json:"username"`
	AvatarURL   *string   `json:"avatar_url"`
}

func (a Account) MinimalProfile() MinimalProfile {
	return MinimalProfile{
		ID:          a.ID,
		DisplayName: fmt.Sprintf("%s %s", a.FirstName, a.LastName),
		Username:    a.Username,
		AvatarURL:   a.AvatarURL,
	}
}
