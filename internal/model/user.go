package model

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an authenticated staff member
type User struct {
	BaseModel
	Email           string  `gorm:"type:varchar(120);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password        string  `gorm:"type:varchar(256);not null" json:"-"`
	FirstName       string  `gorm:"type:varchar(100)" json:"first_name"`
	LastName        string  `gorm:"type:varchar(100)" json:"last_name"`
	ProfileImageURL string  `json:"profile_image_url,omitempty"`
	Role            string  `gorm:"type:varchar(20);default:'user'" json:"role"` // user, admin
	FactoryID       *string `gorm:"type:varchar(50)" json:"factory_id,omitempty"`
	IsActive        bool    `gorm:"default:true" json:"is_active"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword verifies the provided password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// FullName falls back to the mailbox part of the email when no name is set
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return strings.SplitN(u.Email, "@", 2)[0]
	}
}
