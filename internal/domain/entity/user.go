package entity

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role names seeded at startup
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is an account that takes assessments
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UUID       string    `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	Username   string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email      string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password   string    `gorm:"size:100;not null" json:"-"`
	Avatar     string    `gorm:"size:255;not null;default:''" json:"avatar"`
	IsVerified bool      `gorm:"not null;default:false" json:"is_verified"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	IsDeleted  bool      `gorm:"not null;default:false" json:"-"`
	Roles      []Role    `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID" json:"roles,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName sets the GORM table name
func (User) TableName() string {
	return "users"
}

// BeforeSave hashes the password unless it already is a bcrypt hash
func (u *User) BeforeSave(tx *gorm.DB) error {
	if len(u.Password) > 0 && !strings.HasPrefix(u.Password, "$2a$") &&
		!strings.HasPrefix(u.Password, "$2b$") && !strings.HasPrefix(u.Password, "$2y$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return nil
}

// CheckPassword reports whether password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// HasRole reports whether the user carries the named role (case-sensitive)
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name && !r.IsDeleted {
			return true
		}
	}
	return false
}

// IsAdmin is shorthand for HasRole(RoleAdmin)
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// CanTakeAssessments reports whether the account may submit assessments
func (u *User) CanTakeAssessments() bool {
	return u.IsActive && !u.IsDeleted
}

// Role is a named permission set
type Role struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UUID      string    `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	IsDeleted bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Role) TableName() string {
	return "roles"
}

// UserRole links users to roles
type UserRole struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UUID      string    `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_role" json:"user_id"`
	RoleID    uint      `gorm:"not null;uniqueIndex:idx_user_role" json:"role_id"`
	IsDeleted bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
