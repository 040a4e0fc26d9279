package model

import "time"

// User represents a row in users
type User struct {
	ID             string     `gorm:"primaryKey;type:uuid" json:"id"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	Email          string     `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	HashedPassword string     `gorm:"column:hashed_password;size:255" json:"-"`
	AuthType       string     `gorm:"column:auth_type;size:20;not null;default:normal" json:"auth_type"`
	Gender         string     `gorm:"size:50" json:"gender,omitempty"`
	DateOfBirth    *time.Time `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	Picture        string     `gorm:"type:text" json:"picture,omitempty"`
	CreatedAt      time.Time  `gorm:"default:now()" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
