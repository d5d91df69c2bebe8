// Package model holds the GORM persistence models mirroring the database
// tables. They stay separate from the domain entities so schema concerns
// never leak into business logic.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:text;not null"`
	Email        string `gorm:"type:text;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;type:text;not null"`
	Role         string `gorm:"type:text;not null;default:customer"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
