// Package model holds the GORM persistence models. Each mirrors one table
// created by the SQL migrations.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'users' table.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AccountModel) TableName() string {
	return "users"
}
