// Package model defines database models
package model

// User is a registered account. The username carries a unique index so
// that two concurrent registrations of the same name can never both
// succeed, no matter how the handlers interleave.
type User struct {
	ID           string `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    int64  `gorm:"not null"`

	Sessions []Session `gorm:"foreignKey:UserID"`
}
