package model

// Session maps an opaque token handed to the client onto the user it
// authenticates. Rows are deleted on logout; expired rows are treated
// as anonymous and removed lazily.
type Session struct {
	Token     string `gorm:"primaryKey;size:64"`
	UserID    string `gorm:"index;not null"`
	ExpiresAt int64  `gorm:"index;not null"`
	CreatedAt int64  `gorm:"not null"`
}
