package model

type File struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Name the file is stored under, built from the form field name,
	// the upload timestamp and the original extension
	FileKey string `gorm:"not null" json:"file_key"`

	// Original file name before turning it into a storage key
	OriginalName string `json:"name"`

	// Content type the client declared for the upload
	DeclaredType string `json:"declared_type"`

	// What the bytes actually looked like. Informational only, the
	// upload was accepted on extension + declared type alone
	DetectedType string `json:"detected_type"`

	Size        int64  `json:"size"`
	StoragePath string `json:"-"`
	CreatedAt   int64  `gorm:"not null" json:"created_at"`
}
