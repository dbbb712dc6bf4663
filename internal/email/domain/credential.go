package domain

import "time"

// EmailCredential holds one user's mailbox login. Rows are created and
// updated out of band; the sync service only reads them. IMAPPassword is
// encrypted with the service ENCRYPTION_KEY. Host, port and TLS are
// optional overrides of the service-wide defaults (empty/zero/nil means
// use the default).
type EmailCredential struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"uniqueIndex;not null"`
	IMAPUsername string    `json:"imap_username" gorm:"not null"`
	IMAPPassword string    `json:"-" gorm:"not null"`
	IMAPHost     string    `json:"imap_host"`
	IMAPPort     int       `json:"imap_port"`
	IMAPTLS      *bool     `json:"imap_tls"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
