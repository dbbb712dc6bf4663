package domain

import "time"

// Email is one persisted message. MessageID is the protocol-assigned
// identifier and may be absent; rows without one are never deduplicated.
type Email struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"uniqueIndex:idx_user_message;not null"`
	MessageID   *string   `json:"message_id" gorm:"uniqueIndex:idx_user_message"`
	Subject     string    `json:"subject"`
	FromAddress string    `json:"from"`
	ToAddress   string    `json:"to"`
	Date        time.Time `json:"date"`
	HTMLContent string    `json:"html_content" gorm:"type:text"`
	TextContent string    `json:"text_content" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

// EmailAttachment belongs to exactly one Email and is inserted only after
// its parent row exists.
type EmailAttachment struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	EmailID     string    `json:"email_id" gorm:"index;not null"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	ContentID   *string   `json:"content_id"`
	IsInline    bool      `json:"is_inline"`
	CreatedAt   time.Time `json:"created_at"`
}
