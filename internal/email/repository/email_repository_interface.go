package repository

import (
	emaildomain "mailsync-backend/internal/email/domain"
)

// EmailRepository defines the persistence operations used by the sync core.
type EmailRepository interface {
	// Exists reports whether a message with this protocol identifier is
	// already stored for the user. An empty messageID is never a duplicate.
	Exists(userID, messageID string) (bool, error)
	// Insert stores one message atomically and returns its internal id.
	Insert(email *emaildomain.Email) (string, error)
	// InsertAttachments stores attachment rows for an already-inserted
	// message. No-op on an empty list.
	InsertAttachments(attachments []*emaildomain.EmailAttachment) error
}
