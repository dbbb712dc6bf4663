package repository

import (
	emaildomain "mailsync-backend/internal/email/domain"
)

// CredentialRepository reads the per-user mailbox credentials. Records are
// managed out of band; the sync service never writes them.
type CredentialRepository interface {
	// ListAll returns every configured credential record.
	ListAll() ([]*emaildomain.EmailCredential, error)
}
