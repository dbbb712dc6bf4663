package usecase

import (
	emaildomain "mailsync-backend/internal/email/domain"
)

// SyncSummary is the outcome of one per-user sync pass.
type SyncSummary struct {
	UserID  string `json:"user_id"`
	Synced  int    `json:"synced"`
	Skipped int    `json:"skipped"`
	Errored int    `json:"errored"`
}

// SyncUsecase defines the email synchronization operations
type SyncUsecase interface {
	// SyncAllUsers runs one sync pass for every configured user,
	// sequentially. It returns an error only if the credential
	// enumeration itself fails; individual user failures are logged and
	// do not stop the fleet.
	SyncAllUsers() error
	// SyncUser runs one sync pass for a single user. It never returns an
	// error: all failures are folded into the summary or logged.
	SyncUser(cred *emaildomain.EmailCredential) SyncSummary
}
