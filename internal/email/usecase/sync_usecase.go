package usecase

import (
	"fmt"
	"log"
	"time"

	emaildomain "mailsync-backend/internal/email/domain"
	"mailsync-backend/internal/email/repository"
	"mailsync-backend/pkg/config"
	"mailsync-backend/pkg/utils/crypto"
)

// syncUsecase implements SyncUsecase interface
type syncUsecase struct {
	emailRepo repository.EmailRepository
	credRepo  repository.CredentialRepository
	provider  emaildomain.MailProvider
	cfg       *config.Config
	pacer     Pacer
	now       func() time.Time
}

// NewSyncUsecase creates a new instance of syncUsecase
func NewSyncUsecase(emailRepo repository.EmailRepository, credRepo repository.CredentialRepository, provider emaildomain.MailProvider, cfg *config.Config, pacer Pacer) SyncUsecase {
	return &syncUsecase{
		emailRepo: emailRepo,
		credRepo:  credRepo,
		provider:  provider,
		cfg:       cfg,
		pacer:     pacer,
		now:       time.Now,
	}
}

func (u *syncUsecase) SyncAllUsers() error {
	log.Printf("[EmailSync] Starting email sync for all users")

	creds, err := u.credRepo.ListAll()
	if err != nil {
		return fmt.Errorf("listing email credentials: %w", err)
	}

	if len(creds) == 0 {
		log.Printf("[EmailSync] No users with email credentials found")
		return nil
	}
	log.Printf("[EmailSync] Found %d users with email credentials", len(creds))

	// Users are synced strictly one after another; parallel passes would
	// hammer mail servers that share IP rate limits.
	for _, cred := range creds {
		u.pacer.Wait()
		u.syncUserGuarded(cred)
	}

	log.Printf("[EmailSync] Email sync completed for all users")
	return nil
}

// syncUserGuarded keeps a bug in one user's pass from taking down the
// fleet. SyncUser already recovers every expected failure itself.
func (u *syncUsecase) syncUserGuarded(cred *emaildomain.EmailCredential) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[EmailSync] Sync for %s panicked: %v", cred.IMAPUsername, r)
		}
	}()
	u.SyncUser(cred)
}

func (u *syncUsecase) SyncUser(cred *emaildomain.EmailCredential) SyncSummary {
	summary := SyncSummary{UserID: cred.UserID}

	log.Printf("[EmailSync] Starting email sync for user: %s", cred.IMAPUsername)

	password := cred.IMAPPassword
	if u.cfg.EncryptionKey != "" {
		decrypted, err := crypto.Decrypt(cred.IMAPPassword, u.cfg.EncryptionKey)
		if err != nil {
			log.Printf("[EmailSync] Error decrypting credentials for %s: %v", cred.IMAPUsername, err)
			return summary
		}
		password = decrypted
	}

	session, err := u.provider.Open(cred, password)
	if err != nil {
		log.Printf("[EmailSync] Error syncing emails for %s: %v", cred.IMAPUsername, err)
		return summary
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Printf("[EmailSync] Error closing session for %s: %v", cred.IMAPUsername, err)
		}
	}()

	release, err := session.SelectMailbox("INBOX")
	if err != nil {
		log.Printf("[EmailSync] Error syncing emails for %s: %v", cred.IMAPUsername, err)
		return summary
	}
	defer release()

	since := u.now().AddDate(0, 0, -u.cfg.SyncLookbackDays)
	uids, err := session.ListSince(since)
	if err != nil {
		log.Printf("[EmailSync] Error syncing emails for %s: %v", cred.IMAPUsername, err)
		return summary
	}

	// Keep only the most recent maxEmails candidates; anything beyond the
	// cap is never fetched. UIDs arrive oldest first, so cap from the
	// tail, then reverse to process newest first.
	if max := u.cfg.MaxEmailsPerSync; max > 0 && len(uids) > max {
		uids = uids[len(uids)-max:]
	}
	for i, j := 0, len(uids)-1; i < j; i, j = i+1, j-1 {
		uids[i], uids[j] = uids[j], uids[i]
	}

	log.Printf("[EmailSync] Found %d recent messages for %s", len(uids), cred.IMAPUsername)

	for _, uid := range uids {
		raw, err := session.FetchRaw(uid)
		if err != nil {
			log.Printf("[EmailSync] Error processing message %d for %s: %v", uid, cred.IMAPUsername, err)
			summary.Errored++
			continue
		}

		parsed, err := session.Parse(raw)
		if err != nil {
			log.Printf("[EmailSync] Error processing message %d for %s: %v", uid, cred.IMAPUsername, err)
			summary.Errored++
			continue
		}

		// Messages without a protocol identifier are always treated as
		// new; the existence check is skipped entirely.
		if parsed.MessageID != "" {
			exists, err := u.emailRepo.Exists(cred.UserID, parsed.MessageID)
			if err != nil {
				// Fail open: a broken existence check re-inserts rather
				// than silently dropping mail.
				log.Printf("[EmailSync] Error checking message %s for user %s: %v", parsed.MessageID, cred.UserID, err)
				exists = false
			}
			if exists {
				summary.Skipped++
				continue
			}
		}

		emailID, err := u.emailRepo.Insert(u.buildEmail(parsed, cred.UserID))
		if err != nil {
			log.Printf("[EmailSync] Error saving email for user %s: %v", cred.UserID, err)
			summary.Errored++
			continue
		}

		// Attachments are best effort; a failure here never demotes the
		// message from synced.
		if attachments := buildAttachments(parsed.Attachments, emailID); len(attachments) > 0 {
			if err := u.emailRepo.InsertAttachments(attachments); err != nil {
				log.Printf("[EmailSync] Error saving attachments for email %s: %v", emailID, err)
			}
		}
		summary.Synced++
	}

	log.Printf("[EmailSync] Sync completed for %s: %d new, %d skipped, %d errors",
		cred.IMAPUsername, summary.Synced, summary.Skipped, summary.Errored)
	return summary
}

func (u *syncUsecase) buildEmail(parsed *emaildomain.ParsedEmail, userID string) *emaildomain.Email {
	email := &emaildomain.Email{
		UserID:      userID,
		Subject:     parsed.Subject,
		FromAddress: parsed.From,
		ToAddress:   parsed.To,
		Date:        parsed.Date,
		HTMLContent: parsed.HTMLBody,
		TextContent: parsed.TextBody,
	}
	if parsed.MessageID != "" {
		id := parsed.MessageID
		email.MessageID = &id
	}
	if email.Date.IsZero() {
		email.Date = u.now()
	}
	return email
}

func buildAttachments(parsed []emaildomain.ParsedAttachment, emailID string) []*emaildomain.EmailAttachment {
	attachments := make([]*emaildomain.EmailAttachment, 0, len(parsed))
	for _, a := range parsed {
		attachment := &emaildomain.EmailAttachment{
			EmailID:     emailID,
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Size:        a.Size,
			IsInline:    a.Inline,
		}
		if attachment.Filename == "" {
			attachment.Filename = "unnamed"
		}
		if attachment.ContentType == "" {
			attachment.ContentType = "application/octet-stream"
		}
		if a.ContentID != "" {
			cid := a.ContentID
			attachment.ContentID = &cid
		}
		attachments = append(attachments, attachment)
	}
	return attachments
}
