package repository

import (
	"testing"
	"time"

	emaildomain "mailsync-backend/internal/email/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.AutoMigrate(&emaildomain.EmailCredential{}, &emaildomain.Email{}, &emaildomain.EmailAttachment{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func testEmail(userID, messageID string) *emaildomain.Email {
	email := &emaildomain.Email{
		UserID:      userID,
		Subject:     "hello",
		FromAddress: "alice@example.com",
		ToAddress:   "bob@example.com",
		Date:        time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC),
		TextContent: "hi",
	}
	if messageID != "" {
		email.MessageID = &messageID
	}
	return email
}

func TestEmailRepositoryInsertAndExists(t *testing.T) {
	repo := NewEmailRepository(newTestDB(t))

	exists, err := repo.Exists("u1", "<m1@example.com>")
	if err != nil {
		t.Fatalf("Exists before insert: %v", err)
	}
	if exists {
		t.Fatal("Exists = true before insert")
	}

	id, err := repo.Insert(testEmail("u1", "<m1@example.com>"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id == "" {
		t.Fatal("Insert returned empty id")
	}

	exists, err = repo.Exists("u1", "<m1@example.com>")
	if err != nil {
		t.Fatalf("Exists after insert: %v", err)
	}
	if !exists {
		t.Fatal("Exists = false after insert")
	}
}

func TestEmailRepositoryExistsScopedToUser(t *testing.T) {
	repo := NewEmailRepository(newTestDB(t))

	if _, err := repo.Insert(testEmail("u1", "<shared@example.com>")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	exists, err := repo.Exists("u2", "<shared@example.com>")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Fatal("Exists = true for a different user's message")
	}
}

func TestEmailRepositoryExistsEmptyIdentifier(t *testing.T) {
	repo := NewEmailRepository(newTestDB(t))

	exists, err := repo.Exists("u1", "")
	if err != nil {
		t.Fatalf("Exists(\"\"): %v", err)
	}
	if exists {
		t.Fatal("Exists(\"\") = true, want false")
	}
}

func TestEmailRepositoryNilIdentifierNotDeduplicated(t *testing.T) {
	repo := NewEmailRepository(newTestDB(t))

	if _, err := repo.Insert(testEmail("u1", "")); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := repo.Insert(testEmail("u1", "")); err != nil {
		t.Fatalf("second insert without identifier: %v", err)
	}
}

func TestEmailRepositoryUniqueIndexRejectsDuplicate(t *testing.T) {
	repo := NewEmailRepository(newTestDB(t))

	if _, err := repo.Insert(testEmail("u1", "<m1@example.com>")); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := repo.Insert(testEmail("u1", "<m1@example.com>")); err == nil {
		t.Fatal("duplicate (user, message) insert succeeded, want unique index violation")
	}
	// Same identifier under another user is a distinct message.
	if _, err := repo.Insert(testEmail("u2", "<m1@example.com>")); err != nil {
		t.Fatalf("insert for second user: %v", err)
	}
}

func TestEmailRepositoryInsertAttachments(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmailRepository(db)

	emailID, err := repo.Insert(testEmail("u1", "<m1@example.com>"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	cid := "img1"
	attachments := []*emaildomain.EmailAttachment{
		{EmailID: emailID, Filename: "report.pdf", ContentType: "application/pdf", Size: 1024},
		{EmailID: emailID, Filename: "logo.png", ContentType: "image/png", Size: 512, ContentID: &cid, IsInline: true},
	}
	if err := repo.InsertAttachments(attachments); err != nil {
		t.Fatalf("InsertAttachments: %v", err)
	}

	var stored []emaildomain.EmailAttachment
	if err := db.Where("email_id = ?", emailID).Order("filename").Find(&stored).Error; err != nil {
		t.Fatalf("reading attachments back: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored %d attachments, want 2", len(stored))
	}
	if stored[0].Filename != "logo.png" || !stored[0].IsInline || stored[0].ContentID == nil || *stored[0].ContentID != "img1" {
		t.Errorf("inline attachment stored incorrectly: %+v", stored[0])
	}
	if stored[1].Filename != "report.pdf" || stored[1].IsInline {
		t.Errorf("file attachment stored incorrectly: %+v", stored[1])
	}
	for _, a := range stored {
		if a.ID == "" {
			t.Errorf("attachment %q has no id", a.Filename)
		}
	}
}

func TestEmailRepositoryInsertAttachmentsEmpty(t *testing.T) {
	repo := NewEmailRepository(newTestDB(t))

	if err := repo.InsertAttachments(nil); err != nil {
		t.Fatalf("InsertAttachments(nil): %v", err)
	}
}

func TestCredentialRepositoryListAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewCredentialRepository(db)

	creds, err := repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll on empty table: %v", err)
	}
	if len(creds) != 0 {
		t.Fatalf("ListAll on empty table returned %d rows", len(creds))
	}

	seed := []*emaildomain.EmailCredential{
		{ID: "c1", UserID: "u1", IMAPUsername: "u1@example.com", IMAPPassword: "p1"},
		{ID: "c2", UserID: "u2", IMAPUsername: "u2@example.com", IMAPPassword: "p2", IMAPHost: "imap.example.com", IMAPPort: 143},
	}
	if err := db.Create(seed).Error; err != nil {
		t.Fatalf("seeding credentials: %v", err)
	}

	creds, err = repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(creds) != 2 {
		t.Fatalf("ListAll returned %d rows, want 2", len(creds))
	}
}
