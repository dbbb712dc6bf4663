package repository

import (
	"errors"
	"time"

	emaildomain "mailsync-backend/internal/email/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// emailRepository implements EmailRepository interface
type emailRepository struct {
	db *gorm.DB
}

// NewEmailRepository creates a new instance of emailRepository
func NewEmailRepository(db *gorm.DB) EmailRepository {
	return &emailRepository{
		db: db,
	}
}

func (r *emailRepository) Exists(userID, messageID string) (bool, error) {
	if messageID == "" {
		return false, nil
	}
	var email emaildomain.Email
	err := r.db.Where("user_id = ? AND message_id = ?", userID, messageID).First(&email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *emailRepository) Insert(email *emaildomain.Email) (string, error) {
	email.ID = uuid.New().String()
	email.CreatedAt = time.Now()
	if err := r.db.Create(email).Error; err != nil {
		return "", err
	}
	return email.ID, nil
}

func (r *emailRepository) InsertAttachments(attachments []*emaildomain.EmailAttachment) error {
	if len(attachments) == 0 {
		return nil
	}
	now := time.Now()
	for _, a := range attachments {
		a.ID = uuid.New().String()
		a.CreatedAt = now
	}
	return r.db.Create(attachments).Error
}
