package repository

import (
	emaildomain "mailsync-backend/internal/email/domain"

	"gorm.io/gorm"
)

// credentialRepository implements CredentialRepository interface
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new instance of credentialRepository
func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

func (r *credentialRepository) ListAll() ([]*emaildomain.EmailCredential, error) {
	var creds []*emaildomain.EmailCredential
	if err := r.db.Find(&creds).Error; err != nil {
		return nil, err
	}
	return creds, nil
}
