package main

import (
	"log"
	"time"

	api "mailsync-backend/cmd/api"
	emaildomain "mailsync-backend/internal/email/domain"
	emailRepo "mailsync-backend/internal/email/repository"
	emailScheduler "mailsync-backend/internal/email/scheduler"
	emailUsecase "mailsync-backend/internal/email/usecase"
	"mailsync-backend/pkg/config"
	"mailsync-backend/pkg/database"
	"mailsync-backend/pkg/imap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&emaildomain.EmailCredential{}, &emaildomain.Email{}, &emaildomain.EmailAttachment{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	emailRepository := emailRepo.NewEmailRepository(db)
	credentialRepository := emailRepo.NewCredentialRepository(db)

	// Initialize IMAP service
	imapService := imap.NewService(cfg)

	// Initialize sync use case
	pacer := emailUsecase.NewIntervalPacer(cfg.SyncUserDelay)
	syncUsecase := emailUsecase.NewSyncUsecase(emailRepository, credentialRepository, imapService, cfg, pacer)

	// Start the scheduled sync
	syncScheduler := emailScheduler.NewSyncScheduler(syncUsecase, time.Duration(cfg.SyncIntervalMinutes)*time.Minute)
	syncScheduler.Start()
	defer syncScheduler.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(syncUsecase)

	log.Printf("Email sync service running on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
