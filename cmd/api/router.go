package api

import (
	emailDelivery "mailsync-backend/internal/email/delivery"
	emailUsecase "mailsync-backend/internal/email/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, syncUsecase emailUsecase.SyncUsecase) {
	syncHandler := emailDelivery.NewSyncHandler(syncUsecase)

	// Health check (no auth required)
	r.GET("/health", syncHandler.Health)

	// Manual sync trigger
	r.POST("/sync", syncHandler.TriggerSync)
}
