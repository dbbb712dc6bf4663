package delivery

import (
	"log"
	"net/http"
	"time"

	"mailsync-backend/internal/email/usecase"

	"github.com/gin-gonic/gin"
)

// SyncHandler exposes the manual sync trigger and the health probe.
type SyncHandler struct {
	syncUsecase usecase.SyncUsecase
}

// NewSyncHandler creates a new instance of SyncHandler
func NewSyncHandler(syncUsecase usecase.SyncUsecase) *SyncHandler {
	return &SyncHandler{
		syncUsecase: syncUsecase,
	}
}

func (h *SyncHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "email-sync-service",
	})
}

// TriggerSync runs a full fleet sync synchronously. Only an enumeration
// failure surfaces as an error response; per-user failures are already
// absorbed into the pass.
func (h *SyncHandler) TriggerSync(c *gin.Context) {
	log.Printf("[SyncHandler] Manual sync triggered")
	if err := h.syncUsecase.SyncAllUsers(); err != nil {
		log.Printf("[SyncHandler] Manual sync failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sync completed",
	})
}
