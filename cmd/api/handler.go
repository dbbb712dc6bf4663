package api

import (
	emailUsecase "mailsync-backend/internal/email/usecase"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	syncUsecase emailUsecase.SyncUsecase
	engine      *gin.Engine
}

func NewHandler(syncUsecase emailUsecase.SyncUsecase) *Handler {
	engine := gin.Default()
	SetupRoutes(engine, syncUsecase)
	return &Handler{
		syncUsecase: syncUsecase,
		engine:      engine,
	}
}

// Start runs the HTTP server on the given address.
func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}
