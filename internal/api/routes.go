package api

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.POST("/card", h.cardHandler)
		api.GET("/qr", h.qrHandler)
	}
}
