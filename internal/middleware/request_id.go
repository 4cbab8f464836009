package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey é a chave do request id no contexto do Gin.
const RequestIDKey = "request_id"

// RequestID propaga o X-Request-ID recebido ou gera um novo UUID por request.
// O id entra no contexto e no header de resposta, e todos os logs o carregam.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
