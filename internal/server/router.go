package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/margdarshak/disha/internal/logger"
)

// NewRouter assembles the gin engine with middleware and routes.
func NewRouter(chat *ChatHandler, allowedOrigins []string, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	r.Use(cors.New(corsCfg))

	health := NewHealthHandler()
	r.GET("/", health.Root)
	r.GET("/health", health.Health)

	api := r.Group("/api")
	{
		api.POST("/chat", chat.Chat)
		api.POST("/restart", chat.Restart)
		api.GET("/transcript/:id", chat.Transcript)
	}

	return r
}
