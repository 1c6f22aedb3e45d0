package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(api *API, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(corsMiddleware())

	radio := r.Group("/api/radio")
	{
		radio.GET("/geo", api.Geo)
		radio.GET("/places", api.Places)
		radio.GET("/place/:placeId", api.Place)
		radio.GET("/place/:placeId/channels", api.PlaceChannels)
		radio.GET("/channel/:channelId", api.Channel)
		radio.GET("/search", api.Search)
		radio.GET("/listen/:channelId", api.Listen)
		radio.GET("/stream/*path", api.Stream)
		radio.GET("/locate", api.Locate)
	}

	r.GET("/health", api.Health)

	return r
}

// corsMiddleware handles CORS for browser requests. Range is allowed so the
// audio element can seek.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Range")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// requestLogger tags each request with a short-lived ID, echoes it back, and
// writes one access log line.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", id)

		start := time.Now()
		c.Next()

		log.Info().
			Str("request_id", id).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
