// Package api binds the REST surface to the graph registry and the
// interview session manager.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/skillgraph/graph"
	"github.com/skillsenselab/skillgraph/interview"
	"github.com/skillsenselab/skillgraph/logger"
)

// Handler carries the dependencies of the REST handlers.
type Handler struct {
	registry *graph.Registry
	sessions *interview.Manager
	log      *logger.Logger
}

// New creates the REST handler set.
func New(reg *graph.Registry, sessions *interview.Manager, log *logger.Logger) *Handler {
	return &Handler{
		registry: reg,
		sessions: sessions,
		log:      log.WithComponent("api"),
	}
}

// Register mounts all routes on the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/ping", h.Ping)

	api := r.Group("/api")
	{
		api.GET("/nodes", h.ListNodes)
		api.GET("/nodes/:id", h.GetNode)
		api.POST("/nodes", h.CreateNode)
		api.DELETE("/nodes/:id", h.DeleteNode)
		api.POST("/nodes/:id/disable", h.DisableNode)
		api.POST("/nodes/:id/enable", h.EnableNode)

		api.POST("/edge", h.CreateEdge)
		api.DELETE("/edge", h.DeleteEdge)

		chat := api.Group("/chat")
		{
			chat.POST("/start", h.ChatStart)
			chat.POST("/answer", h.ChatAnswer)
			chat.POST("/stop", h.ChatStop)
		}
	}
}

// Ping answers liveness probes from the frontend.
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
