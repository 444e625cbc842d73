package api

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/skillgraph/errors"
	"github.com/skillsenselab/skillgraph/graph"
	"github.com/skillsenselab/skillgraph/logger"
	"github.com/skillsenselab/skillgraph/server"
)

const (
	noQuestionsMessage = "No questions available. Please add nodes with questions to the knowledge graph."
	completedMessage   = "Interview complete! You have answered all available questions."
)

// answerRequest is the POST /api/chat/answer payload.
type answerRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
}

// stopRequest is the POST /api/chat/stop payload.
type stopRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// chatResponse is the common chat reply shape.
type chatResponse struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id"`
	Completed bool   `json:"completed"`
}

// ChatStart starts a new interview at the requested level ceiling and
// returns the first question.
func (h *Handler) ChatStart(c *gin.Context) {
	level := graph.Level(c.Query("level"))
	if !graph.ValidLevel(level) {
		server.RespondWithError(c, errors.InvalidInput("level", "level must be one of A1, A2, A3"))
		return
	}

	id, first, ok := h.sessions.Start(level)
	if !ok {
		server.RespondOK(c, chatResponse{Question: noQuestionsMessage, SessionID: id, Completed: true})
		return
	}

	h.log.Info("Interview session started", logger.Fields(logger.FieldSessionID, id, "level", level))
	server.RespondOK(c, chatResponse{Question: first.Question, SessionID: id})
}

// ChatAnswer submits an answer and returns the next question.
func (h *Handler) ChatAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, errors.Validation(err.Error()))
		return
	}

	next, completed, err := h.sessions.Answer(c.Request.Context(), req.SessionID, req.Answer)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	if completed {
		server.RespondOK(c, chatResponse{Question: completedMessage, SessionID: req.SessionID, Completed: true})
		return
	}
	server.RespondOK(c, chatResponse{Question: next.Question, SessionID: req.SessionID})
}

// ChatStop tears the session down and returns the summary.
func (h *Handler) ChatStop(c *gin.Context) {
	var req stopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, errors.Validation(err.Error()))
		return
	}

	summary, err := h.sessions.Stop(c.Request.Context(), req.SessionID)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, gin.H{"summary": summary, "session_id": req.SessionID})
}
