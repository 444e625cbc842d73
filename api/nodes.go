package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/skillgraph/errors"
	"github.com/skillsenselab/skillgraph/graph"
	"github.com/skillsenselab/skillgraph/logger"
	"github.com/skillsenselab/skillgraph/server"
)

// createNodeRequest is the POST /api/nodes payload.
type createNodeRequest struct {
	ID         int            `json:"id" binding:"required,gt=0"`
	Name       string         `json:"name" binding:"required"`
	Level      string         `json:"level" binding:"omitempty,oneof=A1 A2 A3"`
	Question   string         `json:"question"`
	Criteria   string         `json:"criteria"`
	CriteriaA1 string         `json:"criteria_a1"`
	CriteriaA2 string         `json:"criteria_a2"`
	CriteriaA3 string         `json:"criteria_a3"`
	Parents    []graph.NodeID `json:"parent_nodes"`
	Children   []graph.NodeID `json:"child_nodes"`
}

// ListNodes returns all nodes in insertion order.
func (h *Handler) ListNodes(c *gin.Context) {
	server.RespondOK(c, h.registry.List())
}

// GetNode returns a single node by id.
func (h *Handler) GetNode(c *gin.Context) {
	id, err := nodeIDParam(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	n, ok := h.registry.Get(id)
	if !ok {
		server.RespondWithError(c, errors.NotFound("node", c.Param("id")))
		return
	}
	server.RespondOK(c, n)
}

// CreateNode adds a node and wires its declared edges. Declared parents and
// children must already exist.
func (h *Handler) CreateNode(c *gin.Context) {
	var req createNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, errors.Validation(err.Error()))
		return
	}

	// Children are wired through AddEdge after the node exists, so check
	// them up front to avoid a half-created node.
	for _, child := range req.Children {
		if _, ok := h.registry.Get(child); !ok {
			server.RespondWithError(c, errors.NotFound("node", strconv.Itoa(int(child))))
			return
		}
	}

	n := graph.Node{
		ID:         graph.NodeID(req.ID),
		Name:       req.Name,
		Level:      graph.Level(req.Level),
		Question:   req.Question,
		Criteria:   req.Criteria,
		CriteriaA1: req.CriteriaA1,
		CriteriaA2: req.CriteriaA2,
		CriteriaA3: req.CriteriaA3,
		Parents:    req.Parents,
	}
	if err := h.registry.Add(n); err != nil {
		server.RespondWithError(c, err)
		return
	}
	for _, child := range req.Children {
		if err := h.registry.AddEdge(n.ID, child); err != nil {
			server.RespondWithError(c, err)
			return
		}
	}

	h.log.Info("Node created", logger.Fields(logger.FieldNodeID, n.ID))
	created, _ := h.registry.Get(n.ID)
	server.RespondCreated(c, created)
}

// DeleteNode removes a node and cleans up adjacency references to it.
func (h *Handler) DeleteNode(c *gin.Context) {
	id, err := nodeIDParam(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	if err := h.registry.Remove(id); err != nil {
		server.RespondWithError(c, err)
		return
	}
	h.log.Info("Node deleted", logger.Fields(logger.FieldNodeID, id))
	server.RespondNoContent(c)
}

// DisableNode excludes a node (and thereby its subtree) from traversal.
func (h *Handler) DisableNode(c *gin.Context) {
	h.setStatus(c, graph.StatusDisabled)
}

// EnableNode returns a disabled node to the not-reached pool.
func (h *Handler) EnableNode(c *gin.Context) {
	h.setStatus(c, graph.StatusNotReached)
}

func (h *Handler) setStatus(c *gin.Context, status graph.Status) {
	id, err := nodeIDParam(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	if err := h.registry.SetStatus(id, status); err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondNoContent(c)
}

// CreateEdge wires a directed edge: ?from= → ?to=.
func (h *Handler) CreateEdge(c *gin.Context) {
	from, to, err := edgeParams(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	if err := h.registry.AddEdge(from, to); err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, gin.H{"message": "edge created"})
}

// DeleteEdge removes a directed edge. Removing an absent edge is a no-op.
func (h *Handler) DeleteEdge(c *gin.Context) {
	from, to, err := edgeParams(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	if err := h.registry.RemoveEdge(from, to); err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondNoContent(c)
}

func nodeIDParam(c *gin.Context) (graph.NodeID, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.InvalidInput("id", "node id must be an integer")
	}
	return graph.NodeID(id), nil
}

func edgeParams(c *gin.Context) (graph.NodeID, graph.NodeID, error) {
	from, err := strconv.Atoi(c.Query("from"))
	if err != nil {
		return 0, 0, errors.InvalidInput("from", "edge endpoint must be an integer")
	}
	to, err := strconv.Atoi(c.Query("to"))
	if err != nil {
		return 0, 0, errors.InvalidInput("to", "edge endpoint must be an integer")
	}
	return graph.NodeID(from), graph.NodeID(to), nil
}
