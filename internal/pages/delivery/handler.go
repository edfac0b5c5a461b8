package delivery

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cravio-admin/internal/common/web"
	"cravio-admin/internal/dataapi"
	"cravio-admin/internal/models"
)

type Handler struct {
	page *Page
}

func NewHandler(page *Page) *Handler {
	return &Handler{page: page}
}

func (h *Handler) Register(r *gin.RouterGroup) {
	r.GET("/delivery-agents", h.list)
	r.POST("/delivery-agents", h.create)
	r.PUT("/delivery-agents/:id/status", h.setStatus)
	r.DELETE("/delivery-agents/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	criteria := Criteria{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	items, err := h.page.List(c.Request.Context(), criteria)
	resp := gin.H{"delivery_agents": items, "count": len(items)}
	if err != nil {
		resp["error"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) create(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.ErrorBody{Code: "VALIDATION_FAILED", Message: err.Error()})
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.JSON(http.StatusBadRequest, web.ErrorBody{Code: "VALIDATION_FAILED", Message: err.Error()})
		return
	}
	var input dataapi.NewDeliveryAgentInput
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&input); err != nil {
		c.JSON(http.StatusBadRequest, web.ErrorBody{Code: "VALIDATION_FAILED", Message: err.Error()})
		return
	}

	created, err := h.page.Create(c.Request.Context(), payload, input)
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"delivery_agent": created})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) setStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, web.ErrorBody{Code: "VALIDATION_FAILED", Message: err.Error()})
		return
	}

	agent, err := h.page.SetStatus(c.Request.Context(), c.Param("id"), models.AgentStatus(req.Status))
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"delivery_agent": agent})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.page.Delete(c.Request.Context(), c.Param("id")); err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
