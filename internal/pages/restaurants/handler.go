package restaurants

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
	r.GET("/restaurants", h.list)
	r.GET("/hygiene-ratings", h.hygiene)
	r.POST("/restaurants", h.create)
	r.PUT("/restaurants/:id", h.update)
	r.PUT("/restaurants/:id/status", h.setStatus)
}

func (h *Handler) list(c *gin.Context) {
	criteria := Criteria{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	items, err := h.page.List(c.Request.Context(), criteria)
	resp := gin.H{"restaurants": items, "count": len(items)}
	if err != nil {
		resp["error"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) hygiene(c *gin.Context) {
	items, err := h.page.Hygiene(c.Request.Context())
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": items})
}

func (h *Handler) create(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.ErrorBody{Code: "VALIDATION_FAILED", Message: err.Error()})
		return
	}

	// The raw payload feeds schema validation; the typed input feeds the API.
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.JSON(http.StatusBadRequest, web.ErrorBody{Code: "VALIDATION_FAILED", Message: err.Error()})
		return
	}
	var input dataapi.NewRestaurantInput
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&input); err != nil {
		c.JSON(http.StatusBadRequest, web.ErrorBody{Code: "VALIDATION_FAILED", Message: err.Error()})
		return
	}

	created, err := h.page.Create(c.Request.Context(), payload, input)
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"restaurant": created})
}

func (h *Handler) update(c *gin.Context) {
	var set map[string]interface{}
	if err := c.ShouldBindJSON(&set); err != nil {
		c.JSON(http.StatusBadRequest, web.ErrorBody{Code: "VALIDATION_FAILED", Message: err.Error()})
		return
	}

	updated, err := h.page.Update(c.Request.Context(), c.Param("id"), set)
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": updated})
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

	restaurant, err := h.page.SetStatus(c.Request.Context(), c.Param("id"), models.RestaurantStatus(req.Status))
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}
