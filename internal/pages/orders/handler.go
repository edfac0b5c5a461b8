package orders

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cravio-admin/internal/common/web"
	"cravio-admin/internal/models"
)

// Handler exposes the orders page over HTTP.
type Handler struct {
	page *Page
}

func NewHandler(page *Page) *Handler {
	return &Handler{page: page}
}

func (h *Handler) Register(r *gin.RouterGroup) {
	r.GET("/orders", h.list)
	r.GET("/orders/analytics", h.analytics)
	r.PUT("/orders/:id/status", h.setStatus)
	r.POST("/orders/:id/items", h.attachItems)
}

func (h *Handler) list(c *gin.Context) {
	criteria := Criteria{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	items, err := h.page.List(c.Request.Context(), criteria)
	resp := gin.H{"orders": items, "count": len(items)}
	if err != nil {
		// Stale data plus the load error, not one or the other.
		resp["error"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) analytics(c *gin.Context) {
	criteria := Criteria{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	if err := h.page.Load(c.Request.Context()); err != nil {
		web.RespondError(c, err)
		return
	}
	today := time.Now().UTC().Format("2006-01-02")
	c.JSON(http.StatusOK, h.page.Analytics(criteria, today))
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

	order, err := h.page.SetStatus(c.Request.Context(), c.Param("id"), models.OrderStatus(req.Status))
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *Handler) attachItems(c *gin.Context) {
	var items []models.NewOrderItemInput
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, web.ErrorBody{Code: "VALIDATION_FAILED", Message: err.Error()})
		return
	}

	n, err := h.page.AttachItems(c.Request.Context(), c.Param("id"), items)
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"affected_rows": n})
}
