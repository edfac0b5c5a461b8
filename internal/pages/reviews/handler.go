package reviews

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cravio-admin/internal/common/web"
	"cravio-admin/internal/models"
)

type Handler struct {
	page *Page
}

func NewHandler(page *Page) *Handler {
	return &Handler{page: page}
}

func (h *Handler) Register(r *gin.RouterGroup) {
	r.GET("/reviews", h.list)
	r.PUT("/reviews/:id/status", h.setStatus)
	r.DELETE("/reviews/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	criteria := Criteria{
		Rating:     c.Query("rating"),
		Restaurant: c.Query("restaurant"),
		Status:     c.Query("status"),
	}

	items, err := h.page.List(c.Request.Context(), criteria)
	resp := gin.H{
		"reviews":  items,
		"count":    len(items),
		"averages": h.page.Averages(criteria),
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
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

	review, err := h.page.SetStatus(c.Request.Context(), c.Param("id"), models.ReviewStatus(req.Status))
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.page.Delete(c.Request.Context(), c.Param("id")); err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
