package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	page *Page
}

func NewHandler(page *Page) *Handler {
	return &Handler{page: page}
}

func (h *Handler) Register(r *gin.RouterGroup) {
	r.GET("/users", h.list)
}

func (h *Handler) list(c *gin.Context) {
	criteria := Criteria{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Active: c.Query("active"),
	}

	items, err := h.page.List(c.Request.Context(), criteria)
	resp := gin.H{"users": items, "count": len(items)}
	if err != nil {
		resp["error"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
