package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cravio-admin/internal/common/web"
)

type Handler struct {
	page *Page
}

func NewHandler(page *Page) *Handler {
	return &Handler{page: page}
}

func (h *Handler) Register(r *gin.RouterGroup) {
	r.GET("/dashboard", h.summary)
}

func (h *Handler) summary(c *gin.Context) {
	summary, err := h.page.Load(c.Request.Context(), time.Now())
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
