package dishes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cravio-admin/internal/common/web"
	"cravio-admin/internal/dataapi"
)

type Handler struct {
	page *Page
}

func NewHandler(page *Page) *Handler {
	return &Handler{page: page}
}

func (h *Handler) Register(r *gin.RouterGroup) {
	r.GET("/dishes", h.list)
	r.GET("/restaurants/:id/dishes", h.byRestaurant)
	r.POST("/dishes", h.create)
	r.PUT("/dishes/:id/availability", h.setAvailability)
}

func (h *Handler) list(c *gin.Context) {
	criteria := Criteria{
		Search:       c.Query("search"),
		RestaurantID: c.Query("restaurant_id"),
		Available:    c.Query("available"),
	}

	items, err := h.page.List(c.Request.Context(), criteria)
	resp := gin.H{"dishes": items, "count": len(items)}
	if err != nil {
		resp["error"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) byRestaurant(c *gin.Context) {
	items, err := h.page.ByRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dishes": items})
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
	var input dataapi.NewDishInput
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&input); err != nil {
		c.JSON(http.StatusBadRequest, web.ErrorBody{Code: "VALIDATION_FAILED", Message: err.Error()})
		return
	}

	created, err := h.page.Create(c.Request.Context(), payload, input)
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"dish": created})
}

type availabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

func (h *Handler) setAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, web.ErrorBody{Code: "VALIDATION_FAILED", Message: err.Error()})
		return
	}

	dish, err := h.page.SetAvailability(c.Request.Context(), c.Param("id"), *req.IsAvailable)
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dish": dish})
}
