package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/foodmap-backend/internal/domain/directory"
	"github.com/yungbote/foodmap-backend/internal/http/response"
	"github.com/yungbote/foodmap-backend/internal/observability"
	"github.com/yungbote/foodmap-backend/internal/platform/apierr"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
	"github.com/yungbote/foodmap-backend/internal/services"
)

type FoodResourceHandler struct {
	svc     services.FoodResourceService
	metrics *observability.Metrics
	log     *logger.Logger
}

func NewFoodResourceHandler(svc services.FoodResourceService, metrics *observability.Metrics, baseLog *logger.Logger) *FoodResourceHandler {
	return &FoodResourceHandler{
		svc:     svc,
		metrics: metrics,
		log:     baseLog.With("handler", "FoodResourceHandler"),
	}
}

// updateFoodResourceRequest is the PUT body: the full input plus the id it replaces.
type updateFoodResourceRequest struct {
	ID *uint `json:"id"`
	directory.FoodResourceInput
}

// GET /food-resources
func (h *FoodResourceHandler) List(c *gin.Context) {
	views, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, h.metrics, err)
		return
	}
	if views == nil {
		views = []directory.FoodResourceView{}
	}
	response.RespondOK(c, views)
}

// GET /food-resources/:id
func (h *FoodResourceHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, h.log, h.metrics, err)
		return
	}
	view, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, h.metrics, err)
		return
	}
	response.RespondOK(c, view)
}

// POST /food-resources
func (h *FoodResourceHandler) Create(c *gin.Context) {
	var in directory.FoodResourceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, h.log, h.metrics, apierr.BadRequest(codeInvalidJSON, "invalid request body: %v", err))
		return
	}
	view, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.log, h.metrics, err)
		return
	}
	response.RespondCreated(c, itemLocation(c.FullPath(), view.ID), view)
}

// PUT /food-resources/:id
// The body id must be present and equal to the path id.
func (h *FoodResourceHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, h.log, h.metrics, err)
		return
	}
	var req updateFoodResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, h.metrics, apierr.BadRequest(codeInvalidJSON, "invalid request body: %v", err))
		return
	}
	if req.ID == nil || *req.ID != id {
		writeError(c, h.log, h.metrics, apierr.BadRequest(codeIDMismatch, "body id does not match path id %d", id))
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), id, req.FoodResourceInput); err != nil {
		writeError(c, h.log, h.metrics, err)
		return
	}
	response.RespondNoContent(c)
}

// DELETE /food-resources/:id
func (h *FoodResourceHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, h.log, h.metrics, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.log, h.metrics, err)
		return
	}
	response.RespondNoContent(c)
}

func parseID(c *gin.Context) (uint, error) {
	raw := strings.TrimSpace(c.Param("id"))
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apierr.BadRequest(codeInvalidID, "invalid id %q", raw)
	}
	return uint(n), nil
}

// itemLocation builds the GET-by-id URL under whichever collection route served the request.
func itemLocation(collectionRoute string, id uint) string {
	base := strings.TrimRight(collectionRoute, "/")
	return base + "/" + strconv.FormatUint(uint64(id), 10)
}
