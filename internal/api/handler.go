package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pricediff/internal/comparison"
	"github.com/guttosm/pricediff/internal/domain/dto"
	"github.com/guttosm/pricediff/internal/middleware"
	"github.com/guttosm/pricediff/internal/service"
)

// Handler exposes the comparison view over HTTP.
//
// Responsibilities:
//   - Validate path, query and body parameters
//   - Forward view mutations to the ViewService
//   - Translate service views into response DTOs
type Handler struct {
	svc service.ViewService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.ViewService): owner of the comparison currently on screen.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.ViewService) *Handler {
	return &Handler{svc: svc}
}

// GetView godoc
// @Summary      Current view
// @Description  Returns the filtered and ordered comparison together with the active filters and sort state
// @Tags         view
// @Produce      json
// @Success      200  {object}  dto.ViewResponse  "Success"
// @Router       /api/v1/view [get]
func (h *Handler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewViewResponse(h.svc.Snapshot()))
}

// UpdateFilters godoc
// @Summary      Update filters
// @Description  Changes any subset of the filter criteria; omitted fields keep their value
// @Tags         view
// @Accept       json
// @Produce      json
// @Param        filters  body      dto.FilterRequest  true  "Filter fields to change"
// @Success      200      {object}  dto.ViewResponse   "Success"
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/view/filters [put]
func (h *Handler) UpdateFilters(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid filter body", err)
		return
	}
	if req.Empty() {
		middleware.AbortWithError(c, http.StatusBadRequest, "at least one filter field is required", nil)
		return
	}

	v := h.svc.UpdateCriteria(req.Apply)
	c.JSON(http.StatusOK, dto.NewViewResponse(v))
}

// SelectSort godoc
// @Summary      Select sort column
// @Description  Selecting the active column flips the direction; any other column sorts ascending
// @Tags         view
// @Produce      json
// @Param        column  path      string  true  "Column"  Enums(code, description, difference)
// @Success      200     {object}  dto.ViewResponse   "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/view/sort/{column} [post]
func (h *Handler) SelectSort(c *gin.Context) {
	col, err := comparison.ParseColumn(c.Param("column"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid sort column", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewViewResponse(h.svc.SelectSortColumn(col)))
}

// Reload godoc
// @Summary      Reload comparison
// @Description  Fetches the comparison again from the backend. Backend failures are reported in the body, not as an HTTP error
// @Tags         view
// @Produce      json
// @Success      200  {object}  dto.ViewResponse  "Success"
// @Router       /api/v1/view/reload [post]
func (h *Handler) Reload(c *gin.Context) {
	// A client going away must not leave the view half reloaded.
	ctx := context.WithoutCancel(c.Request.Context())
	c.JSON(http.StatusOK, dto.NewViewResponse(h.svc.Reload(ctx)))
}

// QueryComparison godoc
// @Summary      Query comparison
// @Description  Filters and sorts the loaded comparison without touching the stored view state
// @Tags         comparison
// @Produce      json
// @Param        search        query     string  false  "Case-insensitive substring of code or description"
// @Param        only_numeric  query     bool    false  "Only records with a numeric difference"
// @Param        show_new      query     bool    false  "Only records new today"
// @Param        show_missing  query     bool    false  "Only records missing today"
// @Param        sort          query     string  false  "Sort column"  Enums(code, description, difference)
// @Param        dir           query     string  false  "Sort direction"  Enums(asc, desc)
// @Success      200           {object}  dto.ViewResponse   "Success"
// @Failure      400           {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/comparison [get]
func (h *Handler) QueryComparison(c *gin.Context) {
	var q dto.ComparisonQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	st, err := q.SortState()
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid sort parameters", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewViewResponse(h.svc.Query(q.Criteria(), st)))
}
