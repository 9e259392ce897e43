package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/facultyhub/internal/app/eligibility"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/services"
	"github.com/yigit/facultyhub/internal/middleware"
	"github.com/yigit/facultyhub/internal/pkg/helpers"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// ListFaculty retrieves a filtered, paginated page of faculty records
// @Summary List faculty
// @Description Lists faculty records newest first. Status defaults to Active; "all" disables a filter.
// @Tags faculty
// @Produce json
// @Param department query string false "Department or all"
// @Param designation query string false "Designation or all"
// @Param status query string false "Status or all" default(Active)
// @Param ratified query bool false "Ratification state"
// @Param search query string false "Matches first name, last name, employee ID or email"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.FacultyListResponse}
// @Failure 400 {object} dto.APIResponse "Invalid query parameters"
// @Failure 503 {object} dto.APIResponse "Storage unavailable"
// @Router /faculty [get]
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
	var query dto.FacultyListQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	page, err := c.facultyService.List(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FacultyListResponse{
		Faculty:    dto.NewFacultyResponses(page.Items),
		Pagination: helpers.NewPaginationInfo(page.Total, page.Page, page.Limit),
	}, ""))
}

// GetFaculty retrieves a faculty record by ID
// @Summary Get faculty details
// @Tags faculty
// @Produce json
// @Param id path string true "Faculty ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.FacultyDetailResponse}
// @Failure 400 {object} dto.APIResponse "Invalid faculty ID format"
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFaculty(ctx *gin.Context) {
	faculty, err := c.facultyService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewFacultyDetailResponse(faculty), ""))
}

// CreateFaculty handles faculty creation
// @Summary Create a new faculty record
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=dto.FacultyDetailResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Email or employee ID already exists"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewFacultyDetailResponse(faculty), "Faculty created successfully"))
}

// UpdateFaculty merges the supplied fields into an existing record.
// Served for both PUT and PATCH.
// @Summary Update a faculty record
// @Tags faculty
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID" Format(uuid)
// @Param request body dto.UpdateFacultyRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyDetailResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Failure 409 {object} dto.APIResponse "Email or employee ID already exists"
// @Router /faculty/{id} [put]
// @Router /faculty/{id} [patch]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	var req dto.UpdateFacultyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewFacultyDetailResponse(faculty), "Faculty updated successfully"))
}

// DeleteFaculty removes a faculty record
// @Summary Delete a faculty record
// @Tags faculty
// @Produce json
// @Param id path string true "Faculty ID" Format(uuid)
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	if err := c.facultyService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Faculty deleted successfully"))
}

// ListEligible retrieves active, unratified faculty who qualify today
// @Summary List faculty eligible for ratification
// @Tags ratification
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.FacultyResponse}
// @Router /faculty/ratification/eligible [get]
func (c *FacultyController) ListEligible(ctx *gin.Context) {
	faculty, err := c.facultyService.ListEligible(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewFacultyResponses(faculty), ""))
}

// GetRules returns the ratification thresholds per designation
// @Summary Ratification rules
// @Tags ratification
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]eligibility.Rule}
// @Router /faculty/ratification/rules [get]
func (c *FacultyController) GetRules(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(eligibility.Rules(), ""))
}

// RatifyFaculty ratifies an eligible faculty member
// @Summary Ratify a faculty member
// @Tags ratification
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID" Format(uuid)
// @Param request body dto.RatifyRequest true "Ratification details"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyDetailResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Failure 422 {object} dto.APIResponse "Not eligible or already ratified"
// @Router /faculty/{id}/ratify [post]
func (c *FacultyController) RatifyFaculty(ctx *gin.Context) {
	var req dto.RatifyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.Ratify(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewFacultyDetailResponse(faculty), "Faculty ratified successfully"))
}
