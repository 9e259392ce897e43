package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/services"
	"github.com/yigit/facultyhub/internal/middleware"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

// DocumentController handles uploads attached to faculty records
type DocumentController struct {
	documentService services.DocumentService
	maxUploadBytes  int64
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService services.DocumentService, maxUploadBytes int64) *DocumentController {
	return &DocumentController{
		documentService: documentService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// UploadDocument attaches an uploaded file to a faculty record
// @Summary Upload a faculty document
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Faculty ID" Format(uuid)
// @Param file formData file true "Document"
// @Success 201 {object} dto.APIResponse{data=models.Document}
// @Failure 400 {object} dto.APIResponse "Missing or oversized file"
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculty/{id}/documents [post]
func (c *DocumentController) UploadDocument(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError([]apperrors.FieldViolation{
			{Field: "file", Message: "is required"},
		}))
		return
	}
	if c.maxUploadBytes > 0 && fileHeader.Size > c.maxUploadBytes {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError([]apperrors.FieldViolation{
			{Field: "file", Message: fmt.Sprintf("must be at most %d bytes", c.maxUploadBytes)},
		}))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("failed to open uploaded file: %w", err))
		return
	}
	defer file.Close()

	doc, err := c.documentService.Attach(ctx.Request.Context(), ctx.Param("id"), fileHeader.Filename, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(doc, "Document uploaded successfully"))
}

// DeleteDocument detaches a document from a faculty record and deletes the file
// @Summary Delete a faculty document
// @Tags documents
// @Produce json
// @Param id path string true "Faculty ID" Format(uuid)
// @Param file path string true "Stored file name"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Faculty or document not found"
// @Router /faculty/{id}/documents/{file} [delete]
func (c *DocumentController) DeleteDocument(ctx *gin.Context) {
	if err := c.documentService.Remove(ctx.Request.Context(), ctx.Param("id"), ctx.Param("file")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Document deleted successfully"))
}
