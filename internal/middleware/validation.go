package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/facultyhub/internal/app/models/dto"
)

// BindJSON decodes the request body into obj. On malformed JSON it writes a
// 400 envelope, aborts the chain and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format: "+err.Error()).
			WithSeverity(dto.ErrorSeverityWarning)
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return false
	}
	return true
}

// BindQuery decodes query parameters into obj with the same error handling as BindJSON
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid query parameters: "+err.Error()).
			WithSeverity(dto.ErrorSeverityWarning)
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return false
	}
	return true
}
