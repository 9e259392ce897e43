package helpers

import (
	"math"

	"github.com/yigit/facultyhub/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // Default page is 1-based
)

// NormalizePage clamps a requested page and limit into their allowed ranges
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// CalculateOffsetLimit calculates the offset and limit for queries based on 1-based page index.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	page, limit = NormalizePage(page, size)
	offset = uint64((page - 1) * limit)
	return offset, limit
}

// TotalPages returns ceil(total/limit), or 0 when there is nothing to page through
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number; it is echoed back even past the last page.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	page, size = NormalizePage(page, size)
	return dto.PaginationInfo{
		Current: page,
		Pages:   TotalPages(totalItems, size),
		Total:   totalItems,
		Limit:   size,
	}
}

// CalculateSliceIndices calculates the start and end indices for slicing an array for pagination
func CalculateSliceIndices(offset, limit, totalItems int) (start, end int) {
	start = offset
	if start > totalItems {
		start = totalItems
	}
	end = start + limit
	if limit <= 0 || end > totalItems {
		end = totalItems
	}
	return start, end
}
