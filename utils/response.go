package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes the page count for a total row count.
func NewPagination(page, limit int, totalCount int64) Pagination {
	totalPages := int(totalCount) / limit
	if int(totalCount)%limit > 0 {
		totalPages++
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// Respond writes the uniform success envelope.
func Respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// RespondPage writes the success envelope with pagination attached.
func RespondPage(c *gin.Context, message string, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    message,
		"data":       data,
		"pagination": pagination,
	})
}

// RespondError maps an error to the failure envelope. Data is always null on
// failure; unexpected errors are logged and reported as 500.
func RespondError(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{
		"success": false,
		"message": MessageOf(err),
		"data":    nil,
	})
}
