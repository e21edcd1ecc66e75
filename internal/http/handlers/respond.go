package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crudkit/internal/domain"
)

// WriteResult sends the standard response envelope. The HTTP status code is
// derived from the operation status; the payload always carries both the
// result value and the gathered notifications.
func WriteResult[T any](c *gin.Context, res domain.Result[T], notifier *domain.Collector) {
	c.JSON(res.Status.HTTPStatus(), domain.WebResult[T]{
		Result:        res.Value,
		Notifications: notifier.Notifications(),
	})
}

// BindFilter reads the paging contract from the query string. Paging
// defaults to the first page of the default size; an explicit pageSize=0
// disables paging.
func BindFilter(c *gin.Context) *domain.Filter {
	filter := domain.NewFilter()
	filter.SearchTerm = strings.TrimSpace(c.Query("searchTerm"))
	filter.SortName = strings.TrimSpace(c.Query("sortName"))
	filter.SortDescending = c.Query("sortDescending") == "true"
	filter.Includes = c.QueryArray("include")

	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if raw := c.Query("pageSize"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size >= 0 {
			filter.PageSize = size
		}
	}

	return filter
}

// ParseID reads the :id path parameter. A malformed id is reported as a
// data problem, not an internal error.
func ParseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notifier := domain.NewCollector()
		notifier.Error(domain.MsgBadRequest)
		WriteResult(c, domain.Fail[uuid.UUID](domain.Unprocessable, domain.MsgBadRequest), notifier)
		return uuid.Nil, false
	}
	return id, true
}
