package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// QueryParams carries common pagination query parameters
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// NewQueryParams parses pagination params with sane defaults
func NewQueryParams(c echo.Context) *QueryParams {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || size < 1 || size > 100 {
		size = 20
	}
	return &QueryParams{PageNumber: page, PageSize: size}
}
