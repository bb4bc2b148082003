package inspector

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// apiResponse is the success shape of the query endpoints.
type apiResponse struct {
	Data   any    `json:"data"`
	Status int    `json:"status"`
	Path   string `json:"path"`
}

// apiError is the error shape of the query endpoints.
type apiError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Path    string `json:"path"`
}

func pathFromContext(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().URL.Path
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, apiResponse{
		Data:   data,
		Status: http.StatusOK,
		Path:   pathFromContext(c),
	})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, apiError{
		Message: message,
		Status:  http.StatusNotFound,
		Path:    pathFromContext(c),
	})
}
