package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "nl-todo/pkg/errors"
)

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends the status carried by err when it is an HTTPError, 500 otherwise.
func Error(c *gin.Context, err error) {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		c.JSON(httpErr.Code, ErrorResp{Detail: httpErr.Message})
		return
	}
	InternalError(c, err)
}

// InternalError sends 500 internal server error. The cause is never exposed.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Detail: DefaultErrorMessage})
}
