package response

import (
	"errors"
	"fmt"
	"net/http"

	"detection-srv/pkg/discord"
	pkgErrors "detection-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MsgSuccess,
		Data:      data,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   MsgUnauthorized,
	})
}

// Error writes an error response. Known *HTTPError values keep their status
// and message; anything else becomes an opaque 500 and is reported to the ops
// webhook when one is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	if d != nil {
		_ = d.SendError(c.Request.Context(), "Unhandled error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MsgInternalError,
	})
}

// ErrorWithMap resolves err through the supplied mapping before writing it.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, d discord.IDiscord) {
	for domainErr, httpErr := range mapping {
		if errors.Is(err, domainErr) {
			Error(c, httpErr, d)
			return
		}
	}
	Error(c, err, d)
}

// PanicError reports a recovered panic and writes an opaque 500.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	if d != nil {
		_ = d.SendError(c.Request.Context(), "Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MsgInternalError,
	})
}
