package response

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"moderation-srv/pkg/discord"
	pkgErrors "moderation-srv/pkg/errors"
)

// OK writes a 200 response with the given data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Forbidden writes a 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   "Forbidden",
	})
}

// Error writes an error response. HTTPError values keep their status code and
// message; anything else becomes a 500. Server errors are forwarded to the
// Discord webhook when one is configured.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		if httpErr.StatusCode >= http.StatusInternalServerError {
			notifyError(c, notifier, httpErr)
		}
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	if notifier != nil {
		_ = notifier.SendError(context.Background(),
			"Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

func notifyError(c *gin.Context, notifier discord.IDiscord, httpErr *pkgErrors.HTTPError) {
	if notifier == nil {
		return
	}
	_ = notifier.SendError(context.Background(),
		fmt.Sprintf("HTTP %d", httpErr.StatusCode),
		fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
		httpErr)
}
