package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "tesla-buddy/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. HTTPErrors keep their status code,
// anything else is treated as a bad request.
func Error(c *gin.Context, err error) {
	ErrorWithData(c, err, nil)
}

// ErrorWithData is Error with extra payload for the client.
func ErrorWithData(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	status := http.StatusBadRequest
	code := 1
	if he, ok := pkgErrors.AsHTTPError(err); ok {
		status = he.StatusCode
		code = he.StatusCode
	}
	if status >= http.StatusInternalServerError {
		InternalError(c, err)
		return
	}

	c.JSON(status, Resp{
		ErrorCode: code,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// NotFound sends 404 response.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: NotFoundErrorCode,
		Message:   "Not Found",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsCode,
		Message:   "Too Many Requests",
	})
}
