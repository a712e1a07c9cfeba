package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError writes the JSON envelope for clients that asked for JSON and
// plain text otherwise. The message never carries the wrapped error.
func RespondError(c *gin.Context, err error) {
	ae := Classify(err)
	_ = c.Error(err)
	switch c.NegotiateFormat(gin.MIMEJSON, gin.MIMEPlain) {
	case gin.MIMEJSON:
		c.AbortWithStatusJSON(ae.Status, ErrorEnvelope{
			Error: APIError{Message: ae.UserMessage(), Code: ae.Code},
		})
	default:
		c.Abort()
		c.String(ae.Status, ae.UserMessage())
	}
}

// RespondAttachment sends body as a download named filename.
func RespondAttachment(c *gin.Context, contentType, filename string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, body)
}
