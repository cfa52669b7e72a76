// Package response defines the JSON envelope every endpoint answers with.
package response

import "github.com/gin-gonic/gin"

// Response is the common API envelope.
type Response struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	Status      int         `json:"status"`
	Error       interface{} `json:"error,omitempty"` // string or []shared.FieldError
	Data        interface{} `json:"data,omitempty"`
	AccessToken string      `json:"accessToken,omitempty"`
}

// OK writes a success envelope with optional payload.
func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Status: status, Data: data})
}

// Token writes a success envelope carrying an access token.
func Token(c *gin.Context, status int, message, token string) {
	c.JSON(status, Response{Success: true, Message: message, Status: status, AccessToken: token})
}

// Fail writes a failure envelope. err may be a string or a field-error slice.
func Fail(c *gin.Context, status int, message string, err interface{}) {
	c.JSON(status, Response{Success: false, Message: message, Status: status, Error: err})
}
