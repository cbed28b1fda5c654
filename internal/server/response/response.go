// Package response writes the JSON envelope shared by every API route:
// {"data": ..., "error": ..., "metadata": ...}.
package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// APIVersion is reported in every envelope.
const APIVersion = "v1"

// Envelope is the body of every reply. Data is null on errors.
type Envelope struct {
	Data     any      `json:"data"`
	Error    *Problem `json:"error,omitempty"`
	Metadata Metadata `json:"metadata"`
}

// Problem describes a failed request.
type Problem struct {
	Code    ErrCode           `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Metadata ties a reply back to its request and the server log line.
type Metadata struct {
	RequestID  string `json:"request_id"`
	Timestamp  string `json:"timestamp"`
	APIVersion string `json:"api_version"`
	LatencyMS  int64  `json:"latency_ms"`
}

// Success writes data with status.
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Data: data, Metadata: metadataFor(c)})
}

// Fail writes the canned message for code.
func Fail(c *gin.Context, status int, code ErrCode) {
	FailWithFields(c, status, code, nil)
}

// FailWithFields writes the canned message for code plus per-field details,
// usually from the validator.
func FailWithFields(c *gin.Context, status int, code ErrCode, fields map[string]string) {
	c.JSON(status, problem(c, code, fields))
}

// AbortFail stops the handler chain, for use in middleware.
func AbortFail(c *gin.Context, status int, code ErrCode) {
	c.AbortWithStatusJSON(status, problem(c, code, nil))
}

func problem(c *gin.Context, code ErrCode, fields map[string]string) Envelope {
	if code == "" {
		code = ErrInternal
	}
	return Envelope{
		Error:    &Problem{Code: code, Message: GetMessage(code), Fields: fields},
		Metadata: metadataFor(c),
	}
}

func metadataFor(c *gin.Context) Metadata {
	now := time.Now().UTC()
	m := Metadata{
		RequestID:  c.GetString(ContextKeyRequestID),
		Timestamp:  now.Format(time.RFC3339),
		APIVersion: APIVersion,
	}
	if m.RequestID == "" {
		m.RequestID = uuid.NewString()
	}
	if started := c.GetTime(ContextKeyStartedAt); !started.IsZero() {
		m.LatencyMS = now.Sub(started).Milliseconds()
	}
	return m
}

// NotFound is the handler for unknown routes.
func NotFound(c *gin.Context) {
	Fail(c, http.StatusNotFound, ErrNotFound)
}
