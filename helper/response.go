package helper

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	customErrors "github.com/roysitumorang/storefront/errors"
	"github.com/roysitumorang/storefront/models"
)

const (
	APP = "storefront"
)

type (
	// Response is the envelope every storefront endpoint writes.
	Response struct {
		RequestID  string    `json:"request_id" example:"6ba3451b-ac73-483e-8481-2ac53f5e75a2"`
		RequestURL string    `json:"request_url" example:"GET http://localhost:8080/v1/cart"`
		SessionID  string    `json:"session_id,omitempty" example:"0b1c2d3e-4f50-6172-8394-a5b6c7d8e9f0"`
		StatusCode int       `json:"status_code" example:"200"`
		Status     string    `json:"status" example:"OK"`
		Message    string    `json:"message" example:""`
		Timestamp  time.Time `json:"timestamp" example:"2026-10-15T09:30:00.000000000+07:00"`
		Latency    string    `json:"latency" example:"1.204512ms"`
		Data       any       `json:"data,omitempty"`
		App        string    `json:"app" example:"storefront"`
	}
)

func NewResponse(statusCode int) *Response {
	return &Response{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Timestamp:  time.Now(),
		App:        APP,
	}
}

// NewErrorResponse takes its status from a status-coded error in err's
// chain, or fallback.
func NewErrorResponse(err error, fallback int) *Response {
	return NewResponse(customErrors.StatusCode(err, fallback)).SetMessage(err.Error())
}

func (r *Response) SetMessage(message string) *Response {
	r.Message = message
	return r
}

func (r *Response) SetData(data any) *Response {
	r.Data = data
	return r
}

func (r *Response) WriteResponse(c *fiber.Ctx) error {
	if r.StatusCode == fiber.StatusNoContent {
		return c.SendStatus(r.StatusCode)
	}
	r.RequestURL = c.Method() + " " + c.BaseURL() + c.OriginalURL()
	r.RequestID = ByteSlice2String(c.Response().Header.Peek(fiber.HeaderXRequestID))
	r.SessionID, _ = c.Locals(models.CurrentSessionID).(string)
	r.Latency = time.Since(c.Context().Time()).String()
	return c.Status(r.StatusCode).JSON(r)
}
