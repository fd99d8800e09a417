package rest

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// DataResult is the uniform response body: {"data": <value>}.
type DataResult[T any] struct {
	Data T `json:"data"`
}

// Wrap converts any serializable value into the envelope shape.
func Wrap[T any](v T) DataResult[T] {
	return DataResult[T]{Data: v}
}

// Response pairs a status code with an optional body. A nil Body is sent
// as an empty response.
type Response struct {
	Status int
	Body   any
}

func Created[T any](data T) *Response {
	return &Response{Status: http.StatusCreated, Body: Wrap(data)}
}

func OK[T any](data T) *Response {
	return &Response{Status: http.StatusOK, Body: Wrap(data)}
}

func NoContent() *Response {
	return &Response{Status: http.StatusNoContent}
}

// Send writes the response using the app's JSON encoder.
func (r *Response) Send(c *fiber.Ctx) error {
	if r.Body == nil {
		c.Status(r.Status)
		return nil
	}
	return c.Status(r.Status).JSON(r.Body)
}
