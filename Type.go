package param

import (
	"fmt"
	"strings"

	"github.com/veloxweb/param/consts"
	"go.uber.org/zap"
)

// DefaultName is the parameter name used in error messages when none is
// supplied at bind time or on the Type.
const DefaultName = "Parameter"

// Renderer encodes the error body for a given message and names its content
// type. It is the media-type hook: swapping the renderer changes both the
// body encoding and the Content-Type of the error response.
type Renderer func(msg ErrorMessage) (body []byte, contentType string)

// Type describes a concrete parameter type: how raw text becomes a T, and
// how a parse failure is presented to the client. Each hook is independently
// overridable; zero fields fall back to the defaults noted below.
//
// A Type value is immutable in use (Bind takes a value receiver), so a
// single Type can be shared across handlers and goroutines.
type Type[T comparable] struct {
	// Kind identifies the concrete parameter type for Equal and Hash.
	// Empty means the Go type name of T, so two unnamed Types over the
	// same T compare within one kind.
	Kind string

	// Name is the parameter name used in error messages when Bind is not
	// given one. Empty means DefaultName.
	Name string

	// Parse converts raw input to a value. Absent input arrives as the
	// empty string. Required; Bind panics when nil.
	Parse func(input string) (T, error)

	// ErrorMessage produces the client-visible message for a parse
	// failure. If the returned text contains a "%s" marker, the parameter
	// name is substituted for it exactly once; text without the marker is
	// used unchanged. Nil means `"%s is invalid: " + err.Error()`.
	ErrorMessage func(err error) string

	// ErrorStatus is the HTTP status of the error response. Zero means
	// 400 Bad Request.
	ErrorStatus int

	// Render encodes the error body. Nil means the JSON renderer, which
	// produces {"code":<status>,"message":<text>} as application/json.
	Render Renderer

	// Logger receives a debug entry with the raw input whenever parsing
	// fails. Note the raw input may contain sensitive client data. Nil
	// means a no-op logger.
	Logger *zap.Logger
}

// WithLogger returns a copy of the Type with the given logger attached.
func (t Type[T]) WithLogger(logger *zap.Logger) Type[T] {
	t.Logger = logger
	return t
}

// Bind parses raw input into a Param. Exactly one of the results is set:
// on success the Param wraps the parsed value, on failure the ErrorResponse
// is complete (status, content type, body) and can be written to the client
// as is. An optional name overrides the Type's parameter name for this bind.
func (t Type[T]) Bind(input string, name ...string) (Param[T], *ErrorResponse) {
	if t.Parse == nil {
		panic("param: Type has no Parse function")
	}

	pName := t.Name
	if len(name) > 0 && name[0] != "" {
		pName = name[0]
	}
	if pName == "" {
		pName = DefaultName
	}

	value, err := t.Parse(input)
	if err != nil {
		return Param[T]{}, t.error(input, pName, err)
	}

	return Param[T]{kind: t.kindLabel(), value: value}, nil
}

// error builds the terminal error response for a failed parse.
func (t Type[T]) error(input, name string, cause error) *ErrorResponse {
	t.logger().Debug("invalid input received",
		zap.String("parameter", name), zap.String("input", input))

	var msg string
	if t.ErrorMessage != nil {
		msg = t.ErrorMessage(cause)
	} else {
		msg = "%s is invalid: " + cause.Error()
	}
	// Substitution contract: a "%s" marker in the message is replaced by
	// the parameter name exactly once; no marker, no substitution.
	if strings.Contains(msg, "%s") {
		msg = strings.Replace(msg, "%s", name, 1)
	}

	status := t.ErrorStatus
	if status == 0 {
		status = consts.StatusBadRequest
	}

	render := t.Render
	if render == nil {
		render = renderJSON
	}
	body, contentType := render(ErrorMessage{Code: status, Message: msg})

	return &ErrorResponse{
		Status:      status,
		ContentType: contentType,
		Body:        body,
		Message:     msg,
		Cause:       cause,
	}
}

func (t Type[T]) kindLabel() string {
	if t.Kind != "" {
		return t.Kind
	}
	var zero T
	return fmt.Sprintf("%T", zero)
}

func (t Type[T]) logger() *zap.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return zap.NewNop()
}
