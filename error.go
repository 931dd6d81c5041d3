package param

import (
	"encoding/json"
	"strconv"

	"github.com/veloxweb/param/consts"
)

// ErrorMessage is the wire shape of the error body: exactly the status code
// and the human-readable message. Renderers receive this and nothing else.
type ErrorMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is a complete HTTP error response for a failed parse. The
// HTTP layer only needs to copy Status, ContentType and Body onto the wire;
// no further transformation is required.
//
// ErrorResponse also satisfies the error interface so it can travel through
// error-returning call chains, with Unwrap exposing the parse cause.
type ErrorResponse struct {
	Status      int
	ContentType string
	Body        []byte

	// Message is the client-visible message already embedded in Body,
	// kept here for logging and tests.
	Message string

	// Cause is the underlying parse error. It is server-side context
	// only and never sent to the client.
	Cause error
}

// Error implements the error interface.
func (e *ErrorResponse) Error() string {
	return strconv.Itoa(e.Status) + ": " + e.Message
}

// Unwrap returns the underlying parse error.
func (e *ErrorResponse) Unwrap() error {
	return e.Cause
}

// renderJSON is the default renderer: {"code":<int>,"message":<text>} with
// the application/json content type.
func renderJSON(msg ErrorMessage) ([]byte, string) {
	body, err := json.Marshal(msg)
	if err != nil {
		// ErrorMessage has no unmarshalable fields; this cannot happen.
		body = []byte(`{"code":500,"message":"error encoding error message"}`)
	}
	return body, consts.MIMEJSON
}
