// Package render provides error-body renderers for the media-type hook.
// Each renderer encodes an ErrorMessage and names the content type it
// produced.
package render

import (
	"encoding/json"
	"strconv"

	"github.com/rohanthewiz/element"
	"github.com/veloxweb/param"
	"github.com/veloxweb/param/consts"
)

// JSON encodes the error body as {"code":<int>,"message":<text>} with the
// content type set to `application/json`. This matches the default renderer
// and exists so a Type can be switched back after overriding.
func JSON() param.Renderer {
	return func(msg param.ErrorMessage) ([]byte, string) {
		body, _ := json.Marshal(msg)
		return body, consts.MIMEJSON
	}
}

// Text encodes the error body as "<code>: <message>" with the content type
// set to `text/plain`.
func Text() param.Renderer {
	return func(msg param.ErrorMessage) ([]byte, string) {
		return []byte(strconv.Itoa(msg.Code) + ": " + msg.Message), consts.MIMETextPlain
	}
}

// HTML encodes the error body as a small standalone page with the content
// type set to `text/html`.
func HTML() param.Renderer {
	return func(msg param.ErrorMessage) ([]byte, string) {
		b := element.NewBuilder()
		code := strconv.Itoa(msg.Code)

		b.Html().R(
			b.Head().R(
				b.Title().T("Error " + code),
			),
			b.Body().R(
				b.H1().T(code),
				b.P().T(msg.Message),
			),
		)

		return []byte(b.String()), consts.MIMEHTML
	}
}
