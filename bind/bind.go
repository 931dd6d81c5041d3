// Package bind adapts *http.Request to the param package: it extracts raw
// parameter text from the places a request carries it, runs a parameter
// Type over it, and writes the resulting error response when parsing fails.
// It does no routing; handlers or routers call it with the request they
// already hold.
package bind

import (
	"net/http"

	"github.com/rohanthewiz/serr"
	"github.com/veloxweb/param"
	"github.com/veloxweb/param/consts"
)

// Source extracts the raw text of a named parameter from a request.
// An absent parameter yields the empty string.
type Source func(r *http.Request, key string) string

// Query extracts from the URL query string.
func Query(r *http.Request, key string) string {
	return r.URL.Query().Get(key)
}

// Path extracts from the matched route pattern's path wildcards.
func Path(r *http.Request, key string) string {
	return r.PathValue(key)
}

// Header extracts from the request headers.
func Header(r *http.Request, key string) string {
	return r.Header.Get(key)
}

// Form extracts from urlencoded form data (POST body or query).
func Form(r *http.Request, key string) string {
	return r.FormValue(key)
}

// Cookie extracts a cookie value.
func Cookie(r *http.Request, key string) string {
	c, err := r.Cookie(key)
	if err != nil {
		return ""
	}
	return c.Value
}

// Value extracts the raw text for key from the request via src and binds it
// with t. The key doubles as the parameter name in error messages.
func Value[T comparable](t param.Type[T], src Source, r *http.Request, key string) (param.Param[T], *param.ErrorResponse) {
	return t.Bind(src(r, key), key)
}

// Reply terminates the request with the given error response, copying its
// status, content type and body onto the wire.
func Reply(w http.ResponseWriter, resp *param.ErrorResponse) error {
	w.Header().Set(consts.HeaderContentType, resp.ContentType)
	w.WriteHeader(resp.Status)
	if _, err := w.Write(resp.Body); err != nil {
		return serr.Wrap(err, "failed to write error response")
	}
	return nil
}
