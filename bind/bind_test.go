package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/veloxweb/param"
	"github.com/veloxweb/param/bind"
	"github.com/veloxweb/param/consts"
)

func TestQuery(t *testing.T) {
	r := httptest.NewRequest(consts.MethodGet, "/items?limit=25", nil)

	p, errResp := bind.Value(param.Int(), bind.Query, r, "limit")
	assert.Nil(t, errResp)
	assert.Equal(t, p.Get(), 25)
}

func TestQueryFailure(t *testing.T) {
	r := httptest.NewRequest(consts.MethodGet, "/items?limit=lots", nil)

	_, errResp := bind.Value(param.Int(), bind.Query, r, "limit")
	assert.Equal(t, errResp.Status, 400)
	assert.Contains(t, errResp.Message, "limit is invalid: ")
}

func TestQueryAbsentKeyBindsEmptyInput(t *testing.T) {
	r := httptest.NewRequest(consts.MethodGet, "/items", nil)

	_, errResp := bind.Value(param.NonEmptyString(), bind.Query, r, "q")
	assert.Equal(t, errResp.Message, "q must not be empty")
}

func TestPath(t *testing.T) {
	r := httptest.NewRequest(consts.MethodGet, "/users/42", nil)
	r.SetPathValue("id", "42")

	p, errResp := bind.Value(param.Int(), bind.Path, r, "id")
	assert.Nil(t, errResp)
	assert.Equal(t, p.Get(), 42)
}

func TestHeader(t *testing.T) {
	r := httptest.NewRequest(consts.MethodGet, "/", nil)
	r.Header.Set("X-Retry-After", "1500ms")

	p, errResp := bind.Value(param.Duration(), bind.Header, r, "X-Retry-After")
	assert.Nil(t, errResp)
	assert.Equal(t, p.String(), "1.5s")
}

func TestForm(t *testing.T) {
	r := httptest.NewRequest(consts.MethodPost, "/orders", strings.NewReader("count=3"))
	r.Header.Set(consts.HeaderContentType, consts.MIMEFormData)

	p, errResp := bind.Value(param.Int(), bind.Form, r, "count")
	assert.Nil(t, errResp)
	assert.Equal(t, p.Get(), 3)
}

func TestCookie(t *testing.T) {
	r := httptest.NewRequest(consts.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: "abc123"})

	p, errResp := bind.Value(param.NonEmptyString(), bind.Cookie, r, "session")
	assert.Nil(t, errResp)
	assert.Equal(t, p.Get(), "abc123")
}

func TestCookieAbsent(t *testing.T) {
	r := httptest.NewRequest(consts.MethodGet, "/", nil)

	_, errResp := bind.Value(param.NonEmptyString(), bind.Cookie, r, "session")
	assert.Equal(t, errResp.Message, "session must not be empty")
}

func TestReply(t *testing.T) {
	r := httptest.NewRequest(consts.MethodGet, "/items?limit=lots", nil)
	_, errResp := bind.Value(param.Int(), bind.Query, r, "limit")

	w := httptest.NewRecorder()
	err := bind.Reply(w, errResp)
	assert.Nil(t, err)

	assert.Equal(t, w.Code, 400)
	assert.Equal(t, w.Header().Get(consts.HeaderContentType), consts.MIMEJSON)
	assert.Equal(t, w.Body.String(), string(errResp.Body))
}
