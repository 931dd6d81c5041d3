package param_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/veloxweb/param"
)

func mustBind[T comparable](t *testing.T, typ param.Type[T], input string) param.Param[T] {
	t.Helper()
	p, errResp := typ.Bind(input)
	assert.Nil(t, errResp)
	return p
}

func TestEqualParams(t *testing.T) {
	a := mustBind(t, param.Int(), "7")
	b := mustBind(t, param.Int(), "7")

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestUnequalValues(t *testing.T) {
	a := mustBind(t, param.Int(), "7")
	b := mustBind(t, param.Int(), "8")

	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestDifferentKindsNeverEqual(t *testing.T) {
	port := param.Type[int]{Kind: "Port", Parse: param.Int().Parse}

	a := mustBind(t, param.Int(), "8080")
	b := mustBind(t, port, "8080")

	// Same wrapped value, different concrete parameter types.
	assert.Equal(t, a.Get(), b.Get())
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestDefaultKindIsTheGoType(t *testing.T) {
	numeric := param.Type[int]{Parse: param.Int().Parse}

	a := mustBind(t, numeric, "3")
	b := mustBind(t, numeric, "3")
	assert.True(t, a.Equal(b))
}
