package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sheetfmt/internal/domain"
)

func TestCheckContentType(t *testing.T) {
	assert.NoError(t, checkContentType("application/json"))
	assert.NoError(t, checkContentType("application/json; charset=utf-8"))
	assert.NoError(t, checkContentType("Application/JSON"))

	for _, h := range []string{"", "text/plain", "application/jsonx", ";;"} {
		err := checkContentType(h)
		assert.True(t, domain.IsKind(err, domain.KindUnsupported), "%q: %v", h, err)
	}
}

func TestCheckAccept(t *testing.T) {
	for _, h := range []string{
		"",
		"*/*",
		"application/*",
		"application/json",
		"text/html, application/json;q=0.5",
		"text/html;q=0.9, */*;q=0.1",
	} {
		assert.NoError(t, checkAccept(h), h)
	}

	for _, h := range []string{
		"text/html",
		"application/xml",
		"application/json;q=0",
		"text/*",
	} {
		err := checkAccept(h)
		assert.True(t, domain.IsKind(err, domain.KindNotAcceptable), "%q: %v", h, err)
	}
}
