package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"sheetfmt/internal/client"
	"sheetfmt/internal/domain"
	"sheetfmt/internal/formatting"
	"sheetfmt/internal/httpapi"
	"sheetfmt/internal/services/formatter"
)

func newClient(t *testing.T) *client.HTTP {
	t.Helper()
	now := time.Date(2024, time.January, 31, 15, 4, 5, 0, time.UTC)
	svc := formatter.New(formatting.NewProvider(""), nil, nil)
	srv := httptest.NewServer(httpapi.New(svc, httpapi.Options{
		Locales: []language.Tag{language.MustParse("en-AU")},
		Now:     func() time.Time { return now },
	}))
	t.Cleanup(srv.Close)
	return client.NewHTTP(srv.URL+"/", srv.Client())
}

func TestClient_Infos(t *testing.T) {
	c := newClient(t)

	infos, err := c.Infos(context.Background())
	require.NoError(t, err)
	assert.Len(t, infos, 6)

	info, err := c.Info(context.Background(), "number-format-pattern")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatterName("number-format-pattern"), info.Name)
}

func TestClient_InfoNotFound(t *testing.T) {
	_, err := newClient(t).Info(context.Background(), "nope")

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.Contains(t, err.Error(), "GET ")
	assert.Contains(t, err.Error(), "/api/formatter/nope")
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), `unknown formatter "nope"`)
}

func TestClient_EditAndFormat(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	edit, err := c.Edit(ctx, "date-format-pattern dd/mm/yyyy")
	require.NoError(t, err)
	require.NotNil(t, edit.Selector)
	assert.Empty(t, edit.Message)
	assert.Len(t, edit.TextComponents, 5)
	assert.Nil(t, edit.Next)

	got, err := c.Format(ctx, []domain.FormatRequest{
		{Selector: domain.NewSelector("number-format-pattern", "0.0"), Value: 2.25},
		{Selector: domain.NewSelector("text-format-pattern", "[@]"), Value: true},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.FormattedValue{{Text: "2.3"}, {Text: "[TRUE]"}}, got)

	got, err = c.Format(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClient_Views(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	menu, err := c.Menu(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, menu)

	samples, err := c.Samples(ctx, "time-format-pattern")
	require.NoError(t, err)
	assert.Equal(t, "15:04", samples[0].Value)

	comps, err := c.TextComponents(ctx, domain.NewSelector("number-format-pattern", "#,##0.00%"))
	require.NoError(t, err)
	assert.NotEmpty(t, comps)

	next, err := c.NextTextComponent(ctx, domain.NewSelector("number-format-pattern", "0.00%"))
	require.NoError(t, err)
	assert.Nil(t, next)

	next, err = c.NextTextComponent(ctx, domain.NewSelector("number-format-pattern", "0"))
	require.NoError(t, err)
	require.NotNil(t, next)

	_, err = c.TextComponents(ctx, domain.NewSelector("number-format-pattern", "0..0"))
	assert.True(t, domain.IsKind(err, domain.KindInvalid))
}

func TestClient_ContextCancelled(t *testing.T) {
	c := newClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Infos(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "broken", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := client.NewHTTP(srv.URL, srv.Client()).Menu(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInternal))
	assert.Contains(t, err.Error(), "502 Bad Gateway: broken")
}
