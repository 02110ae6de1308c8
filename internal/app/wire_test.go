package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"sheetfmt/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Listen = "127.0.0.1:0"
	cfg.PresetsPath = filepath.Join(t.TempDir(), "presets.json")
	return cfg
}

func TestNewWire_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxBodyBytes = -1

	_, err := NewWire(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestWire_ServeAndShutdown(t *testing.T) {
	w, err := NewWire(testConfig(t), zap.NewNop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Serve(ctx, ln) }()

	tr := &http.Transport{DisableKeepAlives: true}
	defer tr.CloseIdleConnections()
	hc := &http.Client{Transport: tr}

	resp, err := hc.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	cancel()
	assert.NoError(t, <-done)
}

func TestWire_MenuIncludesPresets(t *testing.T) {
	w, err := NewWire(testConfig(t), zap.NewNop())
	require.NoError(t, err)

	preset := domain.MenuEntry{Label: "Mine", Selector: domain.NewSelector("number-format-pattern", "0.000")}
	require.NoError(t, w.Presets.SavePreset(preset))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Serve(ctx, ln) }()
	defer func() {
		cancel()
		assert.NoError(t, <-done)
	}()

	tr := &http.Transport{DisableKeepAlives: true}
	defer tr.CloseIdleConnections()

	cfg := testConfig(t)
	cfg.ServerURL = "http://" + ln.Addr().String()
	a := NewFromConfig(cfg, &http.Client{Transport: tr})

	menu, err := a.Client.Menu(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, menu)
	assert.Equal(t, preset, menu[len(menu)-1])
}
