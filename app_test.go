package nsconf_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/0xalexb/nsconf"
	"github.com/0xalexb/nsconf/document"
	"github.com/0xalexb/nsconf/fxdoc"
	"github.com/0xalexb/nsconf/logging"
	"github.com/0xalexb/nsconf/value"
)

func TestNewApp_CreatesAppWithDefaultLogLevel(t *testing.T) {
	t.Parallel()

	app := nsconf.NewApp(nsconf.WithOutput(&bytes.Buffer{}))
	require.NotNil(t, app)
	require.NoError(t, app.Err())
}

func TestNewApp_WithLogLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			app := nsconf.NewApp(nsconf.WithLogLevel(tc.level), nsconf.WithOutput(&bytes.Buffer{}))
			require.NotNil(t, app)
		})
	}
}

func TestNewApp_WithModules(t *testing.T) {
	t.Parallel()

	var invoked bool

	module := fx.Module("test",
		fx.Invoke(func() {
			invoked = true
		}),
	)

	app := nsconf.NewApp(nsconf.WithModules(module), nsconf.WithOutput(&bytes.Buffer{}))
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.True(t, invoked)
}

func TestNewApp_LoggerIsAvailableInFxContainer(t *testing.T) {
	t.Parallel()

	var capturedLogger *slog.Logger

	module := fx.Module("test",
		fx.Invoke(func(logger *slog.Logger) {
			capturedLogger = logger
		}),
	)

	app := nsconf.NewApp(
		nsconf.WithLogLevel("debug"),
		nsconf.WithOutput(&bytes.Buffer{}),
		nsconf.WithModules(module),
	)
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.NotNil(t, capturedLogger)
}

func TestNewApp_LoggerConfigIsSupplied(t *testing.T) {
	t.Parallel()

	var capturedConfig logging.LoggerConfig

	module := fx.Module("test",
		fx.Invoke(func(config logging.LoggerConfig) {
			capturedConfig = config
		}),
	)

	app := nsconf.NewApp(
		nsconf.WithLogLevel("warn"),
		nsconf.WithLogFormat(logging.FormatText),
		nsconf.WithOutput(&bytes.Buffer{}),
		nsconf.WithModules(module),
	)
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.Equal(t, logging.LoggerConfig{Level: "warn", Format: logging.FormatText}, capturedConfig)
}

func TestNewApp_FxEventsAreLoggedAsJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	app := nsconf.NewApp(nsconf.WithLogLevel("debug"), nsconf.WithOutput(&buf))
	require.NoError(t, app.Start())
	require.NoError(t, app.Stop())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	for _, line := range lines {
		var entry map[string]any

		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		assert.Contains(t, entry, "msg")
	}
}

func TestNewApp_WithDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.conf")
	require.NoError(t, os.WriteFile(path, []byte("ns server\n{\n}\n"), 0o600))

	var doc *document.Document

	app := nsconf.NewApp(
		nsconf.WithOutput(&bytes.Buffer{}),
		nsconf.WithDocument("app", fxdoc.WithPath(path), fxdoc.WithAutosave()),
		nsconf.WithModules(fx.Invoke(fx.Annotate(func(d *document.Document) {
			doc = d
		}, fx.ParamTags(`name:"app"`)))),
	)

	require.NoError(t, app.Start())
	require.NoError(t, doc.WriteVariable(value.FromInt("server/port", value.UShort, 8080)))
	require.NoError(t, app.Stop())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ns server\n{\n\tUShort port = \"8080\";\n}\n", string(data))
}

func TestNewApp_WithMissingDocument(t *testing.T) {
	t.Parallel()

	app := nsconf.NewApp(
		nsconf.WithOutput(&bytes.Buffer{}),
		nsconf.WithDocument("app", fxdoc.WithPath(filepath.Join(t.TempDir(), "missing.conf"))),
	)

	require.ErrorIs(t, app.Err(), fxdoc.ErrLoadFailed)
	require.Error(t, app.Start())
}

func TestApp_Stop(t *testing.T) {
	t.Parallel()

	var stopCalled bool

	module := fx.Module("test",
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					stopCalled = true

					return nil
				},
			})
		}),
	)

	app := nsconf.NewApp(nsconf.WithModules(module), nsconf.WithOutput(&bytes.Buffer{}))
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)

	err = app.Stop()
	require.NoError(t, err)
	require.True(t, stopCalled, "OnStop hook should be called")
}

func TestApp_NilApp(t *testing.T) {
	t.Parallel()

	var app *nsconf.App

	require.Error(t, app.Start())
	require.Error(t, app.Stop())
	require.Error(t, app.Err())
	require.NotPanics(t, func() {
		app.Run()
	})
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	module := fx.Module("test",
		fx.Invoke(func(shutdowner fx.Shutdowner) {
			go func() {
				_ = shutdowner.Shutdown()
			}()
		}),
	)

	app := nsconf.NewApp(nsconf.WithModules(module), nsconf.WithOutput(&bytes.Buffer{}))
	require.NotNil(t, app)

	require.NotPanics(t, func() {
		app.Run()
	})
}
