package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/chromapack/pkg/config"
)

func TestNew(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		logger, err := New(config.Logging{Level: "warn", Format: "text"})
		require.NoError(t, err)
		assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
		assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	})

	t.Run("json", func(t *testing.T) {
		logger, err := New(config.Logging{Level: "debug", Format: "json"})
		require.NoError(t, err)
		assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := New(config.Logging{Level: "chatty"})
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := New(config.Logging{Level: "info", Format: "xml"})
		assert.Error(t, err)
	})
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(config.Logging{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/api/v1/catalog", line["path"])
	assert.Equal(t, float64(http.StatusTeapot), line["status"])
	assert.Equal(t, float64(15), line["bytes"])
	assert.Equal(t, "debug", line["level"])
}

func TestRequestLogger_ServerErrorsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(config.Logging{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x", nil))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warning", line["level"])
}
