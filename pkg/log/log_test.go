package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	var buf bytes.Buffer
	Configure(level, &buf)
	return &buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestConfigure(t *testing.T) {
	buf := captureLogs(t, "warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	L.Info("ignorado")
	L.Warn("registrado")
	assert.NotContains(t, buf.String(), "ignorado")
	assert.Contains(t, buf.String(), "registrado")

	assert.Equal(t, logrus.InfoLevel, Configure("verbose", buf))
}

func TestWithFields_DevelopmentFiltersNoise(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	buf := captureLogs(t, "debug")

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithFields(Fields{
		"path":        "/v1/calculator",
		"remote_addr": "10.0.0.1",
	}).Info("requisição")

	out := buf.String()
	assert.Contains(t, out, id)
	assert.Contains(t, out, "/v1/calculator")
	assert.NotContains(t, out, "10.0.0.1")
}

func TestWithFields_ProductionKeepsAll(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	buf := captureLogs(t, "debug")

	L.WithFields(Fields{"remote_addr": "10.0.0.1"}).Info("requisição")
	assert.Contains(t, buf.String(), "10.0.0.1")
}
