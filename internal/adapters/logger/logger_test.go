package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stamp/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithWriter(buf)

	lg.Info("removed 2 stale archives")

	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "removed 2 stale archives")
}

func TestLogger_Warn(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithWriter(buf)

	lg.Warn("something odd")

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "something odd")
}

func TestLogger_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithWriter(buf)

	lg.Error(errors.New("boom"))

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "operation failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestLogger_Error_Nil(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithWriter(buf)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}
