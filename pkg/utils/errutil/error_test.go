package errutil

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// captureLog redirects the standard logger and records exit codes instead of exiting.
func captureLog(t *testing.T) (*bytes.Buffer, *[]int) {
	logger := logrus.StandardLogger()
	savedOut, savedExit, savedLevel := logger.Out, logger.ExitFunc, logger.GetLevel()
	t.Cleanup(func() {
		logger.SetOutput(savedOut)
		logger.ExitFunc = savedExit
		logger.SetLevel(savedLevel)
	})

	var buf bytes.Buffer
	exits := []int{}
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.InfoLevel)
	logger.ExitFunc = func(code int) { exits = append(exits, code) }
	return &buf, &exits
}

func TestWarn(t *testing.T) {
	buf, exits := captureLog(t)

	assert.False(t, Warn(nil, "rendering"))
	assert.Empty(t, buf.String())

	assert.True(t, Warn(errors.Wrap(errors.New("broken pipe"), "writing png"), "rendering"))
	assert.Contains(t, buf.String(), "rendering: writing png: broken pipe")
	assert.Contains(t, buf.String(), `cause="broken pipe"`)
	assert.Empty(t, *exits)
}

func TestCheck(t *testing.T) {
	buf, exits := captureLog(t)

	Check(nil)
	CheckWithContext(nil, "starting")
	assert.Empty(t, buf.String())
	assert.Empty(t, *exits)

	Check(errors.New("port in use"))
	assert.Contains(t, buf.String(), "level=fatal")
	assert.Contains(t, buf.String(), "port in use")
	assert.Equal(t, []int{1}, *exits)

	buf.Reset()
	CheckWithContext(errors.Wrap(errors.New("bad prefix"), "cannot build dashboard"), "cannot start dashboard")
	assert.Contains(t, buf.String(), "cannot start dashboard: cannot build dashboard: bad prefix")
	assert.Contains(t, buf.String(), `cause="bad prefix"`)
	assert.Equal(t, []int{1, 1}, *exits)
}
