package middleware

import (
	"testing"

	applog "github.com/darkkaiser/process-server/pkg/log"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogger_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level applog.Level
		want  log.Lvl
	}{
		{applog.TraceLevel, log.DEBUG},
		{applog.DebugLevel, log.DEBUG},
		{applog.InfoLevel, log.INFO},
		{applog.WarnLevel, log.WARN},
		{applog.ErrorLevel, log.ERROR},
		{applog.FatalLevel, log.OFF},
		{applog.PanicLevel, log.OFF},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()

			l := Logger{Logger: logrus.New()}
			l.Logger.SetLevel(tt.level)
			assert.Equal(t, tt.want, l.Level())
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	t.Parallel()

	l := Logger{Logger: logrus.New()}

	l.SetLevel(log.WARN)
	assert.Equal(t, applog.WarnLevel, l.Logger.GetLevel())

	// OFF는 대응 레벨이 없어 변경하지 않음
	l.SetLevel(log.OFF)
	assert.Equal(t, applog.WarnLevel, l.Logger.GetLevel())

	assert.Empty(t, l.Prefix())
	assert.Same(t, l.Logger.Out, l.Output())
}
