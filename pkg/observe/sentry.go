package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

const (
	_sentryMaxErrorDepth  = 9
	_sentryRequestTimeout = 5 * time.Second
)

// SentryHook is an io.Writer that can be attached to the zap logger as an
// extra sink; it forwards error-and-above records to Sentry.
type SentryHook struct {
	appEnv  string
	appName string
}

func NewSentryHook(appEnv, appName, dsn string, isDebug bool) (*SentryHook, error) {
	if dsn == "" {
		return nil, errors.New("sentry hook: no DSN")
	}

	transport := sentry.NewHTTPTransport()
	transport.Timeout = _sentryRequestTimeout

	err := sentry.Init(sentry.ClientOptions{
		AttachStacktrace: true,
		Debug:            isDebug,
		Dsn:              dsn,
		Environment:      appEnv,
		MaxErrorDepth:    _sentryMaxErrorDepth,
		ServerName:       appName,
		Transport:        transport,
	})
	if err != nil {
		return nil, errors.Wrap(err, "sentry hook: init")
	}

	return &SentryHook{
		appEnv:  appEnv,
		appName: appName,
	}, nil
}

func (h *SentryHook) Write(p []byte) (int, error) {
	var record struct {
		Level      string `json:"level"`
		Message    string `json:"msg"`
		Error      string `json:"error"`
		CallerFile string `json:"caller_file"`
		CallerLine int    `json:"caller_line"`
		CallerFunc string `json:"caller_func"`
		Stack      string `json:"stack"`
		Timestamp  string `json:"timestamp"`
	}

	if err := json.Unmarshal(p, &record); err != nil {
		log.Println(errors.Wrap(err, "[SentryHook] unmarshal log record").Error())
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(record.Level)
	if err != nil || record.Message == "" {
		return len(p), nil
	}

	switch level {
	case zapcore.ErrorLevel, zapcore.FatalLevel, zapcore.PanicLevel:
		event := sentry.NewEvent()
		event.Environment = h.appEnv
		event.Level = h.mapLevel(level)
		event.Message = record.Message
		if ts, err := time.Parse(time.RFC3339, record.Timestamp); err == nil {
			event.Timestamp = ts
		}
		event.Extra["AppName"] = h.appName
		event.Extra["CallerFile"] = record.CallerFile
		event.Extra["CallerLine"] = record.CallerLine
		event.Extra["CallerFunc"] = record.CallerFunc
		event.Extra["Stack"] = record.Stack
		event.Exception = append(event.Exception, sentry.Exception{
			Type:       record.Message,
			Value:      record.Error,
			Stacktrace: sentry.NewStacktrace(),
		})
		sentry.CaptureEvent(event)
	}

	return len(p), nil
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}
