package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/esimov/seamcarver/utils"
)

// newLogger creates a logger writing to w with timestamps formatted as "15:04:05.00".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of an operation when it is done.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
func (p *progress) done(msg string, keyvals ...interface{}) {
	keyvals = append(keyvals, "elapsed", utils.FormatTime(time.Since(p.start)))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
