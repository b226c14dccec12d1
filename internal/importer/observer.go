package importer

import (
	"io"
	"log/slog"
	"time"
)

// BuildEvent captures one step of a project build.
type BuildEvent struct {
	Step     string
	Duration time.Duration
	Fields   map[string]any
}

// BuildObserver receives build progress events.
type BuildObserver interface {
	ObserveBuild(event BuildEvent)
}

// NoopBuildObserver ignores all events.
type NoopBuildObserver struct{}

func (NoopBuildObserver) ObserveBuild(BuildEvent) {}

type logBuildObserver struct {
	logger *slog.Logger
}

// NewLogBuildObserver writes build events to the provided writer as
// structured log lines.
func NewLogBuildObserver(w io.Writer) BuildObserver {
	if w == nil {
		return NoopBuildObserver{}
	}
	return &logBuildObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logBuildObserver) ObserveBuild(event BuildEvent) {
	attrs := make([]any, 0, 4+len(event.Fields)*2)
	attrs = append(attrs, "step", event.Step)
	if event.Duration > 0 {
		attrs = append(attrs, "duration_ms", event.Duration.Milliseconds())
	}
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	o.logger.Info("project_build", attrs...)
}
