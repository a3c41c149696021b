package recorder

// NoopRecorder is a no-op implementation used when run history is disabled.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSearch(_ *SearchSnapshot) error { return nil }
func (n *NoopRecorder) Close() error                         { return nil }
