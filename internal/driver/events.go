package driver

import "time"

// Stage describes a pipeline phase for progress reporting.
type Stage string

const (
	// StageTokenize is the tokenize stage.
	StageTokenize Stage = "tokenize"
	// StageParse is the parse stage.
	StageParse Stage = "parse"
	// StageValidate is the validate stage.
	StageValidate Stage = "validate"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file passed.
	StatusDone Status = "done"
	// StatusError indicates the file produced errors.
	StatusError Status = "error"
)

// Event reports progress for one file (or for the whole run when File
// is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe
// for concurrent calls; CheckDir emits from worker goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
