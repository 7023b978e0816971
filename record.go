package kernlog

// Record is one log event handed to the backend: a severity, a formatted
// message, and an optional tag overriding the Logger's own. A Record lives
// only for the duration of the Log call; nothing is queued or retained.
type Record struct {
	Level   Level
	Message string
	// Tag, when non-empty, replaces the Logger's tag for this record. The
	// front-end typically passes its module or target name here.
	Tag string
}
