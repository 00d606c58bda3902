package model

// CueKind selects which sound and notification a transition fires.
type CueKind string

const (
	CueWorkComplete CueKind = "workComplete"
	CueRestComplete CueKind = "restComplete"
	CueIdleReminder CueKind = "idleReminder"
)
