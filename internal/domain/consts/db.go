package consts

// Tables
const (
	DBHistory = "history"
)

// History
const (
	QHistID         = "id"
	QHistURL        = "url"
	QHistArgs       = "args"
	QHistOutcome    = "outcome"
	QHistExitCode   = "exit_code"
	QHistError      = "error"
	QHistStartedAt  = "started_at"
	QHistFinishedAt = "finished_at"
)
