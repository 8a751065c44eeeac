package messages

import (
	"orbiter/internal/config"
	"orbiter/internal/lead"
)

type ErrorMsg struct {
	Err error
}

// TimerFiredMsg is delivered when a scheduled controller task is due.
type TimerFiredMsg struct {
	ID int
}

type ConfigUpdateMsg struct {
	Config *config.Config
}

type LeadSubmittedMsg struct {
	Receipt lead.Receipt
	Err     error
}
