package domain

import "time"

// ExecutionResult is created once per execution attempt and never
// mutated afterwards.
type ExecutionResult struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewExecutionResult(success bool, message string) ExecutionResult {
	if message == "" {
		message = "No message"
	}
	return ExecutionResult{
		Success:   success,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// HistoryRecord is the append-only snapshot of one executed device
// command.
type HistoryRecord struct {
	ID         string    `json:"id"`
	Device     string    `json:"device"`
	Action     string    `json:"action"`
	Parameter  string    `json:"parameter"`
	Timestamp  time.Time `json:"timestamp"`
	Confidence float64   `json:"confidence"`
	RawCommand string    `json:"raw_command"`
}
