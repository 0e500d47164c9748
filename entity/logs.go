package entity

import "time"

type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
}

type LogsResponse struct {
	Result []*LogEntry `json:"result"`
}

type LogsRequest struct {
	Stage   bool
	Level   string
	Keyword string
}
