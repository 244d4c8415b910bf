package models

import "time"

// Session holds one teacher's working set for the lifetime of a run. Nothing
// about it survives a process restart.
type Session struct {
	ID        string              `json:"id"`
	Subject   string              `json:"subject"`
	Grade     string              `json:"grade"`
	Semester  string              `json:"semester"`
	Bank      []TemplateBankEntry `json:"bank"`
	Records   []StudentRecord     `json:"records"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
