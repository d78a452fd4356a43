package models

import "encoding/json"

// Action is the closed set of data-processing operations.
type Action int

const (
	ActionEcho Action = iota
	ActionCalculate
	ActionReverse
)

// ParseAction maps a request's action string onto the closed set.
// Anything that is not "calculate" or "reverse" is an echo.
func ParseAction(s string) Action {
	switch s {
	case "calculate":
		return ActionCalculate
	case "reverse":
		return ActionReverse
	default:
		return ActionEcho
	}
}

func (a Action) String() string {
	switch a {
	case ActionCalculate:
		return "calculate"
	case ActionReverse:
		return "reverse"
	default:
		return "echo"
	}
}

// ProcessResult is the "data" object of a process-data response.
// Input and Result hold raw JSON so that values round-trip untouched.
type ProcessResult struct {
	Input   json.RawMessage `json:"input"`
	Result  json.RawMessage `json:"result"`
	Message string          `json:"message"`
}
