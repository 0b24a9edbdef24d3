package types

// NoFunction is the reserved group name for matches outside any function body
const NoFunction = "no function"

// Match is one line found by a search step, annotated with its enclosing function
type Match struct {
	Line         int    `json:"line"`
	Column       int    `json:"column"`
	LineText     string `json:"text"`
	FunctionName string `json:"function"`
}

// Function returns the group key for the match
func (m Match) Function() string {
	if m.FunctionName == "" {
		return NoFunction
	}
	return m.FunctionName
}

// Validate checks the match position
func (m Match) Validate() error {
	if m.Line < 1 {
		return ErrInvalidMatch
	}
	return nil
}
