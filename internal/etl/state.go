package etl

// RunState identifies where a load run is in its lifecycle.
type RunState string

const (
	StateInit          RunState = "init"
	StateConstraints   RunState = "constraints"
	StateNodes         RunState = "nodes"
	StateRelationships RunState = "relationships"
	StateDone          RunState = "done"
	StateFailed        RunState = "failed"
)

// String returns the string representation of RunState
func (s RunState) String() string {
	return string(s)
}

// IsTerminal reports whether the run has finished, successfully or not.
func (s RunState) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}
