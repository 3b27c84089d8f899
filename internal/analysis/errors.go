package analysis

import "fmt"

// AnalysisError reports an unexpected failure inside one analyzer stage.
// The stage name is surfaced to the user so the retry message can say
// which part of the report failed.
type AnalysisError struct {
	Stage string
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis stage %q failed: %v", e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }
