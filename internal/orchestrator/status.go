package orchestrator

import (
	"dayslot/internal/organizer"
)

// Status runs both passes against a Recorder so no file is touched, and
// returns the renames a Run would perform right now. Decisions are not
// printed; the caller renders the plan.
func (o *Orchestrator) Status() (*Summary, error) {
	recorder := &organizer.Recorder{}
	summary, err := o.execute(recorder, nil)
	if summary != nil {
		summary.Renames = recorder.Moves
	}
	return summary, err
}
