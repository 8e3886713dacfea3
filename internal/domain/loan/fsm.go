package loan

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

const (
	EventApprove = "approve"
	EventReject  = "reject"
)

// StatusMachine enforces the one-directional lifecycle:
// pending may move to approved or rejected, both of which are terminal.
type StatusMachine struct {
	interpreter *statekit.Interpreter[struct{}]
}

func NewStatusMachine(initial Status) (*StatusMachine, error) {
	builder := statekit.NewMachine[struct{}]("loan-status").
		WithInitial(statekit.StateID(initial))

	builder.State(statekit.StateID(StatusPending)).
		On(EventApprove).Target(statekit.StateID(StatusApproved)).
		On(EventReject).Target(statekit.StateID(StatusRejected)).
		Done()

	// Terminal states: no outgoing transitions.
	builder.State(statekit.StateID(StatusApproved)).Done()
	builder.State(statekit.StateID(StatusRejected)).Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build status machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()
	return &StatusMachine{interpreter: interpreter}, nil
}

// Fire attempts a transition and returns ErrInvalidTransition when the
// event is not legal from the current status.
func (m *StatusMachine) Fire(event string) error {
	before := m.Current()
	m.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	if m.Current() == before {
		return ErrInvalidTransition
	}
	return nil
}

func (m *StatusMachine) Current() Status {
	return Status(m.interpreter.State().Value)
}

// EventFor maps a target status to the event that reaches it.
func EventFor(target Status) (string, bool) {
	switch target {
	case StatusApproved:
		return EventApprove, true
	case StatusRejected:
		return EventReject, true
	}
	return "", false
}
