// Package protocol implements the 20-minute decision protocol as an explicit
// finite-state machine. The machine advances only on fully validated input;
// a host CLI drives it step by step and persists the resulting decision draft
// once COMMIT is reached. Nothing is persisted before that.
package protocol

import (
	"math/rand/v2"
	"strings"
	"time"
)

// State identifies a step of the protocol.
type State string

const (
	StateIdle        State = "idle"
	StateExternalize State = "externalize"
	StateConstraint  State = "constraint"
	StateSimplify    State = "simplify"
	StateCommit      State = "commit"
	StateDone        State = "done"
)

// ConstraintWindow is the advisory decision deadline. Elapsed minutes are
// recorded at commit for audit; expiry is never enforced in real time.
const ConstraintWindow = 20 * time.Minute

// Machine is a single protocol invocation. It is not reusable: once done,
// a new invocation must be started by a subsequent check-in.
type Machine struct {
	state State
	flip  func() bool

	avoided      string
	fear         string
	constraintAt time.Time
	deadline     time.Time
	optionA      string
	optionB      string
	coinFlipped  bool
	chosen       string
	rationale    string
}

// New creates a machine in the idle state with a uniform coin flip.
func New() *Machine {
	return NewWithFlip(func() bool { return rand.IntN(2) == 0 })
}

// NewWithFlip creates a machine with a custom coin flip, for tests.
func NewWithFlip(flip func() bool) *Machine {
	return &Machine{state: StateIdle, flip: flip}
}

// State returns the current step.
func (m *Machine) State() State {
	return m.state
}

// Deadline returns the advisory deadline recorded at the constraint step.
func (m *Machine) Deadline() time.Time {
	return m.deadline
}

// Options returns the two options supplied at the simplify step.
func (m *Machine) Options() (a, b string) {
	return m.optionA, m.optionB
}

// Start begins an invocation, moving idle → externalize.
func (m *Machine) Start() error {
	if m.state != StateIdle {
		return &ValidationError{State: m.state, Reason: "protocol already started"}
	}
	m.state = StateExternalize
	return nil
}

// Externalize records the avoided decision and the fear behind the delay.
// Both are required; empty input keeps the machine in externalize.
func (m *Machine) Externalize(avoided, fear string) error {
	if m.state != StateExternalize {
		return m.wrongState(StateExternalize)
	}
	avoided = strings.TrimSpace(avoided)
	fear = strings.TrimSpace(fear)
	if avoided == "" {
		return &ValidationError{State: m.state, Field: "decision", Reason: "the avoided decision is required"}
	}
	if fear == "" {
		return &ValidationError{State: m.state, Field: "fear", Reason: "the fear behind the delay is required"}
	}
	m.avoided = avoided
	m.fear = fear
	m.state = StateConstraint
	return nil
}

// ArmConstraint records the decision deadline (now + 20 minutes) and moves
// to the simplify step. The caller passes the current time.
func (m *Machine) ArmConstraint(now time.Time) (time.Time, error) {
	if m.state != StateConstraint {
		return time.Time{}, m.wrongState(StateConstraint)
	}
	m.constraintAt = now
	m.deadline = now.Add(ConstraintWindow)
	m.state = StateSimplify
	return m.deadline, nil
}

// SimplifyResult reports what happened at the simplify step.
type SimplifyResult struct {
	// AutoSelected is true when both options were textually identical and
	// the machine resolved the choice with a coin flip.
	AutoSelected bool

	// Winner is the chosen option text (verbatim) when AutoSelected.
	Winner string
}

// Simplify records exactly two mutually exclusive options. If the options
// are textually identical (case-insensitive, trimmed), the choice carries no
// information and the machine auto-selects via coin flip, recording which
// side won for transparency.
func (m *Machine) Simplify(optionA, optionB string) (*SimplifyResult, error) {
	if m.state != StateSimplify {
		return nil, m.wrongState(StateSimplify)
	}
	if strings.TrimSpace(optionA) == "" {
		return nil, &ValidationError{State: m.state, Field: "option_a", Reason: "option A is required"}
	}
	if strings.TrimSpace(optionB) == "" {
		return nil, &ValidationError{State: m.state, Field: "option_b", Reason: "option B is required"}
	}
	m.optionA = optionA
	m.optionB = optionB
	m.state = StateCommit

	normA := strings.ToLower(strings.TrimSpace(optionA))
	normB := strings.ToLower(strings.TrimSpace(optionB))
	if normA != normB {
		return &SimplifyResult{}, nil
	}

	if m.flip() {
		m.chosen = optionA
	} else {
		m.chosen = optionB
	}
	m.coinFlipped = true
	return &SimplifyResult{AutoSelected: true, Winner: m.chosen}, nil
}

// Draft is the decision produced by a completed invocation. The caller
// persists it; the machine itself never touches storage.
type Draft struct {
	Decision           string // "<avoided> → <chosen>"
	Chosen             string
	Rationale          string
	ElapsedMinutes     int
	MadeUnderParalysis bool
	CoinFlipped        bool
	Fear               string
}

// Commit records the chosen option and rationale and completes the protocol.
// When the simplify step auto-selected, choice may be empty; otherwise it
// must match one of the two options. The elapsed minutes since the
// constraint was armed are recorded for audit.
func (m *Machine) Commit(choice, rationale string, now time.Time) (*Draft, error) {
	if m.state != StateCommit {
		return nil, m.wrongState(StateCommit)
	}
	rationale = strings.TrimSpace(rationale)
	if rationale == "" {
		return nil, &ValidationError{State: m.state, Field: "rationale", Reason: "a rationale is required (prevents revisiting)"}
	}

	chosen := m.chosen
	if !m.coinFlipped {
		switch strings.TrimSpace(choice) {
		case "":
			return nil, &ValidationError{State: m.state, Field: "choice", Reason: "a chosen option is required"}
		case "A", "a":
			chosen = m.optionA
		case "B", "b":
			chosen = m.optionB
		default:
			return nil, &ValidationError{State: m.state, Field: "choice", Reason: "choice must be A or B"}
		}
	}

	elapsed := int(now.Sub(m.constraintAt).Minutes())
	if elapsed < 0 {
		elapsed = 0
	}

	m.chosen = chosen
	m.rationale = rationale
	m.state = StateDone

	return &Draft{
		Decision:           m.avoided + " → " + chosen,
		Chosen:             chosen,
		Rationale:          rationale,
		ElapsedMinutes:     elapsed,
		MadeUnderParalysis: true,
		CoinFlipped:        m.coinFlipped,
		Fear:               m.fear,
	}, nil
}

// Cancel abandons the invocation before commit, discarding all step data.
// A completed invocation cannot be cancelled.
func (m *Machine) Cancel() error {
	if m.state == StateDone {
		return &ValidationError{State: m.state, Reason: "protocol already committed"}
	}
	*m = Machine{state: StateIdle, flip: m.flip}
	return nil
}

func (m *Machine) wrongState(expected State) *ValidationError {
	return &ValidationError{
		State:  m.state,
		Reason: "step not available in state " + string(m.state) + " (expected " + string(expected) + ")",
	}
}
