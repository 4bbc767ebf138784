package resolve

import "github.com/google/uuid"

type scopeKind int

const (
	scopeUser scopeKind = iota + 1
	scopeProcess
)

// Scope identifies one response namespace: either a user's training
// responses or a single process's responses. It is passed explicitly through
// every store and engine call so a resolution chain can never mix namespaces.
type Scope struct {
	kind scopeKind
	id   uuid.UUID
}

// UserScope addresses the user's direct training responses.
func UserScope(userID uuid.UUID) Scope {
	return Scope{kind: scopeUser, id: userID}
}

// ProcessScope addresses one process's response namespace.
func ProcessScope(processID uuid.UUID) Scope {
	return Scope{kind: scopeProcess, id: processID}
}

func (s Scope) IsUser() bool    { return s.kind == scopeUser }
func (s Scope) IsProcess() bool { return s.kind == scopeProcess }
func (s Scope) ID() uuid.UUID   { return s.id }

func (s Scope) String() string {
	switch s.kind {
	case scopeUser:
		return "user:" + s.id.String()
	case scopeProcess:
		return "process:" + s.id.String()
	}
	return "scope:zero"
}
