package component

import "time"

// AgentDiagnostics throttles the periodic navigation debug line for an agent.
type AgentDiagnostics struct {
	Interval time.Duration
	NextAt   time.Duration
}

var AgentDiagnosticsComponent = NewComponent[AgentDiagnostics]()
