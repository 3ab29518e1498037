package component

import "time"

// TTL destroys an entity once the simulation clock passes ExpiresAt.
type TTL struct {
	ExpiresAt time.Duration
}

var TTLComponent = NewComponent[TTL]()
