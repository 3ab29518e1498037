package component

// Despawn marks an entity for removal at the end of the tick.
type Despawn struct {
	Reason string
}

var DespawnComponent = NewComponent[Despawn]()
