package component

// ZOrder declares an entity's intended draw order. The sequencer turns
// it into an additive offset on top of the entity's base depth.
type ZOrder struct {
	Value float64
	// Dirty marks the record for recomputation. Mutate through Set so
	// the sequencer only touches entities that actually changed.
	Dirty bool
}

// NewZOrder returns an order value pending first application.
func NewZOrder(value float64) *ZOrder {
	return &ZOrder{Value: value, Dirty: true}
}

// Set updates the order value and marks the record dirty when the
// value changed.
func (z *ZOrder) Set(value float64) {
	if z.Value == value && !z.Dirty {
		return
	}
	z.Value = value
	z.Dirty = true
}

var ZOrderComponent = NewComponent[ZOrder]()

// UnorderedZ snapshots an entity's z before ordering was first
// applied. Captured exactly once per entity; later order changes
// recompute from this base, which makes the sequencer idempotent.
type UnorderedZ struct {
	Base float64
}

var UnorderedZComponent = NewComponent[UnorderedZ]()

// YOrigin derives ZOrder from the entity's y position:
// order = -(Offset + translation.y) / 10000. A convenience policy on
// top of the sequencer, recomputed whenever y or the offset changes.
type YOrigin struct {
	Offset float64
}

var YOriginComponent = NewComponent[YOrigin]()
