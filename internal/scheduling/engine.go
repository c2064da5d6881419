package scheduling

// Engine holds the capacity policy; it has no other state
type Engine struct {
	policy CapacityPolicy
}

// NewEngine unknown policies fall back to PolicyUniformMax
func NewEngine(policy CapacityPolicy) *Engine {
	if _, ok := ParseCapacityPolicy(string(policy)); !ok {
		policy = PolicyUniformMax
	}
	return &Engine{policy: policy}
}

func (e *Engine) Policy() CapacityPolicy {
	return e.policy
}

// DayCapacity sessions a window can sell with the given ready tank count.
// Used to precompute SessionsToSell of a bookable override.
func (e *Engine) DayCapacity(params SlotParams) int {
	return CalculateSlots(params).Capacity(e.policy)
}
