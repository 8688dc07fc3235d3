package arraylist

const (
	// defaultCapacity is the initial capacity used by New.
	defaultCapacity = 10

	// growthFactor is the multiplier applied to the capacity when the list is full.
	growthFactor = 2
)
