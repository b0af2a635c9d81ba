package intent

import "strings"

// Batch is the ordered group of intents derived from one utterance.
type Batch []Intent

// NewBatch copies intents into a new batch.
func NewBatch(intents ...Intent) Batch {
	b := make(Batch, len(intents))
	copy(b, intents)
	return b
}

// Clone returns an independent copy, so a recorded batch cannot be altered by the
// caller that submitted it.
func (b Batch) Clone() Batch {
	return NewBatch(b...)
}

// String renders the batch as "[add(Big Mac, 2); remove(Large Fry, 1)]".
func (b Batch) String() string {
	parts := make([]string, len(b))
	for i, in := range b {
		parts[i] = in.String()
	}
	return "[" + strings.Join(parts, "; ") + "]"
}
