package dataset

// Benchmark categories. Every category has exactly one file under
// benchmarks/; a benchmark's category field picks its destination.
const (
	CategoryKnowledge = "knowledge"
	CategoryCoding    = "coding"
	CategoryMath      = "math"
	CategoryReasoning = "reasoning"

	// DefaultCategory is used when a record carries no category field.
	DefaultCategory = CategoryKnowledge
)

// Benchmark is one benchmark record. Beyond the category tag the record is
// an opaque attribute bag (name, description, max score, links) that the
// engine stores and compares but does not interpret.
type Benchmark map[string]any

// Category returns the record's category, or DefaultCategory when unset.
func (b Benchmark) Category() string {
	if c, ok := b["category"].(string); ok && c != "" {
		return c
	}
	return DefaultCategory
}

// Equal reports whether two records are identical field-for-field.
func (b Benchmark) Equal(other Benchmark) bool {
	return jsonEqual(b, other)
}
