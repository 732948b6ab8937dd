// Package nielsen defines options for Nielsen reduction.
package nielsen

// Options configures Reduce.
//
// Fields:
//   - SortOutput — if true, the returned set is sorted in shortlex
//     order (word.Compare), giving callers a deterministic slice
//     layout. If false, elements keep the working order the reduction
//     happened to leave them in.
//
// Example:
//
//	opts := nielsen.DefaultOptions()
//	opts.SortOutput = false // keep working order
//	v, err := nielsen.Reduce(g, set, &opts)
type Options struct {
	SortOutput bool
}

// DefaultOptions returns the default configuration: SortOutput=true.
func DefaultOptions() Options {
	return Options{SortOutput: true}
}
