package mergesort

// Pass describes a completed merge pass.
type Pass struct {
	Number        int  // 1-based pass counter.
	PartitionSize int  // Partition size p used by the pass.
	Windows       int  // Window merges executed, empty windows included.
	Corrective    bool // Whether the remainder was re-merged at the end of the pass.
	Comparisons   int  // Element comparisons made during the pass.
}

// Observer is called once per completed pass, in pass order.
type Observer func(Pass)

// options defines all configuration options for a sort.
type options struct {
	observer Observer
}

// Option is a function that configures a sort.
type Option func(*options)

// WithObserver registers a function that receives statistics for every pass.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		observer: nil,
	}
}
