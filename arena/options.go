package arena

// DefaultPoison is the byte written over freed blocks.
const DefaultPoison byte = 0xDD

// Options controls poisoning and how long freed storage stays out of reuse.
type Options struct {
	Poison         byte  // fill byte for freed blocks, 0 selects DefaultPoison
	QuarantineSize int   // freed blocks held back from reuse, <=0 disables quarantine
	PoolMaxBytes   int64 // capacity of the reuse pool, <=0 means unbounded
}

// DefaultOptions
func DefaultOptions() Options {
	return Options{
		Poison:         DefaultPoison,
		QuarantineSize: 64,
		PoolMaxBytes:   1 << 20,
	}
}

// Option 配置项
type Option func(*Arena)

// WithOptions replaces every setting at once.
func WithOptions(opts Options) Option {
	return func(a *Arena) {
		a.opts = opts
	}
}

// WithPoison sets the byte written over freed blocks. Zero is not a usable
// poison since it matches freshly allocated memory; it selects DefaultPoison.
func WithPoison(b byte) Option {
	return func(a *Arena) {
		a.opts.Poison = b
	}
}

// WithQuarantine sets how many freed blocks are held back before reuse.
func WithQuarantine(n int) Option {
	return func(a *Arena) {
		a.opts.QuarantineSize = n
	}
}

// WithPoolBytes bounds the bytes kept for reuse.
func WithPoolBytes(n int64) Option {
	return func(a *Arena) {
		a.opts.PoolMaxBytes = n
	}
}
