package dictidx

// Option is a functional option for configuring index builds.
type Option func(*buildConfig)

type buildConfig struct {
	hash HashFunc
}

func defaultBuildConfig() *buildConfig {
	return &buildConfig{
		hash: foldHash,
	}
}

// WithHashFunc overrides the bucket hash. The same function serves both
// build and lookup; hash choice affects collision rate only, never
// correctness. A nil h keeps the default fold hash.
func WithHashFunc(h HashFunc) Option {
	return func(c *buildConfig) {
		if h != nil {
			c.hash = h
		}
	}
}
