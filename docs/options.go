package docs

// Option configures a Cache at construction time.
type Option func(*Cache)

// WithLogger sets the structured logger for debug output.
// If not set, logging is disabled.
func WithLogger(l Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStrictIDs enables $id anchor syntax validation. When enabled, every
// non-root $id value must match ^[A-Za-z][A-Za-z0-9_.:-]*$. The root node's
// $id is exempt, since JSON-Schema-style documents often use it as a
// base-URI-like value (this implementation does not treat it as one).
func WithStrictIDs(enabled bool) Option {
	return func(c *Cache) {
		c.strictIDs = enabled
	}
}

// WithMaxRefDepth sets the maximum length of a reference-through-reference
// chain. Values < 1 keep the default.
func WithMaxRefDepth(depth int) Option {
	return func(c *Cache) {
		if depth > 0 {
			c.maxRefDepth = depth
		}
	}
}

// WithMaxCachedDocuments sets the maximum number of documents the cache will
// hold. Values < 1 keep the default.
func WithMaxCachedDocuments(count int) Option {
	return func(c *Cache) {
		if count > 0 {
			c.maxDocuments = count
		}
	}
}
