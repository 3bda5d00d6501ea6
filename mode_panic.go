//go:build fixedpanic

package fixedpoint

// FailFast reports whether overflow and domain violations panic instead of
// being returned.
const FailFast = true
