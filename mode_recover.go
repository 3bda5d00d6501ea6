//go:build !fixedpanic

package fixedpoint

// FailFast reports whether overflow and domain violations panic instead of
// being returned. Build with -tags fixedpanic to enable it.
const FailFast = false
