//go:build !fixednodiv

package fixedpoint

// divideEnabled allows the reciprocal to use one wide division. Build with
// -tags fixednodiv to always use the multiply only evaluation.
const divideEnabled = true
