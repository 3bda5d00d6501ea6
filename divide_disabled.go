//go:build fixednodiv

package fixedpoint

const divideEnabled = false
