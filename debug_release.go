//go:build !subdiv2d_debug

package subdiv2d

// debugAssert is a no-op in release builds; see debug.go.
func debugAssert(cond bool, msg string) {}
