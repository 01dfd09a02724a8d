//go:build subdiv2d_debug

package subdiv2d

// debugAssert panics with msg when cond is false. Compiled in only under
// the subdiv2d_debug build tag; release builds trust callers per the
// DebugAssertion error class.
func debugAssert(cond bool, msg string) {
	if !cond {
		panic("subdiv2d: assertion failed: " + msg)
	}
}
