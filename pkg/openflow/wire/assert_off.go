//go:build !ofwiredebug

package wire

// assertRange compiles to nothing in release builds; the accessor contract
// is the caller's responsibility.
func assertRange(b []byte, off, width int) {}
