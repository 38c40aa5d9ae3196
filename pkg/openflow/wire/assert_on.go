//go:build ofwiredebug

package wire

import "fmt"

func assertRange(b []byte, off, width int) {
	if off < 0 || off+width > len(b) {
		panic(fmt.Sprintf("wire: access of %d bytes at offset %d exceeds buffer of %d bytes", width, off, len(b)))
	}
}
