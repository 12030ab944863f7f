package generator

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/binres-gen/binres-gen/internal/collector"
)

// addFile reads one source file and emits its declaration pair to the header
// stream and its byte-array definition to the implementation stream. Files
// whose parent is a subdirectory of the source root are wrapped in an #ifdef
// named after that subdirectory, on both sides, so consumers can opt in per
// resource set at compile time. Only the immediate parent names the guard.
func (c *Context) addFile(f collector.SourceFile, className string) error {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return fmt.Errorf("Failed to read %s: %v", f.Path, err)
	}

	name := SymbolName(f.Name)
	if prev, taken := c.seen[name]; taken {
		return fmt.Errorf("Duplicate symbol %s: %s collides with %s", name, f.Path, prev)
	}
	c.seen[name] = f.Path

	fmt.Printf("Adding %s: %d bytes\n", name, len(data))

	guarded := !f.InRoot
	if guarded {
		guard := strings.ToUpper(f.Parent)
		fmt.Fprintf(c.header, "  #ifdef %s\r\n", guard)
		fmt.Fprintf(c.impl, "#ifdef %s\r\n", guard)
	}

	fmt.Fprintf(c.header, "    extern const char*  %s;\r\n", name)
	fmt.Fprintf(c.header, "    const int           %sSize = %d;\r\n\r\n", name, len(data))

	// Temp-array numbers are assigned run-wide in collector order, starting
	// at temp1.
	c.tempNum++
	fmt.Fprintf(c.impl, "static const unsigned char temp%d[] = {", c.tempNum)
	for i, b := range data {
		switch {
		case i == len(data)-1:
			// Two zero bytes terminate the true data so callers may treat
			// the resource as a C string.
			fmt.Fprintf(c.impl, "%d,0,0};\r\n", b)
		case i%c.valuesPerLine == c.valuesPerLine-1:
			fmt.Fprintf(c.impl, "%d,\r\n  ", b)
		default:
			fmt.Fprintf(c.impl, "%d,", b)
		}
	}
	if len(data) == 0 {
		// Zero-length files are filtered before encoding; this only guards
		// against a file truncated between stat and read.
		io.WriteString(c.impl, "0,0};\r\n")
	}
	fmt.Fprintf(c.impl, "const char* %s::%s = (const char*) temp%d;\r\n\r\n", className, name, c.tempNum)

	if guarded {
		fmt.Fprintf(c.header, "  #endif\r\n")
		fmt.Fprintf(c.impl, "#endif\r\n")
	}

	c.totalBytes += len(data)
	return nil
}
