// Package generator turns a collected file set into the paired C++
// header/implementation sources that embed the file contents.
package generator

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/binres-gen/binres-gen/internal/collector"
	"github.com/binres-gen/binres-gen/internal/config"
)

// Request describes one generation pass over an already collected file set.
type Request struct {
	// SourceDir is the absolute source root the files were collected from.
	SourceDir string
	// DestDir is the absolute directory receiving the generated pair.
	DestDir string
	// ClassName is the namespace name and the filename stem of the outputs.
	ClassName string
	// Files is the retained file set, in collector order.
	Files []collector.SourceFile
}

// Context is the run-wide generation state threaded through every encode
// call: the two open output streams, the running byte total, the temp-array
// counter, and the set of symbol names emitted so far.
type Context struct {
	header *bufio.Writer
	impl   *bufio.Writer

	valuesPerLine int
	tempNum       int
	totalBytes    int
	seen          map[string]string // symbol name -> source path that claimed it
}

// Generate orchestrates one full generation pass.
// It deletes any pre-existing output pair, recreates both files, writes the
// prologues, encodes every file in collector order, and closes the header.
//
// Parameters:
//   - req: The generation request.
//   - out: Output formatting settings.
//
// Returns:
//   - int: The total number of source bytes encoded.
//   - error: An error if any output cannot be written or any input read.
func Generate(req Request, out config.OutputConfig) (int, error) {
	headerPath := filepath.Join(req.DestDir, req.ClassName+".h")
	implPath := filepath.Join(req.DestDir, req.ClassName+".cpp")

	fmt.Printf("Creating %s and %s from files in %s...\n\n", headerPath, implPath, req.SourceDir)

	// 1. Remove stale outputs; a partially written pair from a crashed run
	// must never be appended to.
	os.Remove(headerPath)
	os.Remove(implPath)

	// 2. Open both streams before any emission. If the second open fails the
	// first file has already been created; there is no rollback.
	headerFile, err := os.Create(headerPath)
	if err != nil {
		return 0, fmt.Errorf("Couldn't open %s for writing", headerPath)
	}
	defer headerFile.Close()

	implFile, err := os.Create(implPath)
	if err != nil {
		return 0, fmt.Errorf("Couldn't open %s for writing", implPath)
	}
	defer implFile.Close()

	ctx := &Context{
		header:        bufio.NewWriter(headerFile),
		impl:          bufio.NewWriter(implFile),
		valuesPerLine: out.ValuesPerLine,
		seen:          make(map[string]string),
	}

	// 3. Prologues.
	guard := out.GuardPrefix + strings.ToUpper(req.ClassName) + "_H"
	headerData := struct{ Guard, ClassName string }{guard, req.ClassName}
	if err := writeTemplate(ctx.header, "header_open.h.tmpl", headerData); err != nil {
		return 0, err
	}
	implData := struct{ ClassName string }{req.ClassName}
	if err := writeTemplate(ctx.impl, "impl_open.cpp.tmpl", implData); err != nil {
		return 0, err
	}

	// 4. Encode every file in collector order.
	for _, f := range req.Files {
		if err := ctx.addFile(f, req.ClassName); err != nil {
			return 0, err
		}
	}

	// 5. Close the namespace and the include guard.
	if err := writeTemplate(ctx.header, "header_close.h.tmpl", nil); err != nil {
		return 0, err
	}

	if err := ctx.header.Flush(); err != nil {
		return 0, fmt.Errorf("Failed to write %s: %v", headerPath, err)
	}
	if err := ctx.impl.Flush(); err != nil {
		return 0, fmt.Errorf("Failed to write %s: %v", implPath, err)
	}

	slog.Debug("generation finished", "header", headerPath, "impl", implPath,
		"files", len(req.Files), "bytes", ctx.totalBytes)

	return ctx.totalBytes, nil
}
