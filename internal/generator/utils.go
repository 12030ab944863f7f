package generator

import (
	"bytes"
	"io"
	"strings"
	"text/template"

	"github.com/binres-gen/binres-gen/internal/templates"
)

// writeTemplate loads an embedded template, executes it, and writes the
// result to w. Templates are stored with LF line endings; the generated
// sources use CRLF throughout, so the rendered text is normalized before
// writing.
func writeTemplate(w io.Writer, tmplName string, data interface{}) error {
	tmplContent, err := templates.Get(tmplName)
	if err != nil {
		return err
	}

	t, err := template.New(tmplName).Parse(tmplContent)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return err
	}

	_, err = io.WriteString(w, strings.ReplaceAll(buf.String(), "\n", "\r\n"))
	return err
}
