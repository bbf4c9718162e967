// Package assembly wraps one backend's generated contract text in the
// compiled module's outer skeleton: a header banner, the run's
// correlation id, and the backend name, via text/template the way the
// neo-go binding generator templates its file header before appending
// hand-assembled method bodies.
package assembly

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/odradev/nysa-go/internal/codegen"
	"github.com/odradev/nysa-go/internal/ir"
)

var moduleTmpl = template.Must(template.New("module").Parse(
	`// Code generated by nysa-go. DO NOT EDIT.
// target: {{.Target}}
// run:    {{.RunID}}
// built:  {{.BuiltAt}}

{{.Body}}`))

// Result is one completed compilation run's output.
type Result struct {
	Target string
	RunID  string
	Source string
}

// Assemble runs a backend over pkg and wraps its output in the module
// skeleton. builtAt is injected by the caller rather than computed here,
// since Date.now()-equivalents are a caller concern, not the assembler's.
func Assemble(backend codegen.Backend, pkg *ir.Package, runID string, builtAt time.Time) (*Result, error) {
	body, err := backend.Generate(pkg)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", backend.Name(), err)
	}

	var buf bytes.Buffer
	err = moduleTmpl.Execute(&buf, struct {
		Target  string
		RunID   string
		BuiltAt string
		Body    string
	}{
		Target:  backend.Name(),
		RunID:   runID,
		BuiltAt: builtAt.Format(time.RFC3339),
		Body:    body,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering module skeleton: %w", err)
	}

	return &Result{Target: backend.Name(), RunID: runID, Source: buf.String()}, nil
}
