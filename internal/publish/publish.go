// Package publish renders the game summary as an HTML page after every turn.
package publish

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/jason-s-yu/monopoly/engine"
	"github.com/sirupsen/logrus"
)

var page = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Monopoly: turn {{.Turn}}</title></head>
<body>
<h1>Summary after turn {{.Turn}}</h1>
{{range .Players}}<h2>{{.Name}}: ${{.Cash}}</h2>
<ul>
{{- if .Left}}
<li>has left the game</li>
{{- else}}
{{- if .InJail}}
<li>is IN JAIL, but still has ${{.Cash}}</li>
{{- else}}
<li>is on {{.Square}} with ${{.Cash}}</li>
{{- end}}
<li>is worth ${{.NetWorth}}</li>
{{- if .JailCards}}
<li>has {{.JailCards}} get-out-of-jail cards</li>
{{- end}}
{{- if .Assets}}
<li>owns: <ul>
{{- range .Assets}}
<li>{{.Name}}{{if .Mortgaged}} (mortgaged){{else if .Hotel}} (hotel){{else if .Houses}} ({{.Houses}} houses){{end}}</li>
{{- end}}
</ul></li>
{{- else}}
<li>owns nothing :(</li>
{{- end}}
{{- end}}
</ul>
{{end}}</body>
</html>
`))

// Render writes the summary page for snap.
func Render(snap engine.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, snap); err != nil {
		return nil, fmt.Errorf("rendering summary: %w", err)
	}
	return buf.Bytes(), nil
}

// Publisher is an engine.Observer that rewrites the page at Path after every turn.
type Publisher struct {
	Path string
	Log  logrus.FieldLogger
}

// New returns a Publisher writing to path.
func New(path string, log logrus.FieldLogger) *Publisher {
	return &Publisher{Path: path, Log: log.WithField("path", path)}
}

func (p *Publisher) Observe(snap engine.Snapshot) {
	if err := p.Write(snap); err != nil {
		p.Log.WithError(err).Warn("publishing summary failed")
	}
}

// Write renders snap and replaces the file at Path. Readers see either the
// old page or the new one, never a partial write.
func (p *Publisher) Write(snap engine.Snapshot) error {
	data, err := Render(snap)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(p.Path), ".summary-*.html")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing summary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing summary: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p.Path)
}
