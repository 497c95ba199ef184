package view

import (
	"fmt"
	"html/template"
	"io"
	"sync"
)

// Lifecycle states as shown on the page
const (
	StatusIdle     = "idle"
	StatusPending  = "pending"
	StatusResolved = "resolved"
	StatusFailed   = "failed"
)

// Document is a full HTML page: the upload form, the current request state
// and, once resolved, the result.
type Document struct {
	Status    string
	FileName  string
	Error     string
	UploadURL string
	Page      *Page
}

// Loading reports whether a request is in flight
func (d Document) Loading() bool {
	return d.Status == StatusPending
}

var funcMap = template.FuncMap{
	"pct": func(v float64) string {
		return fmt.Sprintf("%.1f", v)
	},
}

var (
	tmplPage     *template.Template
	tmplPageOnce sync.Once
)

func getTemplate() *template.Template {
	tmplPageOnce.Do(func() {
		tmplPage = template.Must(template.New("page").Funcs(funcMap).Parse(pageTemplate))
	})
	return tmplPage
}

// Render writes page as a standalone HTML document
func Render(w io.Writer, page Page) error {
	return RenderDocument(w, Document{Status: StatusResolved, Page: &page})
}

// RenderDocument writes doc as HTML
func RenderDocument(w io.Writer, doc Document) error {
	if err := getTemplate().ExecuteTemplate(w, "base", doc); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

const pageTemplate = `{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>featureviz</title>
<style>
body { margin: 0; padding: 2rem; background: #030712; color: #f3f4f6; font-family: system-ui, sans-serif; }
main { max-width: 100%; margin: 0 auto; }
header { text-align: center; margin-bottom: 3rem; }
h1 { font-weight: 300; letter-spacing: .03em; }
.lead { color: #9ca3af; }
.card { background: #111827; border: 1px solid #1f2937; border-radius: .75rem; padding: 1.25rem; margin-bottom: 2rem; }
.card h3 { margin-top: 0; }
.error { border-color: #ef4444; background: rgba(127, 29, 29, .4); color: #f87171; }
.badge { display: inline-block; padding: .15rem .6rem; border-radius: 9999px; background: #374151; border: 1px solid #4b5563; font-size: .8rem; }
.badge.lead-pred { background: #4f46e5; border-color: #4f46e5; }
.pred { margin-bottom: .75rem; }
.pred-head { display: flex; justify-content: space-between; align-items: center; }
.bar { height: .5rem; background: #1f2937; border-radius: 9999px; overflow: hidden; margin-top: .4rem; }
.bar div { height: 100%; background: #6366f1; }
.two { display: grid; grid-template-columns: repeat(auto-fit, minmax(420px, 1fr)); gap: 1.5rem; }
.layers { display: grid; grid-template-columns: repeat(5, 1fr); gap: 1.5rem; }
.fmap { text-align: center; }
.fmap svg { display: block; margin: 0 auto; max-width: 100%; height: auto; border: 1px solid #d6d3d1; border-radius: 1rem; }
.fmap h2 { font-size: 1rem; color: #d6d3d1; margin: .75rem 0 .25rem; }
.fmap p { font-size: .85rem; color: #78716c; font-style: italic; margin: 0; }
.internals { height: 20rem; overflow-y: auto; border: 1px solid #374151; border-radius: .25rem; background: rgba(31, 41, 55, .6); padding: .5rem; }
.wave svg { width: 100%; height: auto; }
.wave p { text-align: center; color: #a8a29e; }
.legend { display: flex; justify-content: flex-end; margin-top: 1.25rem; }
</style>
</head>
<body>
<main>
<header>
<h1>From Data to Discovery</h1>
<p class="lead">Visualize predictions, spectrograms, and waveforms with clarity.</p>
{{if .UploadURL}}
<form method="post" action="{{.UploadURL}}" enctype="multipart/form-data">
<input type="file" name="file" accept=".wav"{{if .Loading}} disabled{{end}}>
<button type="submit"{{if .Loading}} disabled{{end}}>{{if .Loading}}Loading...{{else}}Choose a WAV file{{end}}</button>
</form>
{{end}}
{{if .FileName}}<p><span class="badge">{{.FileName}}</span></p>{{end}}
</header>
{{if .Error}}
<section class="card error"><p>Error: {{.Error}}</p></section>
{{end}}
{{with .Page}}{{template "result" .}}{{end}}
</main>
</body>
</html>
{{end}}

{{define "fmap"}}{{if not .Empty}}
<div class="fmap">
{{.SVG}}
<h2>{{.Title}}</h2>
<p>Visual representation of extracted features</p>
</div>
{{end}}{{end}}

{{define "result"}}
<section class="card">
<h3>Top Predictions</h3>
{{range .Predictions}}
<div class="pred">
<div class="pred-head">
<span>{{.Glyph}} {{.Label}}</span>
<span class="badge{{if .Leading}} lead-pred{{end}}">{{.PercentLabel}}</span>
</div>
<div class="bar"><div style="width: {{pct .BarWidth}}%"></div></div>
</div>
{{end}}
</section>

<div class="two">
<section class="card">
<h3>Input Spectrogram</h3>
{{template "fmap" .Spectrogram}}
<div class="legend">{{.LegendSVG}}</div>
</section>
<section class="card wave">
<h3>Audio Waveform</h3>
{{with .Waveform}}{{.SVG}}<p>{{.Title}}</p>{{end}}
</section>
</div>

<section class="card">
<h3>Convolutional Layer Outputs</h3>
<div class="layers">
{{range .Layers}}
<div class="column">
<h4>{{.Main.Name}}</h4>
{{template "fmap" .Main}}
{{if .Internals}}
<div class="internals">
{{range .Internals}}{{template "fmap" .}}{{end}}
</div>
{{end}}
</div>
{{end}}
</div>
<div class="legend">{{.LegendSVG}}</div>
</section>
{{end}}`
