package render

import (
	"bytes"
	"html/template"
)

// One self-contained page: A4 metrics and styles inline so the headless
// browser needs no external assets.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 20mm; }
  body {
    font-family: Arial, Helvetica, sans-serif;
    font-size: 11pt;
    line-height: 1.5;
    color: #000;
  }
  .header { border-bottom: 2px solid #000; padding-bottom: 12px; margin-bottom: 20px; }
  .name { font-size: 20pt; font-weight: bold; }
  .contact { font-size: 10pt; color: #333; }
  h2 {
    font-size: 13pt;
    font-weight: bold;
    text-transform: uppercase;
    letter-spacing: 0.5px;
    border-bottom: 2px solid #444;
    padding-bottom: 3px;
    margin: 18px 0 8px 0;
  }
  p { margin: 2px 0; }
  p.bullet { padding-left: 16px; }
</style>
</head>
<body>
  <div class="header">
    {{if .Name}}<div class="name">{{.Name}}</div>{{end}}
    {{if .Contact}}<div class="contact">{{range $i, $p := .Contact}}{{if $i}} &bull; {{end}}{{$p}}{{end}}</div>{{end}}
  </div>
  {{range .Sections}}
    {{if .Title}}<h2>{{.Title}}</h2>{{end}}
    {{range .Lines}}
      <p{{if .Bullet}} class="bullet"{{end}}>{{.Text}}</p>
    {{end}}
  {{end}}
</body>
</html>`

var pageTmpl = template.Must(template.New("resume").Parse(pageTemplate))

// RenderHTML produces the printable page for a classified document.
func RenderHTML(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
