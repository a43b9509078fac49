package handlers

import (
	"html/template"
	"net/http"

	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/view"
)

// shellTemplate renders the tab shell with the resolved view active.
// Deep links and unknown paths both land on a valid tab, never a 404.
const shellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Budget Cloud</title>
</head>
<body>
<nav>
{{- $active := .Active }}{{ $paths := .Paths }}
{{- range .Views }}
  <a href="{{ index $paths . }}"{{ if eq . $active }} aria-current="page"{{ end }}>{{ . }}</a>
{{- end }}
</nav>
<main id="panel-{{ .Active }}" data-view="{{ .Active }}"></main>
</body>
</html>
`

// NewUIHandler returns an HTTP handler serving the tab shell. The active
// tab is resolved from the request path through the route table, so the
// same binary works at the domain root and under a base path.
func NewUIHandler(routes *view.Routes) http.HandlerFunc {
	tmpl := template.Must(template.New("shell").Parse(shellTemplate))

	paths := make(map[view.View]string, len(view.All()))
	for _, v := range view.All() {
		paths[v] = routes.PathFor(v)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		active := routes.ResolveView(r.URL.Path)

		data := struct {
			Active view.View
			Views  []view.View
			Paths  map[view.View]string
		}{
			Active: active,
			Views:  view.All(),
			Paths:  paths,
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			logger.Log.Errorw("failed to render shell", "path", r.URL.Path, "error", err)
		}
	}
}
