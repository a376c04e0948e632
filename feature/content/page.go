package content

import (
	"html/template"

	"embed-ui/core/middleware/auth"
)

const (
	defaultTitle = "embed-ui"
	tokenHeader  = auth.DefaultHeader
)

type debugEntry struct {
	Key   string
	Value string
}

type pageData struct {
	Title       string
	Theme       string
	BasePath    string
	WidgetSet   string
	Token       string
	TokenHeader string
	Body        template.HTML
	Debug       []debugEntry
}

// trustedHTML marks renderer output as safe; the renderer escapes all text.
func trustedHTML(s string) template.HTML {
	return template.HTML(s)
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="ui-token" content="{{.Token}}">
<title>{{.Title}}</title>
<link rel="stylesheet" href="{{.BasePath}}/static/themes/{{.Theme}}/styles.css">
<style>
html, body { height: 100%; margin: 0; font-family: sans-serif; }
.ui-window { display: flex; flex-direction: column; height: 100%; }
.ui-window-caption { padding: 4px 8px; font-weight: bold; border-bottom: 1px solid #ccc; }
.ui-window-content { flex: 1 1 auto; min-height: 0; }
.ui-layout { display: flex; box-sizing: border-box; }
.ui-vertical { flex-direction: column; }
.ui-horizontal { flex-direction: row; align-items: center; }
.ui-margin { padding: 12px; }
.ui-size-full { width: 100%; height: 100%; }
.ui-vsplit { display: grid; }
.ui-vsplit-first { overflow: hidden; border-bottom: 1px solid #ccc; }
.ui-vsplit-second { overflow: auto; min-height: 0; }
.ui-button-link { background: none; border: none; padding: 0 8px; color: #06c; text-decoration: underline; cursor: pointer; }
.ui-debug { position: fixed; bottom: 0; right: 0; margin: 0; padding: 8px; background: #ffd; border: 1px solid #cc9; font-size: 12px; }
</style>
{{- if .WidgetSet}}
<script src="{{.BasePath}}/static/widgetsets/{{.WidgetSet}}/{{.WidgetSet}}.nocache.js"></script>
{{- end}}
</head>
<body class="ui-theme-{{.Theme}}">
{{.Body}}
{{- if .Debug}}
<pre class="ui-debug">{{range .Debug}}{{.Key}}: {{.Value}}
{{end}}</pre>
{{- end}}
<script>
(function () {
  var base = {{.BasePath}};
  var token = {{.Token}};
  var header = {{.TokenHeader}};
  document.addEventListener('click', function (e) {
    var el = e.target.closest('[data-ui-click]');
    if (!el) { return; }
    e.preventDefault();
    var headers = {};
    headers[header] = token;
    fetch(base + '/_ui/click/' + encodeURIComponent(el.getAttribute('data-ui-click')), {
      method: 'POST',
      headers: headers
    }).then(function (r) { return r.json(); }).then(function (res) {
      (res.notifications || []).forEach(function (n) { window.alert(n); });
      if (res.close) {
        window.close();
        document.body.textContent = 'This page can be closed.';
      } else if (res.reload) {
        window.location.reload();
      }
    });
  });
})();
</script>
</body>
</html>
`))
