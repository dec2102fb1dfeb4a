// internal/email/templates/render.go
package templates

import (
	"html/template"
	"strings"
)

// funcs are shared by all email templates. multiline escapes user text and
// then turns newlines into <br> so free-text fields keep their line breaks
// without opening an injection hole.
var funcs = template.FuncMap{
	"multiline": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
	"lower": strings.ToLower,
}
