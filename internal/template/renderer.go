package template

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/ghaggin/hbnb-web/internal/model"
)

const (
	templateDir string = "tmpl"
)

//go:embed tmpl/*.html
var files embed.FS

var funcs = template.FuncMap{
	"ratings": func() []string { return []string{"1", "2", "3", "4", "5"} },
}

type Data struct {
	PageTitle string
	SignedIn  bool
	Viewer    *model.Identity
	Body      any
}

func Render(w http.ResponseWriter, r *http.Request, tmpl string, td *Data) error {
	t, err := template.New("base.html").Funcs(funcs).ParseFS(files,
		templateDir+"/"+"base.html",
		templateDir+"/"+"detail.html",
		templateDir+"/"+tmpl,
	)
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}

	err = t.Execute(buf, td)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = buf.WriteTo(w)
	return err
}
