// Package web serves an HTML preview of a classified description draft.
// The page is a plain server-rendered form; no client-side scripting.
package web

import (
	_ "embed"
	"html"
	"html/template"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/necaris/jjdesc/internal/classify"
	"github.com/necaris/jjdesc/internal/output"
)

const stylesPath = "/assets/styles.css"

// Posted drafts are short texts; anything larger is rejected outright.
const maxBodyBytes = 1 << 20

var (
	//go:embed templates/index.html
	indexHTML string
	indexOnce sync.Once
	indexTmpl *template.Template

	//go:embed assets/styles.css
	stylesCSS string
)

// Options carries the classification settings the server applies to every
// request.
type Options struct {
	SummaryLength int
}

type indexData struct {
	StylesPath    string
	SummaryLength int
	Text          string
	Preview       template.HTML
}

// Register attaches the preview page, the stylesheet, and the JSON API to
// the provided mux.
func Register(mux *http.ServeMux, opts Options) {
	mux.HandleFunc("/", indexHandler(opts))
	mux.HandleFunc(stylesPath, stylesHandler)
	mux.HandleFunc("/api/classify", classifyHandler(opts))
}

func indexHandler(opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		data := indexData{StylesPath: stylesPath, SummaryLength: opts.SummaryLength}
		if r.Method == http.MethodPost {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			if err := r.ParseForm(); err != nil {
				http.Error(w, "invalid form", http.StatusBadRequest)
				return
			}
			data.Text = r.PostFormValue("text")
			data.Preview = RenderHTML(data.Text, classify.All(data.Text, opts.SummaryLength))
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'self'; img-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'")
		if err := loadTemplate().Execute(w, data); err != nil {
			http.Error(w, "template rendering failed", http.StatusInternalServerError)
		}
	}
}

func stylesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(stylesCSS))
}

// classifyHandler accepts a raw draft in the request body and answers with
// the JSON span document.
func classifyHandler(opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return
		}
		text := string(body)
		w.Header().Set("Content-Type", "application/json")
		_ = output.WriteJSON(w, output.Annotate(text, classify.All(text, opts.SummaryLength)))
	}
}

// RenderHTML converts text plus spans into escaped markup. Each classified
// run becomes a <span> whose class is the category name; change-type runs
// get an extra type-<letter> class so the stylesheet can color them
// per letter.
func RenderHTML(text string, spans []classify.Span) template.HTML {
	if text == "" {
		return ""
	}
	cats := make([]classify.Category, len(text))
	for _, s := range spans {
		for i := s.Start; i < s.End && i < len(text); i++ {
			cats[i] = s.Category
		}
	}
	var b strings.Builder
	for i := 0; i < len(text); {
		cat := cats[i]
		j := i + 1
		for j < len(text) && cats[j] == cat {
			j++
		}
		seg := text[i:j]
		if cat == "" {
			b.WriteString(html.EscapeString(seg))
		} else {
			b.WriteString(`<span class="` + cssClass(cat, seg) + `">`)
			b.WriteString(html.EscapeString(seg))
			b.WriteString(`</span>`)
		}
		i = j
	}
	return template.HTML(b.String())
}

func cssClass(cat classify.Category, seg string) string {
	class := strings.ReplaceAll(string(cat), "_", "-")
	if cat == classify.CategoryCommentType {
		letter := strings.ToUpper(strings.TrimSpace(seg))
		if len(letter) == 1 && strings.Contains("CRMAD", letter) {
			class += " type-" + letter
		}
	}
	return class
}

func loadTemplate() *template.Template {
	indexOnce.Do(func() {
		indexTmpl = template.Must(template.New("index").Parse(indexHTML))
	})
	return indexTmpl
}
