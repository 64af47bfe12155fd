// Package render turns filtered collections into the HTML fragments the
// FAQ and notice pages swap in. Every call renders the whole list; items
// always come out collapsed.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"

	"kodevidecamp/internal/catalog"
	"kodevidecamp/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Notice grid layouts
const (
	LayoutGrid = "grid"
	LayoutList = "list"
)

var categoryIcons = map[string]string{
	models.CategoryCourse:    "fa-graduation-cap",
	models.CategoryPayment:   "fa-credit-card",
	models.CategoryTechnical: "fa-cog",
	models.CategoryGeneral:   "fa-info-circle",
	models.CategoryHackathon: "fa-laptop-code",
}

var categoryNames = map[string]string{
	models.CategoryCourse:    "강의",
	models.CategoryPayment:   "결제",
	models.CategoryTechnical: "기술",
	models.CategoryGeneral:   "일반",
	models.CategoryHackathon: "해커톤",
}

func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return "fa-question"
}

func CategoryName(category string) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "기타"
}

// lines escapes text and turns line breaks into <br>.
func lines(text string) template.HTML {
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = template.HTMLEscapeString(p)
	}
	return template.HTML(strings.Join(parts, "<br>"))
}

// imageSrc lets embedded image data URLs through html/template's URL
// filter. Anything else renders empty.
func imageSrc(src string) template.URL {
	if strings.HasPrefix(src, "data:image/") {
		return template.URL(src)
	}
	return ""
}

var funcs = template.FuncMap{
	"categoryIcon": CategoryIcon,
	"categoryName": CategoryName,
	"lines":        lines,
	"imageSrc":     imageSrc,
}

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("board").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) FAQList(w io.Writer, listing catalog.Listing[models.FAQ]) error {
	return r.tmpl.ExecuteTemplate(w, "faq_list.html", listing)
}

type noticeGridView struct {
	catalog.Listing[models.Notice]
	List      bool
	Searching bool
}

// NoticeGrid renders the notice cards. query is only used to pick the
// empty-state text; layout is LayoutGrid or LayoutList.
func (r *Renderer) NoticeGrid(w io.Writer, listing catalog.Listing[models.Notice], query, layout string) error {
	return r.tmpl.ExecuteTemplate(w, "notice_grid.html", noticeGridView{
		Listing:   listing,
		List:      layout == LayoutList,
		Searching: strings.TrimSpace(query) != "",
	})
}

func (r *Renderer) NoticeDetail(w io.Writer, notice models.Notice) error {
	return r.tmpl.ExecuteTemplate(w, "notice_detail.html", notice)
}

// String renders into a string, for callers that need the whole fragment.
func String(fn func(io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
