// Package web bundles the HTML views, the public assets and the static
// error documents served by the order site.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"math"
	"strings"

	"pizzeria/internal/model"
)

const (
	ViewOrders  = "orders"
	ViewOrder   = "order"
	ViewSuccess = "success"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed all:public
var publicFS embed.FS

//go:embed errorpages/error404.html
var NotFoundPage []byte

//go:embed errorpages/error500.html
var ErrorPage []byte

type OrdersPage struct {
	Orders []model.Order
}

// OrderPage carries a possibly absent order; the view shows a not-found block
// when Order is nil.
type OrderPage struct {
	Order *model.Order
}

type SuccessPage struct {
	Message string
}

var funcs = template.FuncMap{
	"lineTotal": lineTotal,
	"inputDate": inputDate,
}

type Renderer struct {
	views map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{views: make(map[string]*template.Template)}
	for _, name := range []string{ViewOrders, ViewOrder, ViewSuccess} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		r.views[name] = t
	}
	return r, nil
}

// Render executes the named view into a buffer first so a failing template
// never leaves a partial page on w.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	t, ok := r.views[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func PublicFS() fs.FS {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic(err)
	}
	return sub
}

func lineTotal(o model.Order) model.Number {
	total := o.Quantity.Float64() * o.PricePer.Float64()
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return model.Number(total)
	}
	return model.Number(math.Round(total*100) / 100)
}

// inputDate turns a stored YYYY/MM/DD date back into the YYYY-MM-DD form a
// date input expects.
func inputDate(s string) string {
	if len(s) == len("2006/01/02") && s[4] == '/' && s[7] == '/' {
		return strings.ReplaceAll(s, "/", "-")
	}
	return s
}
