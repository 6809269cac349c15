package web

import (
	"net/url"

	"productos-admin/internal/console"
	"productos-admin/internal/models"
)

// ViewData is what templates receive.
type ViewData map[string]any

type confirmDialog struct {
	Title       string
	ConfirmText string
	Action      string
}

type pageField struct {
	value string
}

func (f *pageField) Value() string     { return f.value }
func (f *pageField) SetValue(v string) { f.value = v }

// page is the rendered document for one request. It is the table, the form
// and the dialog layer the console works on.
type page struct {
	rows    []models.Product
	fields  map[string]*pageField
	notices []console.Notice
	alerts  []string
	confirm *confirmDialog
	stale   bool // table was not loaded for this response
}

// newPage returns a page with the full, empty product form.
func newPage() *page {
	p := &page{fields: make(map[string]*pageField, len(console.FieldIDs))}
	for _, id := range console.FieldIDs {
		p.fields[id] = &pageField{}
	}
	return p
}

// pageFromForm exposes only the inputs the browser actually posted.
func pageFromForm(values url.Values) *page {
	p := &page{fields: make(map[string]*pageField, len(console.FieldIDs))}
	for _, id := range console.FieldIDs {
		if _, ok := values[id]; ok {
			p.fields[id] = &pageField{value: values.Get(id)}
		}
	}
	return p
}

func (p *page) Clear()                   { p.rows = p.rows[:0] }
func (p *page) Append(pr models.Product) { p.rows = append(p.rows, pr) }

func (p *page) Field(id string) (console.Field, bool) {
	f, ok := p.fields[id]
	if !ok {
		return nil, false
	}
	return f, true
}

func (p *page) Alert(message string)    { p.alerts = append(p.alerts, message) }
func (p *page) Notify(n console.Notice) { p.notices = append(p.notices, n) }

func (p *page) form() map[string]string {
	out := make(map[string]string, len(p.fields))
	for id, f := range p.fields {
		out[id] = f.value
	}
	return out
}

func (p *page) mode() console.Mode {
	if f, ok := p.fields[console.FieldID]; ok && f.value != "" {
		return console.ModeEdit
	}
	return console.ModeCreate
}

func (p *page) viewData() ViewData {
	return ViewData{
		"Rows":    p.rows,
		"Form":    p.form(),
		"Mode":    p.mode().String(),
		"Notices": p.notices,
		"Alerts":  p.alerts,
		"Confirm": p.confirm,
		"Stale":   p.stale,
	}
}
