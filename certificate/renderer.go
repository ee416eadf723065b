// Package certificate stamps participant data onto a fixed PDF template.
//
// Page 1 receives the recipient name, the capacity label and the dated city
// line; page 2 receives folio, number and the raw event date. Any further
// template pages are left untouched.
package certificate

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/ariebrainware/geresapi/util"
)

// MinPages is the number of template pages that receive overlays.
const MinPages = 2

// DateLayout accepts dd-mm-yyyy, with or without leading zeros.
const DateLayout = "2-1-2006"

var (
	ErrTemplateNotFound = errors.New("certificate template not found")
	ErrTemplatePages    = fmt.Errorf("certificate template must have at least %d pages", MinPages)
	ErrInvalidDate      = errors.New("invalid date, expected dd-mm-yyyy")
	ErrMissingField     = errors.New("missing certificate field")
)

var monthNames = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

func init() {
	// Keep pdfcpu from creating a config dir under $HOME on first use.
	api.DisableConfigDir()
}

// Request carries the caller-supplied certificate data.
type Request struct {
	Nombre  string
	Calidad string
	Fecha   string
	Folio   string
	Numero  string
}

// Normalize collapses whitespace in the printed names.
func (r Request) Normalize() Request {
	r.Nombre = util.NormalizeName(r.Nombre)
	r.Calidad = util.NormalizeName(r.Calidad)
	r.Fecha = strings.TrimSpace(r.Fecha)
	return r
}

// Validate checks that every field is present.
func (r Request) Validate() error {
	fields := []struct{ name, value string }{
		{"nombre", r.Nombre}, {"calidad", r.Calidad}, {"fecha", r.Fecha}, {"folio", r.Folio}, {"numero", r.Numero},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}

// Filename is the download name announced in Content-Disposition.
func (r Request) Filename() string {
	return fmt.Sprintf("certificado_%s_%s.pdf", r.Calidad, r.Numero)
}

// ParseDate parses a dd-mm-yyyy calendar date. Impossible dates such as
// 31-02-2025 are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// SpanishDate renders "<city>, <d> de <mes> de <yyyy>".
func SpanishDate(city string, t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d", city, t.Day(), monthNames[t.Month()-1], t.Year())
}

// Renderer produces certificates from one template file. It holds no
// per-request state and is safe for concurrent use.
type Renderer struct {
	templatePath string
	city         string
}

func NewRenderer(templatePath, city string) *Renderer {
	return &Renderer{templatePath: templatePath, city: city}
}

// TemplatePath returns the template location on disk.
func (r *Renderer) TemplatePath() string {
	return r.templatePath
}

// Render validates req, stamps it on a fresh copy of the template and
// returns the resulting PDF bytes.
func (r *Renderer) Render(req Request) ([]byte, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	date, err := ParseDate(req.Fecha)
	if err != nil {
		return nil, err
	}

	template, err := os.ReadFile(r.templatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrTemplateNotFound, r.templatePath)
		}
		return nil, fmt.Errorf("read template: %w", err)
	}

	pages, err := api.PageCount(bytes.NewReader(template), newConfiguration())
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	if pages < MinPages {
		return nil, fmt.Errorf("%w (got %d)", ErrTemplatePages, pages)
	}

	stamps, err := r.overlays(req, date)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := api.AddWatermarksSliceMap(bytes.NewReader(template), &out, stamps, newConfiguration()); err != nil {
		return nil, fmt.Errorf("stamp template: %w", err)
	}
	return out.Bytes(), nil
}

// overlays builds the per-page stamps. Pages beyond the second get none.
func (r *Renderer) overlays(req Request, date time.Time) (map[int][]*model.Watermark, error) {
	page1 := []placedText{
		{text: req.Nombre, style: nameStyle, x: 250, y: 340},
		{text: req.Calidad + ":", style: capacityStyle, x: 130, y: 300},
		{text: SpanishDate(r.city, date), style: dateLineStyle, x: 600, y: 105},
	}
	page2 := []placedText{
		{text: req.Folio, style: registryStyle, x: 290, y: 465},
		{text: req.Numero, style: registryStyle, x: 105, y: 465},
		{text: req.Fecha, style: registryStyle, x: 120, y: 410},
	}

	stamps := make(map[int][]*model.Watermark, MinPages)
	for page, texts := range map[int][]placedText{1: page1, 2: page2} {
		for _, pt := range texts {
			wm, err := pt.watermark()
			if err != nil {
				return nil, fmt.Errorf("page %d overlay: %w", page, err)
			}
			stamps[page] = append(stamps[page], wm)
		}
	}
	return stamps, nil
}

// newConfiguration returns a fresh pdfcpu configuration; pdfcpu mutates it
// while processing, so it is never shared between calls.
func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}
