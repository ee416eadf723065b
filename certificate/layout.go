package certificate

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

type textStyle struct {
	font   string
	points int
	color  string
}

var (
	nameStyle     = textStyle{font: "Helvetica-Bold", points: 22, color: "#00008B"}
	capacityStyle = textStyle{font: "Helvetica-Bold", points: 16, color: "#000000"}
	dateLineStyle = textStyle{font: "Helvetica-Bold", points: 12, color: "#000000"}
	registryStyle = textStyle{font: "Courier-Oblique", points: 10, color: "#000000"}
)

// placedText is a single line anchored by its lower-left corner, in points,
// measured from the lower-left corner of the page it is stamped on.
type placedText struct {
	text  string
	style textStyle
	x, y  float64
}

// description renders the pdfcpu stamp description. Absolute scale keeps the
// font size fixed regardless of page size, rotation 0 keeps the line horizontal.
func (p placedText) description() string {
	return fmt.Sprintf(
		"fontname:%s, points:%d, fillcolor:%s, position:bl, offset:%g %g, scalefactor:1 abs, rotation:0, opacity:1",
		p.style.font, p.style.points, p.style.color, p.x, p.y,
	)
}

// watermark builds an on-top stamp so the template stays visible underneath.
func (p placedText) watermark() (*model.Watermark, error) {
	return api.TextWatermark(p.text, p.description(), true, false, types.POINTS)
}
