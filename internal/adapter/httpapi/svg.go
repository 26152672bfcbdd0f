package httpapi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/simaogato/ethicalfolio-backend/internal/usecase/chart"
)

// Segments below this share get no value label
var minLabelledAllocation = decimal.New(5, -2)

const (
	dimmedOpacity = "0.35"
	strokeColor   = "#ffffff"
)

// RenderRingSVG draws a laid out ring as a standalone SVG document.
// When a sector is active the others are dimmed and the center shows its name and share.
func RenderRingSVG(ring *chart.RingResult) string {
	g := ring.Geometry
	width := 2 * g.Center.X
	height := 2 * g.Center.Y

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s" font-family="sans-serif">`,
		svgNum(width), svgNum(height), svgNum(width), svgNum(height)))

	sb.WriteString(`<g class="segments">`)
	for _, seg := range ring.Segments {
		opacity := "1"
		if ring.Active != nil && !seg.Active {
			opacity = dimmedOpacity
		}
		sb.WriteString(fmt.Sprintf(`<path d="%s" fill="%s" stroke="%s" stroke-width="2" opacity="%s" data-sector="%s">`,
			seg.Arc.Path, escapeXML(seg.Sector.Color), strokeColor, opacity, escapeXML(seg.Sector.ID)))
		sb.WriteString(fmt.Sprintf(`<title>%s %s</title></path>`, escapeXML(seg.Sector.Name), seg.Percent))
	}
	sb.WriteString(`</g>`)

	sb.WriteString(`<g class="labels">`)
	for _, seg := range ring.Segments {
		if seg.Sector.Allocation.LessThan(minLabelledAllocation) {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" fill="#ffffff" font-size="11">%s</text>`,
			svgNum(seg.Arc.LabelPoint.X), svgNum(seg.Arc.LabelPoint.Y), seg.Percent))
	}
	sb.WriteString(`</g>`)

	if ring.Active != nil {
		for _, seg := range ring.Segments {
			if !seg.Active {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" fill="#333333" font-size="14" font-weight="bold">%s</text>`,
				svgNum(g.Center.X), svgNum(g.Center.Y-4), seg.Percent))
			sb.WriteString(fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" fill="#666666" font-size="10">%s</text>`,
				svgNum(g.Center.X), svgNum(g.Center.Y+12), escapeXML(seg.Sector.Name)))
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

func svgNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
