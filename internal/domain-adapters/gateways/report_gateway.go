package gateways

import (
	"fmt"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
	"github.com/ochairo/sbomdiff/internal/domain/interfaces/gateways"
)

// reportGateway implements the ReportGateway interface by dispatching to
// one structured renderer per output format and the HTML renderer
type reportGateway struct {
	renderers map[entities.OutputFormat]gateways.StructuredRenderer
	html      *htmlRenderer
}

// NewReportGateway creates a report gateway with the JSON and XML renderers registered
func NewReportGateway() gateways.ReportGateway {
	return NewReportGatewayWithRenderers(NewJSONRenderer(), NewXMLRenderer())
}

// NewReportGatewayWithRenderers creates a report gateway with custom structured renderers
// This is useful for testing or when another format needs to be registered
func NewReportGatewayWithRenderers(renderers ...gateways.StructuredRenderer) gateways.ReportGateway {
	g := &reportGateway{
		renderers: make(map[entities.OutputFormat]gateways.StructuredRenderer, len(renderers)),
		html:      NewHTMLRenderer(),
	}
	for _, r := range renderers {
		g.renderers[r.Format()] = r
	}
	return g
}

// RenderStructured renders the diff with the renderer registered for format
func (g *reportGateway) RenderStructured(diff *entities.Diff, format entities.OutputFormat, pretty bool) ([]byte, error) {
	renderer, ok := g.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnsupportedFormat, format)
	}
	if pretty {
		return renderer.RenderPretty(diff)
	}
	return renderer.RenderCompact(diff)
}

// RenderHTML renders the tabular HTML report
func (g *reportGateway) RenderHTML(diff *entities.Diff, rc entities.ReportContext) ([]byte, error) {
	return g.html.RenderHTML(diff, rc)
}
