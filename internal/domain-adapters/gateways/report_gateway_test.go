package gateways

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

// failingRenderer is a structured renderer that always fails
type failingRenderer struct {
	format entities.OutputFormat
}

func (f *failingRenderer) Format() entities.OutputFormat { return f.format }

func (f *failingRenderer) RenderCompact(*entities.Diff) ([]byte, error) {
	return nil, &entities.RenderError{Operation: "render diff", Format: string(f.format), Err: errors.New("boom")}
}

func (f *failingRenderer) RenderPretty(d *entities.Diff) ([]byte, error) { return f.RenderCompact(d) }

func (f *failingRenderer) ParseBack([]byte) (*entities.Diff, error) { return nil, errors.New("boom") }

func TestReportGateway_RenderStructured(t *testing.T) {
	gateway := NewReportGateway()

	jsonOut, err := gateway.RenderStructured(sampleDiff(), entities.FormatJSON, false)
	require.NoError(t, err)
	assert.True(t, gjson.ValidBytes(jsonOut))
	assert.Equal(t, int64(2), gjson.GetBytes(jsonOut, "componentsAdded.#").Int())

	xmlOut, err := gateway.RenderStructured(sampleDiff(), entities.FormatXML, true)
	require.NoError(t, err)
	parsed, err := NewXMLRenderer().ParseBack(xmlOut)
	require.NoError(t, err)
	assertSameDiff(t, sampleDiff(), parsed)
}

func TestReportGateway_UnsupportedFormat(t *testing.T) {
	_, err := NewReportGateway().RenderStructured(sampleDiff(), entities.OutputFormat("csv"), true)
	assert.ErrorIs(t, err, entities.ErrUnsupportedFormat)
}

func TestReportGateway_RendererFailure(t *testing.T) {
	gateway := NewReportGatewayWithRenderers(&failingRenderer{format: entities.FormatJSON})

	_, err := gateway.RenderStructured(sampleDiff(), entities.FormatJSON, true)
	require.Error(t, err)

	var renderErr *entities.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "json", renderErr.Format)

	_, err = gateway.RenderStructured(sampleDiff(), entities.FormatXML, true)
	assert.ErrorIs(t, err, entities.ErrUnsupportedFormat)
}

func TestReportGateway_RenderHTML(t *testing.T) {
	out, err := NewReportGateway().RenderHTML(sampleDiff(), reportContext())
	require.NoError(t, err)
	assert.Contains(t, string(out), "Compared Sbom Results")
}
