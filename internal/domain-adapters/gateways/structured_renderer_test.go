package gateways

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
	"github.com/ochairo/sbomdiff/internal/domain/interfaces/gateways"
)

func sampleDiff() *entities.Diff {
	return &entities.Diff{
		ComponentsAdded: []entities.Component{
			{Group: "slf4j", Name: "slf4j", Version: "1.7.0", Publisher: "QOS.ch",
				Properties: []entities.Property{{Name: "efossStatus", Value: "APPROVED"}}},
			{Name: "zlib", Version: "1.3"},
		},
		ComponentsRemoved: []entities.Component{
			{Group: "commons-io", Name: "commons-io", Version: "2.4"},
		},
		ModifiedComponents: []entities.ModifiedComponent{
			{
				PreviousComponent: entities.Component{Group: "log4j", Name: "log4j", Version: "1.2.12"},
				NewComponent:      entities.Component{Group: "log4j", Name: "log4j", Version: "1.2.17"},
			},
		},
	}
}

type identityVersion struct {
	Identity entities.Identity
	Version  string
}

func summarize(list []entities.Component) []identityVersion {
	out := make([]identityVersion, 0, len(list))
	for _, c := range list {
		out = append(out, identityVersion{entities.IdentityOf(c), c.Version})
	}
	return out
}

func assertSameDiff(t *testing.T, want, got *entities.Diff) {
	t.Helper()
	assert.Equal(t, summarize(want.ComponentsAdded), summarize(got.ComponentsAdded))
	assert.Equal(t, summarize(want.ComponentsRemoved), summarize(got.ComponentsRemoved))
	require.Len(t, got.ModifiedComponents, len(want.ModifiedComponents))
	for i := range want.ModifiedComponents {
		assert.Equal(t,
			summarize([]entities.Component{want.ModifiedComponents[i].PreviousComponent, want.ModifiedComponents[i].NewComponent}),
			summarize([]entities.Component{got.ModifiedComponents[i].PreviousComponent, got.ModifiedComponents[i].NewComponent}))
	}
}

func structuredRenderers() []gateways.StructuredRenderer {
	return []gateways.StructuredRenderer{NewJSONRenderer(), NewXMLRenderer()}
}

func TestStructuredRenderers_RoundTrip(t *testing.T) {
	diffs := map[string]*entities.Diff{
		"sample": sampleDiff(),
		"empty":  entities.NewDiff(),
		"added only": {
			ComponentsAdded: []entities.Component{{Group: "g", Name: "a", Version: "1"}},
		},
		"special characters": {
			ComponentsAdded: []entities.Component{{Group: "a&b", Name: "<tag>", Version: "1.0 \"beta\""}},
		},
	}

	for _, renderer := range structuredRenderers() {
		for name, diff := range diffs {
			t.Run(string(renderer.Format())+"/"+name, func(t *testing.T) {
				for _, render := range []func(*entities.Diff) ([]byte, error){renderer.RenderCompact, renderer.RenderPretty} {
					data, err := render(diff)
					require.NoError(t, err)

					parsed, err := renderer.ParseBack(data)
					require.NoError(t, err)
					assertSameDiff(t, diff, parsed)
				}
			})
		}
	}
}

func TestStructuredRenderers_RoundTripControlCharactersInJSON(t *testing.T) {
	diff := &entities.Diff{
		ComponentsAdded: []entities.Component{{Group: "g", Name: "a\x01b", Version: "1\t2"}},
	}
	renderer := NewJSONRenderer()

	data, err := renderer.RenderCompact(diff)
	require.NoError(t, err)
	parsed, err := renderer.ParseBack(data)
	require.NoError(t, err)
	assertSameDiff(t, diff, parsed)
}

func TestStructuredRenderers_RejectLossyText(t *testing.T) {
	tests := []struct {
		name     string
		diff     *entities.Diff
		renderer gateways.StructuredRenderer
	}{
		{
			name:     "xml control character in name",
			diff:     &entities.Diff{ComponentsAdded: []entities.Component{{Name: "a\x01b", Version: "1"}}},
			renderer: NewXMLRenderer(),
		},
		{
			name: "xml control character in modified version",
			diff: &entities.Diff{ModifiedComponents: []entities.ModifiedComponent{{
				PreviousComponent: entities.Component{Name: "a", Version: "1"},
				NewComponent:      entities.Component{Name: "a", Version: "2\x1f"},
			}}},
			renderer: NewXMLRenderer(),
		},
		{
			name: "xml control character in property value",
			diff: &entities.Diff{ComponentsRemoved: []entities.Component{{
				Name: "a", Properties: []entities.Property{{Name: "efossStatus", Value: "\x00"}},
			}}},
			renderer: NewXMLRenderer(),
		},
		{
			name:     "xml invalid utf-8 in group",
			diff:     &entities.Diff{ComponentsAdded: []entities.Component{{Group: "bad\xffutf8", Name: "a"}}},
			renderer: NewXMLRenderer(),
		},
		{
			name:     "json invalid utf-8 in name",
			diff:     &entities.Diff{ComponentsAdded: []entities.Component{{Name: "bad\xffutf8"}}},
			renderer: NewJSONRenderer(),
		},
		{
			name:     "json invalid utf-8 in publisher",
			diff:     &entities.Diff{ComponentsRemoved: []entities.Component{{Name: "a", Publisher: "\xc3"}}},
			renderer: NewJSONRenderer(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, render := range []func(*entities.Diff) ([]byte, error){tt.renderer.RenderCompact, tt.renderer.RenderPretty} {
				data, err := render(tt.diff)
				require.Error(t, err)
				assert.Nil(t, data)

				var renderErr *entities.RenderError
				require.ErrorAs(t, err, &renderErr)
				assert.Equal(t, "render diff", renderErr.Operation)
				assert.Equal(t, string(tt.renderer.Format()), renderErr.Format)
			}
		})
	}
}

func TestStructuredRenderers_CompactIsSingleLine(t *testing.T) {
	for _, renderer := range structuredRenderers() {
		t.Run(string(renderer.Format()), func(t *testing.T) {
			compact, err := renderer.RenderCompact(sampleDiff())
			require.NoError(t, err)
			assert.NotContains(t, string(compact), "\n")

			pretty, err := renderer.RenderPretty(sampleDiff())
			require.NoError(t, err)
			assert.Greater(t, strings.Count(string(pretty), "\n"), 10)
		})
	}
}

func TestStructuredRenderers_NilDiff(t *testing.T) {
	for _, renderer := range structuredRenderers() {
		t.Run(string(renderer.Format()), func(t *testing.T) {
			data, err := renderer.RenderCompact(nil)
			require.NoError(t, err)

			parsed, err := renderer.ParseBack(data)
			require.NoError(t, err)
			assert.True(t, parsed.IsEmpty())
			assert.NotNil(t, parsed.ComponentsAdded)
		})
	}
}

func TestJSONRenderer_Shape(t *testing.T) {
	data, err := NewJSONRenderer().RenderPretty(sampleDiff())
	require.NoError(t, err)
	out := string(data)

	assert.Equal(t, int64(2), gjson.Get(out, "componentsAdded.#").Int())
	assert.Equal(t, "slf4j", gjson.Get(out, "componentsAdded.0.name").String())
	assert.Equal(t, "QOS.ch", gjson.Get(out, "componentsAdded.0.publisher").String())
	assert.Equal(t, "APPROVED", gjson.Get(out, `componentsAdded.0.properties.#(name=="efossStatus").value`).String())
	assert.Equal(t, int64(1), gjson.Get(out, "componentsRemoved.#").Int())
	assert.Equal(t, "1.2.12", gjson.Get(out, "modifiedComponents.0.previousComponent.version").String())
	assert.Equal(t, "1.2.17", gjson.Get(out, "modifiedComponents.0.newComponent.version").String())

	// group and publisher are present even when empty
	zlib := gjson.Get(out, "componentsAdded.1")
	assert.True(t, zlib.Get("group").Exists())
	assert.True(t, zlib.Get("publisher").Exists())
}

func TestJSONRenderer_EmptyCollectionsAreArrays(t *testing.T) {
	data, err := NewJSONRenderer().RenderCompact(entities.NewDiff())
	require.NoError(t, err)

	assert.JSONEq(t, `{"componentsAdded":[],"componentsRemoved":[],"modifiedComponents":[]}`, string(data))
}

func TestXMLRenderer_Shape(t *testing.T) {
	data, err := NewXMLRenderer().RenderPretty(sampleDiff())
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<sbomDiff>")
	assert.Contains(t, out, "<componentsAdded>")
	assert.Contains(t, out, "<componentsRemoved>")
	assert.Contains(t, out, "<modifiedComponents>")
	assert.Contains(t, out, "<previousComponent>")
	assert.Contains(t, out, "<newComponent>")
	assert.Equal(t, 3, strings.Count(out, "<component>"))
}

func TestStructuredRenderers_ParseBackErrors(t *testing.T) {
	for _, renderer := range structuredRenderers() {
		t.Run(string(renderer.Format()), func(t *testing.T) {
			_, err := renderer.ParseBack([]byte("not a diff"))
			assert.Error(t, err)
		})
	}
}
