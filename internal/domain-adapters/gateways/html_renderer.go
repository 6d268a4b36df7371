package gateways

import (
	"bytes"
	"embed"
	"html/template"
	"slices"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/text/cases"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(
	template.New("report.html.tmpl").Funcs(sprig.HtmlFuncMap()).ParseFS(templateFS, "templates/report.html.tmpl"),
)

// CellColors is the background and text color of a report cell
type CellColors struct {
	Background string
	Text       string
}

var defaultColors = CellColors{Background: "white", Text: "black"}

var statusColors = map[entities.Change]CellColors{
	entities.ChangeAdded:    {Background: "#03AC13", Text: "black"},
	entities.ChangeRemoved:  {Background: "red", Text: "white"},
	entities.ChangeModified: {Background: "white", Text: "black"},
}

var efossColors = map[entities.EFossStatus]CellColors{
	entities.EFossApprovalRecommended: {Background: "#03AC13", Text: "black"},
	entities.EFossApproved:            {Background: "#03AC13", Text: "black"},
	entities.EFossUnderReview:         {Background: "yellow", Text: "black"},
	entities.EFossLegalReviewHold:     {Background: "yellow", Text: "black"},
	entities.EFossDenied:              {Background: "red", Text: "white"},
}

// StatusColors returns the colors of the Status cell for a change
func StatusColors(change entities.Change) CellColors {
	if c, ok := statusColors[change]; ok {
		return c
	}
	return defaultColors
}

// EFossColors returns the colors of the EFoss Status cell for a raw property value
func EFossColors(raw string) CellColors {
	if c, ok := efossColors[entities.ParseEFossStatus(raw)]; ok {
		return c
	}
	return defaultColors
}

// VersionChar is one character of a modified version and whether it differs
// from the character at the same position of the old version
type VersionChar struct {
	Char    string
	Changed bool
}

// HTMLRow is one line of the results table
type HTMLRow struct {
	Name         string
	Group        string
	VersionOld   string
	VersionNew   string
	Status       entities.Change
	EFossStatus  string
	VersionChars []VersionChar
	StatusColors CellColors
	EFossColors  CellColors
}

type reportData struct {
	entities.ReportContext
	Rows []HTMLRow
}

// htmlRenderer renders the tabular HTML report
type htmlRenderer struct{}

// NewHTMLRenderer creates a new HTML report renderer
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewHTMLRenderer() *htmlRenderer {
	return &htmlRenderer{}
}

// RenderHTML renders the report for diff
func (r *htmlRenderer) RenderHTML(diff *entities.Diff, rc entities.ReportContext) ([]byte, error) {
	rc.OriginalName = DisplayName(rc.OriginalName)
	rc.NewName = DisplayName(rc.NewName)
	data := reportData{
		ReportContext: rc,
		Rows:          BuildRows(diff),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, &entities.RenderError{Operation: "render HTML report", Err: err}
	}
	return buf.Bytes(), nil
}

// BuildRows flattens a diff into report rows sorted case-insensitively by name.
// Rows with equal names keep the added, removed, modified order.
func BuildRows(diff *entities.Diff) []HTMLRow {
	if diff == nil {
		return []HTMLRow{}
	}

	rows := make([]HTMLRow, 0, diff.Total())
	for _, c := range diff.ComponentsAdded {
		rows = append(rows, newRow(c, entities.ChangeAdded, "", c.Version))
	}
	for _, c := range diff.ComponentsRemoved {
		rows = append(rows, newRow(c, entities.ChangeRemoved, c.Version, ""))
	}
	for _, m := range diff.ModifiedComponents {
		oldVersion := strings.TrimSpace(m.PreviousComponent.Version)
		newVersion := strings.TrimSpace(m.NewComponent.Version)
		row := newRow(m.NewComponent, entities.ChangeModified, oldVersion, newVersion)
		row.VersionChars = HighlightVersion(oldVersion, newVersion)
		rows = append(rows, row)
	}

	caser := cases.Fold()
	keys := make(map[string]string, len(rows))
	for _, row := range rows {
		if _, ok := keys[row.Name]; !ok {
			keys[row.Name] = caser.String(row.Name)
		}
	}
	slices.SortStableFunc(rows, func(a, b HTMLRow) int {
		return strings.Compare(keys[a.Name], keys[b.Name])
	})

	return rows
}

func newRow(c entities.Component, change entities.Change, oldVersion, newVersion string) HTMLRow {
	efoss := c.RawEFossStatus()
	return HTMLRow{
		Name:         c.Name,
		Group:        c.Group,
		VersionOld:   oldVersion,
		VersionNew:   newVersion,
		Status:       change,
		EFossStatus:  efoss,
		StatusColors: StatusColors(change),
		EFossColors:  EFossColors(efoss),
	}
}

// HighlightVersion splits newVersion into characters, marking each one that
// differs from the character at the same index of oldVersion. Positions past
// the end of oldVersion are always marked.
func HighlightVersion(oldVersion, newVersion string) []VersionChar {
	oldRunes := []rune(oldVersion)
	chars := make([]VersionChar, 0, len(newVersion))
	for i, ch := range []rune(newVersion) {
		chars = append(chars, VersionChar{
			Char:    string(ch),
			Changed: i >= len(oldRunes) || oldRunes[i] != ch,
		})
	}
	return chars
}

// DisplayName returns the last path segment of a file reference
func DisplayName(path string) string {
	segments := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}
