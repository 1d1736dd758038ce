// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

// Package altair generates Altair (Python) chart code from assembled specs.
package altair

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marimo-team/marimo-sub006/internal/chartform"
	"github.com/marimo-team/marimo-sub006/internal/codegen"
	"github.com/marimo-team/marimo-sub006/internal/vega"
)

func init() {
	// Auto-register on import
	codegen.Register(New())
}

// Generator translates chart specs to Altair method chains.
type Generator struct{}

// New creates a new Altair generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator's identifier.
func (g *Generator) Name() string {
	return "altair"
}

// FileExtension returns the file extension for Altair files.
func (g *Generator) FileExtension() string {
	return ".py"
}

// Generate emits the Altair chain recreating the spec over the datasource
// variable. Calls chain in the order constructor, mark, encode,
// resolve_scale, properties; a step with nothing to say is omitted rather
// than emitted empty.
func (g *Generator) Generate(spec *vega.Spec, datasource string) (string, error) {
	if spec == nil {
		return "", fmt.Errorf("no spec to generate code for")
	}

	chain := []string{fmt.Sprintf("alt.Chart(%s)", datasource)}

	if spec.Mark.Type != "" {
		chain = append(chain, markCall(spec.Mark))
	}
	if call := encodeCall(spec.Encoding); call != "" {
		chain = append(chain, call)
	}
	if call := resolveScaleCall(spec.Resolve); call != "" {
		chain = append(chain, call)
	}
	if call := propertiesCall(spec); call != "" {
		chain = append(chain, call)
	}

	return strings.Join(chain, "."), nil
}

// Snippet wraps the chain in a variable assignment followed by a bare
// reference to the variable, ready to paste into a notebook cell.
func (g *Generator) Snippet(spec *vega.Spec, datasource, variable string) (string, error) {
	chain, err := g.Generate(spec, datasource)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(fmt.Sprintf("%s = (\n%s\n)\n%s", variable, chain, variable)), nil
}

// markCall renders mark_<type>(...); mark properties beyond the type become
// keyword arguments.
func markCall(m vega.Mark) string {
	var kwargs []string
	if m.InnerRadius != 0 {
		kwargs = append(kwargs, fmt.Sprintf("innerRadius=%d", m.InnerRadius))
	}
	return fmt.Sprintf("mark_%s(%s)", m.Type, strings.Join(kwargs, ", "))
}

// encodeCall renders the encode(...) step with channels in the fixed order
// x, y, color, theta, row, column, tooltip.
func encodeCall(enc *vega.EncodingMap) string {
	if enc == nil {
		return ""
	}

	var kwargs []string
	channel := func(name, wrapper string, e *vega.Encoding) {
		if e == nil {
			return
		}
		kwargs = append(kwargs, fmt.Sprintf("%s=alt.%s(%s)", name, wrapper, encodingArgs(e)))
	}
	channel("x", "X", enc.X)
	channel("y", "Y", enc.Y)
	channel("color", "Color", enc.Color)
	channel("theta", "Theta", enc.Theta)
	channel("row", "Row", enc.Row)
	channel("column", "Column", enc.Column)
	if call := tooltipArg(enc.Tooltip); call != "" {
		kwargs = append(kwargs, "tooltip="+call)
	}

	if len(kwargs) == 0 {
		return ""
	}
	return fmt.Sprintf("encode(%s)", strings.Join(kwargs, ", "))
}

// tooltipArg renders a single Tooltip call or a literal list of them.
func tooltipArg(tooltips []vega.Encoding) string {
	if len(tooltips) == 0 {
		return ""
	}
	calls := make([]string, 0, len(tooltips))
	for i := range tooltips {
		calls = append(calls, fmt.Sprintf("alt.Tooltip(%s)", encodingArgs(&tooltips[i])))
	}
	if len(calls) == 1 {
		return calls[0]
	}
	return "[" + strings.Join(calls, ", ") + "]"
}

// encodingArgs renders an encoding's fields as keyword literals in a fixed
// order. The encoding type is deliberately not emitted: Altair infers it
// from the dataframe.
func encodingArgs(e *vega.Encoding) string {
	var kwargs []string
	if e.Field != "" {
		kwargs = append(kwargs, "field="+pyString(escapeField(e.Field)))
	}
	if e.Aggregate != "" {
		kwargs = append(kwargs, "aggregate="+pyString(string(e.Aggregate)))
	}
	if e.Bin != nil {
		kwargs = append(kwargs, "bin="+binArg(e.Bin))
	}
	if e.TimeUnit != "" {
		kwargs = append(kwargs, "timeUnit="+pyString(string(e.TimeUnit)))
	}
	if e.Sort != "" {
		kwargs = append(kwargs, "sort="+pyString(string(e.Sort)))
	}
	if e.Stack != nil {
		kwargs = append(kwargs, "stack="+pyBool(*e.Stack))
	}
	if e.Title != "" {
		kwargs = append(kwargs, "title="+pyString(e.Title))
	}
	if e.Scale != nil {
		kwargs = append(kwargs, "scale="+scaleArg(e.Scale))
	}
	if e.Format != "" {
		kwargs = append(kwargs, "format="+pyString(e.Format))
	}
	return strings.Join(kwargs, ", ")
}

func binArg(b *vega.BinValue) string {
	if b.Auto {
		return "True"
	}
	var kwargs []string
	if b.Step != 0 {
		kwargs = append(kwargs, "step="+pyFloat(b.Step))
	}
	if b.Maxbins != 0 {
		kwargs = append(kwargs, fmt.Sprintf("maxbins=%d", b.Maxbins))
	}
	return fmt.Sprintf("alt.Bin(%s)", strings.Join(kwargs, ", "))
}

func scaleArg(s *vega.Scale) string {
	var kwargs []string
	if s.Scheme != "" {
		kwargs = append(kwargs, "scheme="+pyString(s.Scheme))
	}
	if len(s.Range) > 0 {
		kwargs = append(kwargs, "range="+pyStringList(s.Range))
	}
	if len(s.Domain) > 0 {
		kwargs = append(kwargs, "domain="+pyStringList(s.Domain))
	}
	return fmt.Sprintf("alt.Scale(%s)", strings.Join(kwargs, ", "))
}

// resolveScaleCall renders resolve_scale(...) with only the axes present.
func resolveScaleCall(r *vega.Resolve) string {
	if r == nil {
		return ""
	}
	var kwargs []string
	if r.Axis.X != "" {
		kwargs = append(kwargs, "x="+pyString(r.Axis.X))
	}
	if r.Axis.Y != "" {
		kwargs = append(kwargs, "y="+pyString(r.Axis.Y))
	}
	if len(kwargs) == 0 {
		return ""
	}
	return fmt.Sprintf("resolve_scale(%s)", strings.Join(kwargs, ", "))
}

// propertiesCall renders properties(...) with title, height and width in
// that order. Dimensions that merely echo the caller's ambient defaults are
// treated as absent; only per-axis overrides from the form make it into the
// chain.
func propertiesCall(spec *vega.Spec) string {
	var kwargs []string
	if spec.Title != "" {
		kwargs = append(kwargs, "title="+pyString(spec.Title))
	}
	if spec.HeightExplicit && spec.Height != 0 {
		kwargs = append(kwargs, fmt.Sprintf("height=%d", spec.Height))
	}
	if spec.WidthExplicit && !spec.Width.IsZero() {
		if spec.Width.Container {
			kwargs = append(kwargs, "width="+pyString(chartform.ContainerSize))
		} else {
			kwargs = append(kwargs, fmt.Sprintf("width=%d", spec.Width.Pixels))
		}
	}
	if len(kwargs) == 0 {
		return ""
	}
	return fmt.Sprintf("properties(%s)", strings.Join(kwargs, ", "))
}

// pyString renders a single-quoted Python string literal. Backslashes are
// left alone so escaped field names pass through intact.
func pyString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func pyStringList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, s := range items {
		quoted = append(quoted, pyString(s))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func pyFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
