package commands

import (
	"fmt"
	"strings"

	"github.com/bjaus/fmter"
	"github.com/spf13/cobra"

	"sheetfmt/internal/domain"
)

// render writes raw as-is for document formats and rows otherwise.
func render[T any](cmd *cobra.Command, raw any, rows []T) error {
	w := cmd.OutOrStdout()
	switch outFmt {
	case fmter.JSON, fmter.YAML:
		return fmter.Write(w, outFmt, raw)
	}
	if !fmter.IsSupported[T](outFmt) {
		return fmt.Errorf("output %q is not supported by this command", outFmt)
	}
	return fmter.Write(w, outFmt, rows...)
}

type infoRow domain.Info

func (r infoRow) Header() []string { return []string{"NAME", "URL"} }
func (r infoRow) Row() []string    { return []string{r.Name.String(), r.URL} }
func (r infoRow) List() []string   { return []string{r.Name.String()} }
func (r infoRow) String() string   { return r.Name.String() }

type menuRow domain.MenuEntry

func (r menuRow) Header() []string { return []string{"LABEL", "SELECTOR"} }
func (r menuRow) Row() []string    { return []string{r.Label, r.Selector.String()} }
func (r menuRow) List() []string   { return []string{r.Selector.String()} }
func (r menuRow) String() string   { return r.Label + "\t" + r.Selector.String() }

type sampleRow domain.Sample

func (r sampleRow) Header() []string { return []string{"LABEL", "SELECTOR", "VALUE"} }
func (r sampleRow) Row() []string    { return []string{r.Label, r.Selector.String(), r.Value} }
func (r sampleRow) List() []string   { return []string{r.Value} }
func (r sampleRow) String() string   { return r.Label + "\t" + r.Value }

type componentRow domain.TextComponent

func (r componentRow) Header() []string { return []string{"LABEL", "TEXT", "ALTERNATIVES"} }
func (r componentRow) Row() []string {
	return []string{r.Label, r.Text, alternatives(r.Alternatives)}
}
func (r componentRow) List() []string { return []string{r.Text} }
func (r componentRow) String() string { return r.Text }

type formattedRow struct {
	Input string
	domain.FormattedValue
}

func (r formattedRow) Header() []string { return []string{"VALUE", "TEXT", "ERROR"} }
func (r formattedRow) Row() []string    { return []string{r.Input, r.Text, r.Error} }
func (r formattedRow) List() []string   { return []string{r.String()} }
func (r formattedRow) String() string {
	if r.Error != "" {
		return "error: " + r.Error
	}
	return r.Text
}

func alternatives(alts []domain.TextComponentAlternative) string {
	texts := make([]string, len(alts))
	for i, a := range alts {
		texts[i] = a.Text
	}
	return strings.Join(texts, " ")
}

func rowsOf[S ~[]E, E any, R any](items S, conv func(E) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = conv(item)
	}
	return out
}
