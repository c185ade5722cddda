// Package corpus loads the syllable fixture CSV described by spec.md §6
// (header: input_class, myanmar_syllable, mlcts_syllable, consonant,
// medial_diacritic, vowel, virama, tone) for use by the table-driven
// fixture tests of package mlcts.
package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"
	"gopkg.in/yaml.v2"
)

// Row is one fixture row. Empty optional fields decode to "".
type Row struct {
	InputClass      string `yaml:"input_class"`
	MyanmarSyllable string `yaml:"myanmar_syllable"`
	MLCTSSyllable   string `yaml:"mlcts_syllable"`
	Consonant       string `yaml:"consonant"`
	MedialDiacritic string `yaml:"medial_diacritic"`
	Vowel           string `yaml:"vowel"`
	Virama          string `yaml:"virama"`
	Tone            string `yaml:"tone"`
}

var header = []string{
	"input_class", "myanmar_syllable", "mlcts_syllable",
	"consonant", "medial_diacritic", "vowel", "virama", "tone",
}

// Load parses the CSV format of spec.md §6 from r.
func Load(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("corpus: reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("corpus: empty fixture file")
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, Row{
			InputClass:      rec[0],
			MyanmarSyllable: rec[1],
			MLCTSSyllable:   rec[2],
			Consonant:       rec[3],
			MedialDiacritic: rec[4],
			Vowel:           rec[5],
			Virama:          rec[6],
			Tone:            rec[7],
		})
	}
	return rows, nil
}

// Write serializes rows back into the spec.md §6 CSV format, header first.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("corpus: writing header: %w", err)
	}
	for _, row := range rows {
		err := cw.Write([]string{
			row.InputClass, row.MyanmarSyllable, row.MLCTSSyllable,
			row.Consonant, row.MedialDiacritic, row.Vowel, row.Virama, row.Tone,
		})
		if err != nil {
			return fmt.Errorf("corpus: writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DumpYAML renders rows as YAML, for golden-file diffing in test failure
// output.
func DumpYAML(rows []Row) (string, error) {
	b, err := yaml.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("corpus: marshaling yaml: %w", err)
	}
	return string(b), nil
}

// Graphemes splits s into its grapheme clusters, used to render a Myanmar
// fixture field readably in a test failure message instead of as raw
// combining code points.
func Graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// DiffGraphemes renders a human-readable grapheme-by-grapheme comparison of
// got against want, for use in require.Equal failure messages.
func DiffGraphemes(got, want string) string {
	g, w := Graphemes(got), Graphemes(want)
	var b strings.Builder
	fmt.Fprintf(&b, "got  (%d graphemes): %v\n", len(g), g)
	fmt.Fprintf(&b, "want (%d graphemes): %v\n", len(w), w)
	return b.String()
}
