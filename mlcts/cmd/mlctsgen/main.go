// Command mlctsgen exercises the mlcts library end to end: it converts
// Myanmar-script text to MLCTS, or tokenizes MLCTS text and prints the
// resulting syllables.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/k0kubun/pp"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"

	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/mlcts"
	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/mlctslog"
)

var (
	debug        bool
	strictVirama bool
	lang         string
)

func main() {
	root := &cobra.Command{
		Use:   "mlctsgen",
		Short: "Convert between MLCTS romanization and Myanmar script",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "pretty-print the parsed structure before converting")
	root.PersistentFlags().StringVar(&lang, "lang", "", "ISO 639 language code of the input (e.g. my, mya)")

	toMLCTS := &cobra.Command{
		Use:   "to-mlcts [text]",
		Short: "Convert Myanmar-script text to MLCTS romanization",
		RunE:  runToMLCTS,
	}

	fromMLCTS := &cobra.Command{
		Use:   "from-mlcts [text]",
		Short: "Tokenize MLCTS text and print the decoded syllables as JSON",
		RunE:  runFromMLCTS,
	}
	fromMLCTS.Flags().BoolVar(&strictVirama, "strict-virama", false, "take a final consonant letter as virama only before a tone mark, whitespace, end of input or a syllable start")

	root.AddCommand(toMLCTS, fromMLCTS)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprint(err))
		os.Exit(1)
	}
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

func runToMLCTS(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	opts := mlcts.Options{Language: lang}
	if !mlcts.DetectScript(input, opts) {
		mlctslog.Log.Debug().Str("input", input).Msg("mlctsgen: input does not look like Myanmar script")
	}

	spans := mlcts.SplitSyllables(input)
	if debug {
		pp.Println(spans)
	}

	var out strings.Builder
	for _, span := range spans {
		syl, n, err := mlcts.ParseSyllable(span)
		if err != nil || n != len(span) {
			out.WriteString(color.Yellow.Sprint(span))
			continue
		}
		out.WriteString(syl.ToMLCTS())
	}

	printWrapped(out.String())
	return nil
}

func runFromMLCTS(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	toks := mlcts.Tokenize(input, mlcts.Options{StrictVirama: strictVirama})
	if debug {
		pp.Println(toks)
	}

	type tokenView struct {
		Kind  string `json:"kind"`
		Start int    `json:"start"`
		Len   int    `json:"len"`
		Mlcts string `json:"mlcts,omitempty"`
	}
	views := make([]tokenView, 0, len(toks))
	for _, tk := range toks {
		v := tokenView{Kind: tk.Kind.String(), Start: tk.Start, Len: tk.Len}
		if tk.Kind.String() == "Syllable" {
			v.Mlcts = tk.Syllable.ToMLCTS()
		}
		views = append(views, v)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}

// printWrapped writes s to stdout, breaking at grapheme-cluster boundaries
// near 100 columns so a terminal never splits a combining Myanmar cluster
// mid-glyph.
func printWrapped(s string) {
	const width = 100
	gr := uniseg.NewGraphemes(s)
	col := 0
	for gr.Next() {
		cluster := gr.Str()
		if col >= width {
			fmt.Println()
			col = 0
		}
		fmt.Print(cluster)
		col++
	}
	fmt.Println()
}
