package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/piecetable"
	"github.com/npillmayer/piecetable/editor"
	"github.com/npillmayer/piecetable/textfile"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// --- Global Command Variables ---
var (
	traceLevel string
	fragSize   int64
	emptyDoc   bool
	dictPath   string

	conf *koanfadapter.KConf

	rootCmd = &cobra.Command{
		Use:   "ptedit",
		Short: "Edit text files through a piece table",
		Long: `ptedit loads a text file into a piece table, applies an edit script
to it and outputs the document or the internal structure of the table.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			conf, err = setupConfig()
			return err
		},
	}

	applyCmd = &cobra.Command{
		Use:   "apply [FILE] [SCRIPT]",
		Short: "Apply an edit script to a file and print the result",
		Long: `Apply loads FILE and replays the edit commands from SCRIPT, or from
standard input if no SCRIPT is given. With --empty, no FILE is read.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: runApply,
	}
	dotCmd = &cobra.Command{
		Use:   "dot [FILE] [SCRIPT]",
		Short: "Like apply, but print the piece tree in Graphviz DOT format",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  runDot,
	}
	dumpCmd = &cobra.Command{
		Use:   "dump [FILE] [SCRIPT]",
		Short: "Like apply, but print the nodes of the piece tree",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  runDump,
	}
	spellCmd = &cobra.Command{
		Use:   "spell FILE",
		Short: "Count the misspelled words of a file",
		Args:  cobra.ExactArgs(1),
		RunE:  runSpell,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level (Debug, Info, Error)")
	rootCmd.PersistentFlags().Int64Var(&fragSize, "frag", 0, "fragment size for loading files")
	for _, cmd := range []*cobra.Command{applyCmd, dotCmd, dumpCmd} {
		cmd.Flags().BoolVar(&emptyDoc, "empty", false, "start with an empty document")
	}
	spellCmd.Flags().StringVar(&dictPath, "dict", "", "word list for spell checking")
	rootCmd.AddCommand(applyCmd, dotCmd, dumpCmd, spellCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	ed, err := editSession(cmd, args)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), ed.GetText())
	return err
}

func runDot(cmd *cobra.Command, args []string) error {
	ed, err := editSession(cmd, args)
	if err != nil {
		return err
	}
	piecetable.Table2Dot(ed.Document(), cmd.OutOrStdout())
	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	ed, err := editSession(cmd, args)
	if err != nil {
		return err
	}
	piecetable.DumpTable(ed.Document(), cmd.OutOrStdout())
	return nil
}

func runSpell(cmd *cobra.Command, args []string) error {
	path := conf.GetString("editor.dictionary")
	if path == "" {
		path = editor.DefaultDictionaryPath
	}
	dict, err := editor.LoadDictionaryFile(path)
	if err != nil {
		return fmt.Errorf("cannot load dictionary: %w", err)
	}
	pt, err := textfile.Load(cmd.Context(), args[0], 0, int64(conf.GetInt("textfile.fragsize")))
	if err != nil {
		return err
	}
	n := editor.New(pt, dict).Misspellings()
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d misspelled words\n", n)
	return err
}

// editSession loads the document and replays the edit script on it.
// args are [FILE] [SCRIPT], FILE being absent with --empty.
func editSession(cmd *cobra.Command, args []string) (*editor.Editor, error) {
	var pt *piecetable.PieceTable
	if emptyDoc {
		pt = piecetable.New(nil)
	} else {
		if len(args) == 0 {
			return nil, errors.New("no input file given")
		}
		var err error
		pt, err = textfile.Load(cmd.Context(), args[0], 0, int64(conf.GetInt("textfile.fragsize")))
		if err != nil {
			return nil, err
		}
		args = args[1:]
	}
	if len(args) > 1 {
		return nil, fmt.Errorf("unexpected argument %q", args[1])
	}
	ed := editor.New(pt, nil)
	script, closer, err := openScript(cmd, args)
	if err != nil {
		return nil, err
	}
	if script == nil {
		return ed, nil
	}
	defer closer()
	if err = editor.Replay(ed, script); err != nil {
		return nil, err
	}
	piecetable.T().Infof("document has %d bytes in %d pieces", pt.Size(), pt.PieceCount())
	tracing.With(piecetable.T()).Dump("pieces", pieces(pt))
	if err = pt.Check(); err != nil {
		return nil, err
	}
	return ed, nil
}

// openScript opens the script named in args, or standard input. If standard
// input is an interactive terminal, no script is read and openScript
// returns a nil reader.
func openScript(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, nil, nil
	}
	return in, func() {}, nil
}

func pieces(pt *piecetable.PieceTable) []piecetable.Piece {
	p := make([]piecetable.Piece, 0, pt.PieceCount())
	pt.EachPiece(func(piece piecetable.Piece, _ uint64) error {
		p = append(p, piece)
		return nil
	})
	return p
}
