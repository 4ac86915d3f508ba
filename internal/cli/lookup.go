package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/mrlokans/lexicon/internal/config"
	"github.com/mrlokans/lexicon/internal/entities"
	"github.com/mrlokans/lexicon/internal/entrypoint"
)

// LookupCommand queries the dictionary from the command line.
type LookupCommand struct {
	DictionaryDir string
	ManifestPath  string
	DatabasePath  string
	Language      string
	Word          string
	Length        int
	Theme         string
	JSON          bool
	NoColor       bool

	out io.Writer
}

func NewLookupCommand() *LookupCommand {
	return &LookupCommand{out: os.Stdout}
}

func (cmd *LookupCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("lookup", flag.ExitOnError)

	fs.StringVar(&cmd.DictionaryDir, "dir", config.DefaultDictionaryDir, "Dictionary data directory")
	fs.StringVar(&cmd.ManifestPath, "manifest", "", "Path to manifest.yaml (default: <dir>/manifest.yaml or built-in languages)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the SQLite word store (only used by database layouts)")
	fs.StringVar(&cmd.Language, "lang", "", "Language code (default: manifest default language)")
	fs.StringVar(&cmd.Word, "word", "", "Word to look up")
	fs.IntVar(&cmd.Length, "length", 0, "Pick a random word of this length")
	fs.StringVar(&cmd.Theme, "theme", "", "Theme hint for random words")
	fs.BoolVar(&cmd.JSON, "json", false, "Print the entry as JSON")
	fs.BoolVar(&cmd.NoColor, "no-color", false, "Disable colored output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s lookup (-word <word> | -length <n>) [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Look up a word's meanings or pick a random word.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s lookup -word apple\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s lookup -length 5 -lang pt-br\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	return cmd.validate()
}

func (cmd *LookupCommand) validate() error {
	switch {
	case cmd.Word == "" && cmd.Length == 0:
		return fmt.Errorf("one of -word or -length is required")
	case cmd.Word != "" && cmd.Length != 0:
		return fmt.Errorf("-word and -length are mutually exclusive")
	case cmd.Length < 0:
		return fmt.Errorf("-length must be positive")
	}
	return nil
}

func (cmd *LookupCommand) Run() error {
	ctx := context.Background()

	dict, err := entrypoint.OpenDictionary(entrypoint.DictionaryOptions{
		Dir:          cmd.DictionaryDir,
		ManifestPath: cmd.ManifestPath,
		DatabasePath: cmd.DatabasePath,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		return err
	}
	defer dict.Close()

	var entry entities.WordEntry
	if cmd.Word != "" {
		entry, err = dict.Service.GetMeanings(ctx, cmd.Word, cmd.Language)
	} else {
		entry, err = dict.Service.GetRandomWord(ctx, cmd.Length, cmd.Language, cmd.Theme)
	}
	if err != nil {
		return err
	}

	if cmd.JSON {
		enc := json.NewEncoder(cmd.out)
		enc.SetIndent("", "  ")
		return enc.Encode(entry)
	}

	printEntry(cmd.out, entry, cmd.NoColor)
	return nil
}

// printEntry writes entry as a human-readable card.
func printEntry(w io.Writer, entry entities.WordEntry, noColor bool) {
	word := color.New(color.Bold, color.FgCyan)
	heading := color.New(color.FgYellow)
	faint := color.New(color.Faint)
	if noColor {
		word.DisableColor()
		heading.DisableColor()
		faint.DisableColor()
	}

	fmt.Fprintln(w, word.Sprint(entry.Word))

	if !entry.HasMeanings() {
		fmt.Fprintln(w, faint.Sprint("  (no meanings recorded)"))
		return
	}

	sections := []struct {
		title string
		items []string
	}{
		{"Definitions", entry.Definitions},
		{"Synonyms", entry.Synonyms},
		{"Usages", entry.Usages},
	}
	for _, section := range sections {
		if len(section.items) == 0 {
			continue
		}
		fmt.Fprintln(w, heading.Sprintf("  %s:", section.title))
		for i, item := range section.items {
			fmt.Fprintf(w, "    %d. %s\n", i+1, item)
		}
	}
}
