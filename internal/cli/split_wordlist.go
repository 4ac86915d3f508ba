package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mrlokans/lexicon/internal/dictionary"
)

// SplitWordlistCommand splits a newline-delimited word list into one plain
// list file per word length.
type SplitWordlistCommand struct {
	InputPath string
	OutputDir string
	MinLength int
	MaxLength int
	Prefix    string

	out io.Writer
}

func NewSplitWordlistCommand() *SplitWordlistCommand {
	return &SplitWordlistCommand{out: os.Stdout}
}

func (cmd *SplitWordlistCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("split-wordlist", flag.ExitOnError)

	fs.StringVar(&cmd.InputPath, "input", "", "Word list with one word per line (required)")
	fs.StringVar(&cmd.OutputDir, "output", "", "Directory to write the per-length files to (required)")
	fs.IntVar(&cmd.MinLength, "min", 4, "Shortest word length to keep")
	fs.IntVar(&cmd.MaxLength, "max", 8, "Longest word length to keep")
	fs.StringVar(&cmd.Prefix, "prefix", dictionary.DefaultPlainListPrefix, "File name prefix of the generated lists")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s split-wordlist -input <file> -output <dir> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Split a word list into <prefix><length>.txt files for the plain layout.\n")
		fmt.Fprintf(os.Stderr, "Hyphenated words and words outside [-min, -max] are dropped.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	return cmd.validate()
}

func (cmd *SplitWordlistCommand) validate() error {
	if cmd.InputPath == "" {
		return fmt.Errorf("required flag -input not provided")
	}
	if cmd.OutputDir == "" {
		return fmt.Errorf("required flag -output not provided")
	}
	if cmd.MinLength < 1 || cmd.MaxLength < cmd.MinLength {
		return fmt.Errorf("invalid length range %d-%d", cmd.MinLength, cmd.MaxLength)
	}
	return nil
}

func (cmd *SplitWordlistCommand) Run() error {
	file, err := os.Open(cmd.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()

	buckets, err := SplitByLength(file, cmd.MinLength, cmd.MaxLength)
	if err != nil {
		return fmt.Errorf("failed to read word list: %w", err)
	}

	if err := os.MkdirAll(cmd.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	total := 0
	for n := cmd.MinLength; n <= cmd.MaxLength; n++ {
		path := filepath.Join(cmd.OutputDir, dictionary.PlainListFileName(cmd.Prefix, n))
		if err := writeWordList(path, buckets[n]); err != nil {
			return err
		}
		total += len(buckets[n])
		fmt.Fprintf(cmd.out, "%s: %d words\n", path, len(buckets[n]))
	}

	fmt.Fprintf(cmd.out, "Wrote %d words\n", total)
	return nil
}

// SplitByLength buckets the words of r by rune length. Blank lines,
// hyphenated words and lengths outside [minLength, maxLength] are skipped;
// input order is kept within each bucket.
func SplitByLength(r io.Reader, minLength, maxLength int) (map[int][]string, error) {
	buckets := make(map[int][]string, maxLength-minLength+1)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.Contains(word, "-") {
			continue
		}
		n := utf8.RuneCountInString(word)
		if n < minLength || n > maxLength {
			continue
		}
		buckets[n] = append(buckets[n], word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return buckets, nil
}

func writeWordList(path string, words []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := bufio.NewWriter(file)
	for _, word := range words {
		w.WriteString(word)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
