// Command rawstr inspects files which are expected to hold UTF-8 text.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/scalecode-solutions/rawstr"
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"
)

// maxLineLength bounds the lines printed by the show command.
const maxLineLength = 1 << 20

var prettyLogs bool

var rootCmd = &cobra.Command{
	Use:          "rawstr",
	Short:        "Inspect bytes that are expected to be UTF-8",
	SilenceUsage: true,
}

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Report whether each input is valid UTF-8",
	Long:  "Report whether each input is valid UTF-8 and, if not, the offset of the first ill-formed byte. Reads stdin if no file is given or the file is \"-\".",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd.ErrOrStderr())
		if len(args) == 0 {
			args = []string{"-"}
		}

		invalid := 0
		for _, name := range args {
			data, err := readInput(name, cmd.InOrStdin())
			if err != nil {
				return err
			}
			r := check(name, data)
			level := zerolog.InfoLevel
			if !r.valid() {
				invalid++
				level = zerolog.WarnLevel
			}
			logger.WithLevel(level).
				Str("file", r.Name).
				Int("bytes", r.Bytes).
				Bool("valid", r.valid()).
				Int("valid_up_to", r.ValidUpTo).
				Msg("Checked input")
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d inputs are not valid UTF-8", invalid, len(args))
		}
		return nil
	},
}

var lossyCmd = &cobra.Command{
	Use:   "lossy [file]",
	Short: "Copy the input to stdout, replacing ill-formed UTF-8 with U+FFFD",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd.ErrOrStderr())
		name := inputName(args)
		in, err := openInput(name, cmd.InOrStdin())
		if err != nil {
			return err
		}
		defer in.Close()

		n, err := copyLossy(cmd.OutOrStdout(), in)
		if err != nil {
			return fmt.Errorf("failed to convert %s: %w", name, err)
		}
		logger.Debug().Str("file", name).Int64("bytes_written", n).Msg("Converted input")
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print each line of the input as a quoted, escaped string",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd.ErrOrStderr())
		name := inputName(args)
		in, err := openInput(name, cmd.InOrStdin())
		if err != nil {
			return err
		}
		defer in.Close()

		lines, invalid, err := showLines(cmd.OutOrStdout(), in)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		logger.Debug().Str("file", name).Int("lines", lines).Int("invalid_lines", invalid).Msg("Printed input")
		return nil
	},
}

func newLogger(w io.Writer) zerolog.Logger {
	if prettyLogs {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// report describes one checked input.
type report struct {
	Name      string
	Bytes     int
	ValidUpTo int
}

func (r report) valid() bool {
	return r.ValidUpTo == r.Bytes
}

func check(name string, data []byte) report {
	v := rawstr.FromBytes(data)
	return report{Name: name, Bytes: v.Len(), ValidUpTo: v.ValidUpTo()}
}

// copyLossy copies r to w through the lossy UTF-8 decoder.
func copyLossy(w io.Writer, r io.Reader) (int64, error) {
	return io.Copy(w, transform.NewReader(r, rawstr.Lossy.NewDecoder()))
}

// showLines prints every line of r, numbered from 1, in its quoted form. It
// returns the number of lines and how many of them were not valid UTF-8.
func showLines(w io.Writer, r io.Reader) (lines, invalid int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		lines++
		line := rawstr.FromBytes(scanner.Bytes())
		if !line.Valid() {
			invalid++
		}
		if _, err := fmt.Fprintf(w, "%d: %q\n", lines, line); err != nil {
			return lines, invalid, err
		}
	}
	return lines, invalid, scanner.Err()
}

func inputName(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	in, err := openInput(name, stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&prettyLogs, "pretty", false, "Use pretty console logging instead of structured JSON")

	rootCmd.AddCommand(checkCmd, lossyCmd, showCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger.Fatal().Err(err).Msg("Command failed")
	}
}
