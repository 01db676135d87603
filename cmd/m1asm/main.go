package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"

	"m1asm"
)

func outputPath(input, explicit string) string {
	if explicit != "" {
		return explicit
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".o"
}

func assembleFile(input, output string) error {
	src, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrapf(err, "reading %s", input)
	}

	result, errs := m1asm.Assemble(src)
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, formatError(input, src, e))
		}
		return fmt.Errorf("%d error(s) assembling %s", len(errs), input)
	}

	out, err := os.Create(output)
	if err != nil {
		return errors.Wrapf(err, "creating %s", output)
	}

	if err := m1asm.Emit(out, result.Title, result.Lines); err != nil {
		out.Close()
		os.Remove(output)
		return errors.Wrapf(err, "writing %s", output)
	}

	if err := out.Close(); err != nil {
		os.Remove(output)
		return errors.Wrapf(err, "closing %s", output)
	}
	return nil
}

// formatError renders a caret-style excerpt for errors carrying a source
// span; other error kinds are rendered as a bare message.
func formatError(file string, src []byte, e *m1asm.Error) string {
	if e.Span == (m1asm.Span{}) {
		return fmt.Sprintf("%s: %s", file, e.Error())
	}
	pos := e.Span.Start
	if pos > len(src) {
		pos = len(src)
	}
	line, col := lineCol(src, pos)
	lineStart := pos - (col - 1)
	lineEnd := lineStart
	for lineEnd < len(src) && src[lineEnd] != '\n' {
		lineEnd++
	}
	excerpt := strings.TrimRight(string(src[lineStart:lineEnd]), "\r")
	caret := strings.Repeat(" ", col-1) + "^"
	return fmt.Sprintf("%s:%d:%d: %s\n%s\n%s", file, line, col, e.Error(), excerpt, caret)
}

func lineCol(src []byte, pos int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < pos && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func main() {
	app := cli.NewApp()
	app.Name = "m1asm"
	app.Usage = "Assembler for the MICRO-1 horizontal microcode architecture"
	app.ArgsUsage = "file"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file path (default: input path with extension replaced by .o)",
		},
	}
	app.Action = func(c *cli.Context) error {
		args := c.Args()
		if args.Len() < 1 {
			return cli.Exit("Insufficient arguments", 1)
		}
		input := args.First()
		output := outputPath(input, c.String("output"))
		if err := assembleFile(input, output); err != nil {
			return cli.Exit(err, 1)
		}
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
