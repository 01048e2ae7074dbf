package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/sutja/internal/keyword"
	"github.com/jusunglee/sutja/internal/mnemonic"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

var (
	digitStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	keywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	fallbackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Args[1:]); err != nil {
		if !errors.Is(err, ff.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer, args []string) error {
	rootFlags := ff.NewFlagSet("sutja")
	root := &ff.Command{
		Name:      "sutja",
		Usage:     "sutja <SUBCOMMAND> [FLAGS] [ARGS]",
		ShortHelp: "turn words into memorable numbers and numbers into words",
		Flags:     rootFlags,
	}

	encodeCmd := &ff.Command{
		Name:      "encode",
		Usage:     "sutja encode WORD...",
		ShortHelp: "encode words to digits",
		Flags:     ff.NewFlagSet("encode").SetParent(rootFlags),
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return errors.New("encode requires at least one word")
			}
			for _, w := range args {
				digits := mnemonic.Encode(w)
				fmt.Fprintf(stdout, "%s %s %s\n", w, digitStyle.Render(digits), labelStyle.Render(mnemonic.Decode(digits)))
			}
			return nil
		},
	}

	decodeCmd := &ff.Command{
		Name:      "decode",
		Usage:     "sutja decode DIGITS",
		ShortHelp: "show the consonant skeleton and keywords for a number",
		Flags:     ff.NewFlagSet("decode").SetParent(rootFlags),
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return errors.New("decode requires exactly one number")
			}
			fmt.Fprintln(stdout, labelStyle.Render(mnemonic.Decode(args[0])))
			return printChunks(stdout, args[0])
		},
	}

	deriveFlags := ff.NewFlagSet("derive").SetParent(rootFlags)
	deriveLength := deriveFlags.IntLong("length", 6, "number of digits")
	deriveCmd := &ff.Command{
		Name:      "derive",
		Usage:     "sutja derive [--length N] WORD",
		ShortHelp: "derive a fixed-length PIN from a word",
		Flags:     deriveFlags,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return errors.New("derive requires a word")
			}
			if *deriveLength < 1 {
				return errors.New("length must be positive")
			}
			fmt.Fprintln(stdout, mnemonic.DeriveFixedLength(strings.Join(args, " "), *deriveLength))
			return nil
		},
	}

	chunkCmd := &ff.Command{
		Name:      "chunk",
		Usage:     "sutja chunk DIGITS",
		ShortHelp: "split a number into keyword groups",
		Flags:     ff.NewFlagSet("chunk").SetParent(rootFlags),
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return errors.New("chunk requires exactly one number")
			}
			return printChunks(stdout, args[0])
		},
	}

	composeFlags := ff.NewFlagSet("compose").SetParent(rootFlags)
	var (
		composeLevel   = composeFlags.StringEnumLong("level", "credential level", "pin", "standard", "master")
		composeLength  = composeFlags.IntLong("length", 6, "number of core digits")
		composeService = composeFlags.StringLong("service", "", "service name, e.g. google")
		composeSymbol  = composeFlags.StringLong("symbol", "!", "special symbol")
	)
	composeCmd := &ff.Command{
		Name:      "compose",
		Usage:     "sutja compose [--level L] [--service S] [--symbol X] WORD",
		ShortHelp: "compose a PIN or password from a word",
		Flags:     composeFlags,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return errors.New("compose requires a word")
			}
			level, err := mnemonic.ParseLevel(*composeLevel)
			if err != nil {
				return err
			}
			if level != mnemonic.LevelPIN && *composeService == "" {
				return errors.New("--service is required for standard and master levels")
			}
			if *composeLength < 1 {
				return errors.New("length must be positive")
			}
			digits := mnemonic.DeriveFixedLength(strings.Join(args, " "), *composeLength)
			fmt.Fprintln(stdout, mnemonic.Compose(level, digits, *composeService, *composeSymbol))
			return nil
		},
	}

	root.Subcommands = []*ff.Command{encodeCmd, decodeCmd, deriveCmd, chunkCmd, composeCmd}

	if err := root.Parse(args, ff.WithEnvVarPrefix("SUTJA")); err != nil {
		fmt.Fprintf(stdout, "%s\n", ffhelp.Command(root.GetSelected()))
		return err
	}
	if err := root.Run(ctx); err != nil {
		if errors.Is(err, ff.ErrNoExec) {
			fmt.Fprintf(stdout, "%s\n", ffhelp.Command(root))
		}
		return err
	}
	return nil
}

func printChunks(w io.Writer, digits string) error {
	dict, err := keyword.Default()
	if err != nil {
		return err
	}
	for _, c := range mnemonic.Convert(digits, dict) {
		words := keywordStyle.Render(strings.Join(c.Candidates, ", "))
		if c.Fallback {
			words = fallbackStyle.Render("(no keyword)")
		}
		fmt.Fprintf(w, "%s  %s\n", digitStyle.Render(fmt.Sprintf("%-3s", c.Digits)), words)
	}
	return nil
}
