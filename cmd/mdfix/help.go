package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdfix <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Normalize parenthesized URLs and pad CJK emphasis in Markdown.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  fix          Rewrite Markdown documents")
	fmt.Fprintln(w, "  check        Report documents that need fixing")
	fmt.Fprintln(w, "  render       Fix a document and render it as HTML")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdfix help <command>' for details on a specific command.")
}

func printFixOptions(w io.Writer) {
	fmt.Fprintln(w, "Fix Options:")
	fmt.Fprintln(w, "      --protect-code        Leave fenced code blocks untouched")
	fmt.Fprintln(w, "      --skip-frontmatter    Leave leading YAML frontmatter untouched")
	fmt.Fprintln(w, "      --normalize-eol       Convert CRLF and CR line endings to LF")
	fmt.Fprintln(w)
}

func printCommonOptions(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file details and timing")
}

// printFixUsage prints usage for the fix command.
func printFixUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdfix fix [paths...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite Markdown documents. With no path, or with '-', reads stdin")
	fmt.Fprintln(w, "and writes the result to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  paths    Markdown files or directories (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -w, --write               Rewrite files in place")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -j, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printFixOptions(w)
	printCommonOptions(w)
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdfix check [paths...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report documents whose content would change under 'mdfix fix'.")
	fmt.Fprintln(w, "Exits with status 4 when at least one document needs fixing.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  paths    Markdown files or directories (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -j, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --no-color            Disable coloured output")
	fmt.Fprintln(w)
	printFixOptions(w)
	printCommonOptions(w)
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdfix render <file|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fix a document and render it as a standalone HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file (default: stdout)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --style <s>           Style name, CSS file path, or inline CSS")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory containing styles/{name}.css")
	fmt.Fprintln(w, "      --title <s>           HTML title (default: file name)")
	fmt.Fprintln(w, "      --lang <s>            HTML lang attribute (default: ja)")
	fmt.Fprintln(w)
	printFixOptions(w)
	printCommonOptions(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "fix":
		printFixUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "render":
		printRenderUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdfix version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdfix help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
