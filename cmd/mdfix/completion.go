package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdfix/internal/assets"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name       string
	Desc       string
	Flags      []flagDef
	TakesFiles bool     // accepts file arguments
	Args       []string // fixed positional values (shells for completion)
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"config":     {FileGlob: "*.yaml,*.yml,*.toml"},
	"style":      {Values: assets.ListStyles()},
	"lang":       {Values: []string{"ja", "ja-JP", "en", "zh", "ko"}},
	"asset-path": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}
		// -o names a file or a directory.
		if f.Name == "output" {
			fd.Type = flagFile
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the FlagSets the commands parse with.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:       "fix",
			Desc:       "Rewrite Markdown documents",
			Flags:      extractFlagsFromFlagSet(newFixFlagSet(&fixFlags{})),
			TakesFiles: true,
		},
		{
			Name:       "check",
			Desc:       "Report documents that need fixing",
			Flags:      extractFlagsFromFlagSet(newCheckFlagSet(&checkFlags{})),
			TakesFiles: true,
		},
		{
			Name:       "render",
			Desc:       "Fix a document and render it as HTML",
			Flags:      extractFlagsFromFlagSet(newRenderFlagSet(&renderFlags{})),
			TakesFiles: true,
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish)},
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdfix completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(mdfix completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(mdfix completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    mdfix completion fish > ~/.config/fish/completions/mdfix.fish")
}

// commandNames lists command names separated by spaces.
func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// flagWords lists every spelling of the flags, as typed on the command line.
func flagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// globs splits a FileGlob into its patterns.
func globs(pattern string) []string {
	return strings.Split(pattern, ",")
}

func generateBash(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# bash completion for mdfix\n")
	b.WriteString("_mdfix() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", commandNames(cmds))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range cmds {
		if len(c.Flags) == 0 && len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(c.Args, " "))
			b.WriteString("        ;;\n")
			continue
		}

		b.WriteString("        case \"$prev\" in\n")
		for _, f := range c.Flags {
			if f.Type == flagBool {
				continue
			}
			names := "--" + f.Long
			if f.Short != "" {
				names += "|-" + f.Short
			}
			fmt.Fprintf(&b, "        %s)\n", names)
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(f.Values, " "))
			case flagFile:
				if f.FileGlob == "" {
					b.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
				} else {
					for _, g := range globs(f.FileGlob) {
						fmt.Fprintf(&b, "            COMPREPLY+=($(compgen -f -X '!%s' -- \"$cur\"))\n", g)
					}
					b.WriteString("            COMPREPLY+=($(compgen -d -- \"$cur\"))\n")
				}
			case flagDir:
				b.WriteString("            COMPREPLY=($(compgen -d -- \"$cur\"))\n")
			default:
				b.WriteString("            COMPREPLY=()\n")
			}
			b.WriteString("            return\n")
			b.WriteString("            ;;\n")
		}
		b.WriteString("        esac\n")
		b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", flagWords(c.Flags))
		b.WriteString("        else\n")
		b.WriteString("            COMPREPLY=($(compgen -f -X '!*.@(md|markdown)' -- \"$cur\") $(compgen -d -- \"$cur\"))\n")
		b.WriteString("        fi\n")
		b.WriteString("        ;;\n")
	}

	b.WriteString("    help)\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", commandNames(cmds))
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("shopt -s extglob\n")
	b.WriteString("complete -F _mdfix mdfix\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshEscape escapes characters that are special inside _arguments specs.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("#compdef mdfix\n\n")
	b.WriteString("_mdfix() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$words[2]\" in\n")

	for _, c := range cmds {
		if len(c.Flags) == 0 && len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "        _values 'shell' %s\n", strings.Join(c.Args, " "))
			b.WriteString("        ;;\n")
			continue
		}

		b.WriteString("        _arguments \\\n")
		for _, f := range c.Flags {
			action := zshAction(f)
			desc := zshEscape(f.Desc)
			if f.Short != "" {
				fmt.Fprintf(&b, "            '(-%s --%s)'{-%s,--%s}'[%s]%s' \\\n", f.Short, f.Long, f.Short, f.Long, desc, action)
			} else {
				fmt.Fprintf(&b, "            '--%s[%s]%s' \\\n", f.Long, desc, action)
			}
		}
		b.WriteString("            '*:markdown file:_files -g \"*.(md|markdown)\"'\n")
		b.WriteString("        ;;\n")
	}

	b.WriteString("    help)\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _mdfix mdfix\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshAction returns the value completion suffix for an _arguments spec.
func zshAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		if f.FileGlob == "" {
			return ":file:_files"
		}
		exts := make([]string, 0, len(globs(f.FileGlob)))
		for _, g := range globs(f.FileGlob) {
			exts = append(exts, strings.TrimPrefix(g, "*."))
		}
		return fmt.Sprintf(":file:_files -g \"*.(%s)\"", strings.Join(exts, "|"))
	case flagDir:
		return ":directory:_files -/"
	default:
		return ":" + f.Long + ":"
	}
}

func generateFish(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# fish completion for mdfix\n")
	b.WriteString("complete -c mdfix -f\n\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c mdfix -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	b.WriteString("\n")

	for _, c := range cmds {
		cond := fmt.Sprintf("__fish_seen_subcommand_from %s", c.Name)
		for _, a := range c.Args {
			fmt.Fprintf(&b, "complete -c mdfix -n '%s' -a %s\n", cond, a)
		}
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c mdfix -n '%s' -l %s", cond, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			switch f.Type {
			case flagBool:
			case flagEnum:
				fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				b.WriteString(" -r -F")
			case flagDir:
				b.WriteString(" -x -a '(__fish_complete_directories)'")
			default:
				b.WriteString(" -x")
			}
			fmt.Fprintf(&b, " -d '%s'\n", fishEscape(f.Desc))
		}
		if c.TakesFiles {
			fmt.Fprintf(&b, "complete -c mdfix -n '%s' -F\n", cond)
		}
	}

	fmt.Fprintf(&b, "complete -c mdfix -n '__fish_seen_subcommand_from help' -a '%s'\n", commandNames(cmds))

	_, err := io.WriteString(w, b.String())
	return err
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
