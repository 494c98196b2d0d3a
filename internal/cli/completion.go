package cli

import (
	"fmt"
)

// CompletionCmd generates shell completions
type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh,fish" help:"Shell type (bash, zsh, fish)"`
}

// Run executes the completion command
func (c *CompletionCmd) Run(globals *Globals) error {
	switch c.Shell {
	case "bash":
		return c.generateBash(globals)
	case "zsh":
		return c.generateZsh(globals)
	case "fish":
		return c.generateFish(globals)
	default:
		return fmt.Errorf("unsupported shell: %s", c.Shell)
	}
}

func (c *CompletionCmd) generateBash(globals *Globals) error {
	script := `# relmeta bash completion script
# Add to ~/.bashrc or ~/.bash_profile:
#   eval "$(relmeta completion bash)"

_relmeta_completions() {
    local cur prev words cword
    _init_completion || return

    local commands="sync history latest check schema config ui version completion"
    local global_flags="-f --format -q --quiet -v --verbose"

    case "${prev}" in
        relmeta)
            COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
            return
            ;;
        -f|--format)
            COMPREPLY=($(compgen -W "ndjson text" -- "${cur}"))
            return
            ;;
        --manifest|--versions)
            _filedir json
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "${cur}"))
            return
            ;;
    esac

    case "${words[1]}" in
        sync)
            COMPREPLY=($(compgen -W "--manifest --versions --version --min-app-version --record-every-release --dry-run ${global_flags}" -- "${cur}"))
            ;;
        history)
            COMPREPLY=($(compgen -W "--versions -t --table ${global_flags}" -- "${cur}"))
            ;;
        latest|ui)
            COMPREPLY=($(compgen -W "--versions ${global_flags}" -- "${cur}"))
            ;;
        check)
            COMPREPLY=($(compgen -W "--manifest --versions ${global_flags}" -- "${cur}"))
            ;;
        schema)
            COMPREPLY=($(compgen -W "-t --type ${global_flags}" -- "${cur}"))
            ;;
        *)
            COMPREPLY=($(compgen -W "${commands} ${global_flags}" -- "${cur}"))
            ;;
    esac
}

complete -F _relmeta_completions relmeta
`
	_, err := fmt.Fprint(globals.Stdout, script)
	return err
}

func (c *CompletionCmd) generateZsh(globals *Globals) error {
	script := `#compdef relmeta
# relmeta zsh completion script
# Add to ~/.zshrc:
#   eval "$(relmeta completion zsh)"

_relmeta() {
    local -a commands
    commands=(
        'sync:Apply a release to manifest.json and versions.json'
        'history:List the recorded version history'
        'latest:Show the latest recorded version'
        'check:Validate both metadata files without writing'
        'schema:Output JSON Schema for relmeta documents and output types'
        'config:Show or manage configuration'
        'ui:Interactive version history browser'
        'version:Show version information'
        'completion:Generate shell completions'
    )

    local -a global_opts
    global_opts=(
        '-f[Output format]:format:(ndjson text)'
        '--format[Output format]:format:(ndjson text)'
        '-q[Suppress non-essential output]'
        '--quiet[Suppress non-essential output]'
        '-v[Show debug output]'
        '--verbose[Show debug output]'
    )

    _arguments -C \
        $global_opts \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                sync)
                    _arguments \
                        '--manifest[Path to manifest.json]:file:_files -g "*.json"' \
                        '--versions[Path to versions.json]:file:_files -g "*.json"' \
                        '--version[Plugin release version]:version:' \
                        '--min-app-version[Optional minAppVersion override]:version:' \
                        '--record-every-release[Always record an entry]' \
                        '--dry-run[Report without writing]' \
                        $global_opts
                    ;;
                history)
                    _arguments \
                        '--versions[Path to versions.json]:file:_files -g "*.json"' \
                        '-t[Render as an ASCII table]' \
                        '--table[Render as an ASCII table]' \
                        $global_opts
                    ;;
                latest|ui)
                    _arguments \
                        '--versions[Path to versions.json]:file:_files -g "*.json"' \
                        $global_opts
                    ;;
                check)
                    _arguments \
                        '--manifest[Path to manifest.json]:file:_files -g "*.json"' \
                        '--versions[Path to versions.json]:file:_files -g "*.json"' \
                        $global_opts
                    ;;
                completion)
                    _arguments '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

compdef _relmeta relmeta
`
	_, err := fmt.Fprint(globals.Stdout, script)
	return err
}

func (c *CompletionCmd) generateFish(globals *Globals) error {
	script := `# relmeta fish completion script
# Add to ~/.config/fish/completions/relmeta.fish

# Disable file completion by default
complete -c relmeta -f

# Commands
complete -c relmeta -n "__fish_use_subcommand" -a "sync" -d "Apply a release to manifest.json and versions.json"
complete -c relmeta -n "__fish_use_subcommand" -a "history" -d "List the recorded version history"
complete -c relmeta -n "__fish_use_subcommand" -a "latest" -d "Show the latest recorded version"
complete -c relmeta -n "__fish_use_subcommand" -a "check" -d "Validate both metadata files without writing"
complete -c relmeta -n "__fish_use_subcommand" -a "schema" -d "Output JSON Schema for relmeta documents and output types"
complete -c relmeta -n "__fish_use_subcommand" -a "config" -d "Show or manage configuration"
complete -c relmeta -n "__fish_use_subcommand" -a "ui" -d "Interactive version history browser"
complete -c relmeta -n "__fish_use_subcommand" -a "version" -d "Show version information"
complete -c relmeta -n "__fish_use_subcommand" -a "completion" -d "Generate shell completions"

# Global flags
complete -c relmeta -s f -l format -x -a "ndjson text" -d "Output format"
complete -c relmeta -s q -l quiet -d "Suppress non-essential output"
complete -c relmeta -s v -l verbose -d "Show debug output"

# sync flags
complete -c relmeta -n "__fish_seen_subcommand_from sync" -l manifest -r -d "Path to manifest.json"
complete -c relmeta -n "__fish_seen_subcommand_from sync" -l versions -r -d "Path to versions.json"
complete -c relmeta -n "__fish_seen_subcommand_from sync" -l version -x -d "Plugin release version"
complete -c relmeta -n "__fish_seen_subcommand_from sync" -l min-app-version -x -d "Optional minAppVersion override"
complete -c relmeta -n "__fish_seen_subcommand_from sync" -l record-every-release -d "Always record an entry"
complete -c relmeta -n "__fish_seen_subcommand_from sync" -l dry-run -d "Report without writing"

# history flags
complete -c relmeta -n "__fish_seen_subcommand_from history" -l versions -r -d "Path to versions.json"
complete -c relmeta -n "__fish_seen_subcommand_from history" -s t -l table -d "Render as an ASCII table"

# check flags
complete -c relmeta -n "__fish_seen_subcommand_from check" -l manifest -r -d "Path to manifest.json"
complete -c relmeta -n "__fish_seen_subcommand_from check" -l versions -r -d "Path to versions.json"

# completion shells
complete -c relmeta -n "__fish_seen_subcommand_from completion" -x -a "bash zsh fish"
`
	_, err := fmt.Fprint(globals.Stdout, script)
	return err
}
