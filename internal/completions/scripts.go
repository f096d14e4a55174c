package completions

import (
	"fmt"
	"io"
	"strings"
)

// CompleteFlag is the flag the scripts pass the partial line to.
const CompleteFlag = "--complete"

const bashScript = `# bash completion for {{bin}}
_{{fn}}_complete() {
    local line="${COMP_LINE:0:$COMP_POINT}"
    line="${line#* }"
    local IFS=$'\n'
    COMPREPLY=($({{bin}} ` + CompleteFlag + ` "$line" 2>/dev/null))
}
complete -o default -F _{{fn}}_complete {{bin}}
`

const zshScript = `#compdef {{bin}}
# zsh completion for {{bin}}
_{{fn}}() {
    local line="${BUFFER[1,CURSOR]}"
    line="${line#* }"
    local -a candidates
    candidates=("${(@f)$({{bin}} ` + CompleteFlag + ` "$line" 2>/dev/null)}")
    compadd -Q -- ${candidates:#}
}
compdef _{{fn}} {{bin}}
`

const fishScript = `# fish completion for {{bin}}
function __{{fn}}_complete
    set -l line (commandline -cp)
    {{bin}} ` + CompleteFlag + ` (string replace -r '^\S+\s*' '' -- $line) 2>/dev/null
end
complete -c {{bin}} -f -a '(__{{fn}}_complete)'
`

// Script returns the completion script of shell for the binary bin.
func Script(shell Shell, bin string) (string, error) {
	var tmpl string
	switch shell {
	case ShellBash:
		tmpl = bashScript
	case ShellZsh:
		tmpl = zshScript
	case ShellFish:
		tmpl = fishScript
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}

	r := strings.NewReplacer("{{bin}}", bin, "{{fn}}", functionName(bin))
	return r.Replace(tmpl), nil
}

// Print writes the completion script of shell to w.
func Print(w io.Writer, shell Shell, bin string) error {
	script, err := Script(shell, bin)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, script)
	return err
}

// functionName turns a binary name into a shell identifier.
func functionName(bin string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, bin)
}
