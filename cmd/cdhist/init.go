package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/raphi011/cdhist/internal/output"
)

// defaultFuncName is the shell function installed by --init.
const defaultFuncName = "cd"

var posixInit = template.Must(template.New("sh").Parse(`{{.Name}}() {
    local d
    d=$({{.Prog}} "$@")
    local r=$?

    if [ $r -ne 0 ]; then
        return $r
    fi
    if [ -z "$d" ]; then
        return 0
    fi

    builtin cd -- "$d" || return
    {{.Prog}} --record >/dev/null 2>&1
    return 0
}
`))

var fishInit = template.Must(template.New("fish").Parse(`function {{.Name}} --description 'cd with history'
    set -l d ({{.Prog}} $argv)
    or return $status
    test -n "$d"
    or return 0

    builtin cd -- $d
    or return $status
    {{.Prog}} --record >/dev/null 2>&1
    return 0
end
`))

type initParams struct {
	Name string
	Prog string
}

// initCode renders the shell function. funcDef is "NAME [OPTS]"; OPTS are
// passed to every call of prog.
func initCode(funcDef, prog, shell string) (string, error) {
	name, opts, _ := strings.Cut(strings.TrimSpace(funcDef), " ")
	if name == "" {
		name = defaultFuncName
	}
	if opts = strings.TrimSpace(opts); opts != "" {
		prog += " " + opts
	}

	var tmpl *template.Template
	switch shell {
	case "", "sh", "bash", "zsh", "ksh", "dash":
		tmpl = posixInit
	case "fish":
		tmpl = fishInit
	default:
		return "", fmt.Errorf("unsupported shell: %s (supported: sh, bash, zsh, fish)", shell)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, initParams{Name: name, Prog: prog}); err != nil {
		return "", err
	}
	return b.String(), nil
}

func printInit(ctx context.Context, funcDef, shell string) error {
	prog, err := os.Executable()
	if err != nil {
		prog = "cdhist"
	}
	code, err := initCode(funcDef, prog, shell)
	if err != nil {
		return err
	}
	output.FromContext(ctx).Print(code)
	return nil
}
