package helper

import (
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	log "github.com/sirupsen/logrus"
)

func ResolveEnv(in string) string {
	if strings.HasPrefix(in, "ENV:") {
		return os.Getenv(in[4:])
	}
	return in
}

func SetDefaultStringIfEmpty(in, defaultValue, field string) string {
	if len(in) == 0 {
		log.Debugf("no %s specified or env variable not found, assuming default %q", field, defaultValue)
		return defaultValue
	}
	return in
}

// ExpandURL renders template actions (with the sprig function map) and then
// expands $VAR and ${VAR} references from the environment. If any referenced
// variable is unset, the environment expansion is skipped and the rendered
// string is returned as is.
func ExpandURL(in string) (string, error) {
	out := in

	if strings.Contains(out, "{{") {
		tpl, err := template.New("url").Funcs(sprig.TxtFuncMap()).Parse(out)
		if err != nil {
			return "", err
		}

		var buf strings.Builder
		if err := tpl.Execute(&buf, nil); err != nil {
			return "", err
		}
		out = buf.String()
	}

	return expandEnv(out), nil
}

func expandEnv(in string) string {
	if !strings.Contains(in, "$") {
		return in
	}

	missing := false
	expanded := os.Expand(in, func(name string) string {
		v, ok := os.LookupEnv(name)
		if !ok {
			missing = true
		}
		return v
	})

	if missing {
		return in
	}
	return expanded
}
