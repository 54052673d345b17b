package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go template
// {{.VAR_NAME}} syntax. The $ character is never special, so DSNs, regex
// patterns, and password hashes containing $ pass through untouched (bcrypt
// hashes start with $2a$).
//
// Examples:
//   - dsn: {{.DATABASE_URL}}
//   - secret: {{.STEWARD_AUTH_SECRET}}
//   - command: ["{{.SHIM_BIN}}", "--workdir", "{{.SHIM_WORKDIR}}"]
//
// Missing variables expand to empty string; validation catches required
// fields that end up empty. Malformed template syntax returns the input
// unchanged so the YAML parser can report it (or accept it as a literal).
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("steward").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			env[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}

	return buf.Bytes()
}
