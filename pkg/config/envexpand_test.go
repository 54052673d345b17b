package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "dsn: {{.DATABASE_URL}}",
			env:   map[string]string{"DATABASE_URL": "postgres://steward@db/steward"},
			want:  "dsn: postgres://steward@db/steward",
		},
		{
			name:  "auth secret from environment",
			input: "secret: {{.STEWARD_AUTH_SECRET}}",
			env:   map[string]string{"STEWARD_AUTH_SECRET": "hunter2"},
			want:  "secret: hunter2",
		},
		{
			name:  "variables in a command array",
			input: `command: ["{{.SHIM_BIN}}", "--workdir", "{{.SHIM_WORKDIR}}"]`,
			env: map[string]string{
				"SHIM_BIN":     "/usr/local/bin/agent-shim",
				"SHIM_WORKDIR": "/var/lib/steward",
			},
			want: `command: ["/usr/local/bin/agent-shim", "--workdir", "/var/lib/steward"]`,
		},
		{
			name:  "missing variable expands to empty",
			input: "secret: {{.NOT_SET_ANYWHERE}}",
			env:   map[string]string{},
			want:  "secret: ",
		},
		{
			name:  "mixed present and missing variables",
			input: "backend_url: http://{{.STEWARD_HOST}}:{{.MISSING_PORT}}",
			env:   map[string]string{"STEWARD_HOST": "10.0.0.5"},
			want:  "backend_url: http://10.0.0.5:",
		},
		{
			name:  "bcrypt hash with dollar signs is untouched",
			input: `password_hash: "$2a$10$N9qo8uLOickgx2ZMRZoMye"`,
			env:   map[string]string{},
			want:  `password_hash: "$2a$10$N9qo8uLOickgx2ZMRZoMye"`,
		},
		{
			name:  "literal ${VAR} is not shell-expanded",
			input: "path: ${HOME}/steward",
			env:   map[string]string{"HOME": "/root"},
			want:  "path: ${HOME}/steward",
		},
		{
			name:  "no substitution when no variables",
			input: "initial_mode: adaptive",
			env:   map[string]string{"UNUSED": "value"},
			want:  "initial_mode: adaptive",
		},
		{
			name:  "multiline YAML with several variables",
			input: "database:\n  driver: postgres\n  dsn: {{.DB_DSN}}\nauth:\n  secret: {{.SECRET}}",
			env: map[string]string{
				"DB_DSN": "postgres://localhost/steward",
				"SECRET": "s3cret",
			},
			want: "database:\n  driver: postgres\n  dsn: postgres://localhost/steward\nauth:\n  secret: s3cret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

// Malformed template syntax passes through unchanged so the YAML parser can
// handle the content or fail with a clearer error message.
func TestExpandEnvMalformedTemplates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unclosed template",
			input: "secret: {{.STEWARD_AUTH_SECRET",
		},
		{
			name:  "single closing brace",
			input: "dsn: {{.DATABASE_URL}",
		},
		{
			name:  "empty template",
			input: "dsn: {{}}",
		},
		{
			name:  "undefined function",
			input: "dsn: {{.DATABASE_URL | upper}}",
		},
		{
			name:  "unclosed template surrounded by valid YAML",
			input: "host: localhost\nsecret: {{.STEWARD_AUTH_SECRET\nport: 8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STEWARD_AUTH_SECRET", "should-not-appear")
			t.Setenv("DATABASE_URL", "should-not-appear")

			result := ExpandEnv([]byte(tt.input))

			assert.Equal(t, tt.input, string(result), "malformed template must pass through unchanged")
			assert.NotContains(t, string(result), "should-not-appear")
		})
	}
}

// Expansion output feeds yaml.Unmarshal directly; verify the round trip into
// the raw config struct.
func TestExpandEnvIntoStewardYAML(t *testing.T) {
	t.Setenv("TEST_DSN", "postgres://steward:pw@db:5432/steward")

	input := []byte(`
database:
  driver: postgres
  dsn: "{{.TEST_DSN}}"
`)

	var raw StewardYAMLConfig
	err := yaml.Unmarshal(ExpandEnv(input), &raw)

	require.NoError(t, err)
	require.NotNil(t, raw.Database)
	assert.Equal(t, "postgres://steward:pw@db:5432/steward", raw.Database.DSN)
}

func TestExpandEnvConcurrent(t *testing.T) {
	t.Setenv("TEST_VAR", "value")
	input := []byte("key: {{.TEST_VAR}}")

	const goroutines = 50
	results := make([]string, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			results[idx] = string(ExpandEnv(input))
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "key: value", r)
	}
}
