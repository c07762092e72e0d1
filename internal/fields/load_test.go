package fields_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/encbox/internal/fields"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want []string
		err  error
	}{
		{"strings", `["alpha", "beta"]`, []string{"alpha", "beta"}, nil},
		{
			"comments and trailing comma",
			"[\n  // user id\n  \"42\",\n  /* name */ \"bob\",\n]",
			[]string{"42", "bob"},
			nil,
		},
		{"numbers keep spelling", `[42, 1.50, 1e3]`, []string{"42", "1.50", "1e3"}, nil},
		{"booleans", `[true, false]`, []string{"true", "false"}, nil},
		{"empty", `[]`, []string{}, nil},
		{"null element", `["a", null]`, nil, fields.ErrUnsupportedField},
		{"object element", `[{"a": 1}]`, nil, fields.ErrUnsupportedField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fields.Parse([]byte(tt.data))
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNotAnArray(t *testing.T) {
	t.Parallel()

	_, err := fields.Parse([]byte(`{"fields": ["a"]}`))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fields.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`["x", 7] // trailing comment`), 0o600))

	got, err := fields.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "7"}, got)

	_, err = fields.Load(filepath.Join(t.TempDir(), "missing.jsonc"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
