package rulefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	data := []byte(`
# aggregate rules
[[rule]]
condition = "(A + B) > 10 && min(C, D) < 5"

[[rule]]
condition = 'max(E, F, G) > 3 && H == 1'
`)

	rules, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, "(A + B) > 10 && min(C, D) < 5", rules[0].Condition)
	assert.Equal(t, "max(E, F, G) > 3 && H == 1", rules[1].Condition)
	assert.Equal(t, rules[0].UserID, rules[1].UserID)
	assert.NotEqual(t, rules[0].ID, rules[1].ID)
	for _, r := range rules {
		assert.NoError(t, r.Validate())
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	rules, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		data     string
		contains string
		sentinel error
	}{
		{"empty condition", "[[rule]]\ncondition = \"  \"", "rule 1", domain.ErrConditionEmpty},
		{"missing condition", "[[rule]]\ncondition = \"A > 1\"\n[[rule]]\n", "rule 2", domain.ErrConditionEmpty},
		{"too long", "[[rule]]\ncondition = \"" + strings.Repeat("A", domain.MaxConditionLength+1) + "\"", "rule 1", domain.ErrConditionTooLong},
		{"unknown key", "[[rule]]\nconditon = \"A > 1\"", "", nil},
		{"wrong type", "[[rule]]\ncondition = 42", "", nil},
		{"malformed", "[[rule]\ncondition = \"A > 1\"", "line 1", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rules, err := Parse([]byte(tc.data))
			require.Error(t, err)
			assert.Nil(t, rules)
			assert.ErrorIs(t, err, ErrInvalidFile)
			if tc.sentinel != nil {
				assert.ErrorIs(t, err, tc.sentinel)
			}
			if tc.contains != "" {
				assert.Contains(t, err.Error(), tc.contains)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[rule]]\ncondition = \"A > 1\"\n"), 0o600))

	rules, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "A > 1", rules[0].Condition)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
