package testdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTestDatabaseURL(t *testing.T) {
	tests := []struct {
		name     string
		primary  string
		fallback string
		want     string
	}{
		{"none set", "", "", ""},
		{"fallback only", "", "postgres://fallback", "postgres://fallback"},
		{"primary wins", "postgres://primary", "postgres://fallback", "postgres://primary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", tt.primary)
			t.Setenv("RTDC_TEST_DATABASE_URL", tt.fallback)

			assert.Equal(t, tt.want, GetTestDatabaseURL())
			assert.Equal(t, tt.want != "", IsIntegrationTestEnvironment())
		})
	}
}

func TestGetTestDBWithT_SkipsWithoutURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("RTDC_TEST_DATABASE_URL", "")

	skipped := false
	t.Run("inner", func(t *testing.T) {
		defer func() { skipped = t.Skipped() }()
		GetTestDBWithT(t)
	})
	assert.True(t, skipped)
}
