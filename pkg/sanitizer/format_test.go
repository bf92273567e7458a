package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbrandao/authkit/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases and trims", "  Alice@Example.COM ", "alice@example.com"},
		{"collapses consecutive dots", "a..lice@example.com", "a.lice@example.com"},
		{"strips leading and trailing dots", ".alice.@example.com", "alice@example.com"},
		{"leaves invalid shapes alone", "not-an-email", "not-an-email"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestNormalizeLogin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "alice1", sanitizer.NormalizeLogin("  Alice1 "))
	assert.Equal(t, "", sanitizer.NormalizeLogin("   "))
}

func TestTrimField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Engineering", sanitizer.TrimField("  Engineering "))
}
