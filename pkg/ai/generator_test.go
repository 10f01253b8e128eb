package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratorRequiresKey(t *testing.T) {
	_, err := NewGenerator("", "gpt-4o-mini")
	assert.Error(t, err)

	gen, err := NewGenerator("sk-test", "")
	require.NoError(t, err)
	assert.NotNil(t, gen)
}

func TestParsePRContent(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantTitle string
		wantBody  string
		wantErr   bool
	}{
		{
			name:      "well formed",
			content:   "TITLE: Add bounds check\nBODY:\nThis fixes the crash.",
			wantTitle: "Add bounds check",
			wantBody:  "This fixes the crash.",
		},
		{
			name:      "extra whitespace",
			content:   "  TITLE:   Tidy parser  \nBODY:\n\nMulti\nline body\n",
			wantTitle: "Tidy parser",
			wantBody:  "Multi\nline body",
		},
		{
			name:    "missing title",
			content: "BODY:\nno title here",
			wantErr: true,
		},
		{
			name:    "missing body",
			content: "TITLE: lonely title",
			wantErr: true,
		},
		{
			name:    "empty response",
			content: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body, err := parsePRContent(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
