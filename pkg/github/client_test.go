package github

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientSlugValidation(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{name: "valid", slug: "ksysoev/gait"},
		{name: "trimmed", slug: " ksysoev/gait "},
		{name: "missing repo", slug: "ksysoev/", wantErr: true},
		{name: "missing owner", slug: "/gait", wantErr: true},
		{name: "no separator", slug: "gait", wantErr: true},
		{name: "empty", slug: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(context.Background(), "token", tt.slug)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ksysoev", client.owner)
			assert.Equal(t, "gait", client.repo)
		})
	}
}
