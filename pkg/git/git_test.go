package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlug(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "ssh url",
			url:  "git@github.com:ksysoev/gait.git",
			want: "ksysoev/gait",
		},
		{
			name: "https url",
			url:  "https://github.com/ksysoev/gait.git",
			want: "ksysoev/gait",
		},
		{
			name: "https url without suffix",
			url:  "https://github.com/ksysoev/gait",
			want: "ksysoev/gait",
		},
		{
			name: "trailing newline",
			url:  "git@github.com:ksysoev/gait.git\n",
			want: "ksysoev/gait",
		},
		{
			name:    "not a remote url",
			url:     "gait",
			wantErr: true,
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSlug(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
