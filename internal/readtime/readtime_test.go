package readtime

import (
	"strings"
	"testing"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty content rounds up to one minute",
			content: "",
			want:    "1 min read",
		},
		{
			name:    "single word",
			content: "hello",
			want:    "1 min read",
		},
		{
			name:    "exactly 200 words",
			content: strings.Repeat("word ", 200),
			want:    "1 min read",
		},
		{
			name:    "201 words rounds up",
			content: strings.Repeat("word ", 201),
			want:    "2 min read",
		},
		{
			name:    "exactly 400 words",
			content: strings.Repeat("word ", 400),
			want:    "2 min read",
		},
		{
			name:    "1000 words",
			content: strings.Repeat("word ", 1000),
			want:    "5 min read",
		},
		{
			name:    "whitespace only counts as empty",
			content: "   \n\t  ",
			want:    "1 min read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Estimate(tt.content); got != tt.want {
				t.Errorf("Estimate(%d words) = %q, want %q",
					len(strings.Fields(tt.content)), got, tt.want)
			}
		})
	}
}
