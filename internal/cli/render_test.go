package cli

import "testing"

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips bold markers",
			in:   "This is **important** text",
			want: "This is important text",
		},
		{
			name: "normalizes code fences",
			in:   "Use this:\n```go\nfmt.Println(\"hi\")\n```",
			want: "Use this:\n```\ngo\nfmt.Println(\"hi\")\n```",
		},
		{
			name: "trims surrounding whitespace",
			in:   "  answer  \n",
			want: "answer",
		},
		{
			name: "plain text untouched",
			in:   "nothing to do here",
			want: "nothing to do here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanResponse(tt.in); got != tt.want {
				t.Errorf("cleanResponse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
