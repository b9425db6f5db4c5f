package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "basic title with punctuation",
			title: "Hello World!",
			want:  "hello-world",
		},
		{
			name:  "surrounding and internal whitespace",
			title: "  Multiple   Spaces  ",
			want:  "multiple-spaces",
		},
		{
			name:  "only hyphens",
			title: "---",
			want:  "",
		},
		{
			name:  "only punctuation",
			title: "!!! ??? ...",
			want:  "",
		},
		{
			name:  "mixed case with numbers",
			title: "10 Things I Learned in 2024",
			want:  "10-things-i-learned-in-2024",
		},
		{
			name:  "underscores survive",
			title: "snake_case title",
			want:  "snake_case-title",
		},
		{
			name:  "consecutive separators collapse",
			title: "a -- b --- c",
			want:  "a-b-c",
		},
		{
			name:  "empty input",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Make(tt.title)
			if got != tt.want {
				t.Fatalf("Make(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	titles := []string{
		"Hello World!",
		"  Multiple   Spaces  ",
		"Ünïcode Tïtle",
		"already-a-slug",
	}

	for _, title := range titles {
		once := Make(title)
		twice := Make(once)
		if once != twice {
			t.Fatalf("Make not idempotent for %q: %q != %q", title, once, twice)
		}
	}
}
