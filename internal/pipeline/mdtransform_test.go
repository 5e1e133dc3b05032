package pipeline

import "testing"

func TestStrongRenderer_RenderInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bold at start",
			input: "**bold** text",
			want:  "<strong>bold</strong> text",
		},
		{
			name:  "multiple spans are matched non-greedily",
			input: "a **b** c **d**",
			want:  "a <strong>b</strong> c <strong>d</strong>",
		},
		{
			name:  "opening clue label",
			input: "**Opening Clue:** the treaty",
			want:  "<strong>Opening Clue:</strong> the treaty",
		},
		{
			name:  "unclosed span passes through",
			input: "**open ended",
			want:  "**open ended",
		},
		{
			name:  "single asterisk emphasis passes through",
			input: "*em* and _em_",
			want:  "*em* and _em_",
		},
		{
			name:  "year heading passes through",
			input: "### 1776 war",
			want:  "### 1776 war",
		},
		{
			name:  "raw html passes through",
			input: "a <b>c</b> & d",
			want:  "a <b>c</b> & d",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	r := &StrongRenderer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := r.RenderInline(tt.input); got != tt.want {
				t.Errorf("RenderInline(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
