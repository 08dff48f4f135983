package model

import "testing"

func TestIsValidContentKind(t *testing.T) {
	tests := []struct {
		name string
		kind string
		want bool
	}{
		{
			name: "text",
			kind: ContentKindText,
			want: true,
		},
		{
			name: "richtext",
			kind: ContentKindRichText,
			want: true,
		},
		{
			name: "image",
			kind: ContentKindImage,
			want: true,
		},
		{
			name: "json",
			kind: ContentKindJSON,
			want: true,
		},
		{
			name: "unknown kind",
			kind: "markdown",
			want: false,
		},
		{
			name: "empty kind",
			kind: "",
			want: false,
		},
		{
			name: "uppercase variant",
			kind: "Text",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidContentKind(tt.kind); got != tt.want {
				t.Errorf("IsValidContentKind(%q) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}
