package parsing

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "blank", input: "  ", want: ""},
		{name: "absolute", input: "/tmp/out", want: "/tmp/out"},
		{name: "home", input: "~", want: home},
		{name: "under home", input: "~/Videos", want: filepath.Join(home, "Videos")},
		{name: "relative", input: "out", want: filepath.Join(wd, "out")},
		{name: "tilde user left alone", input: "~other", want: filepath.Join(wd, "~other")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandDir(tt.input)
			if err != nil {
				t.Fatalf("ExpandDir(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ExpandDir(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
