package parsing

import "testing"

func TestParseYtdlpDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty", input: "", want: ""},
		{name: "blank", input: "   ", want: ""},
		{name: "yt-dlp format", input: "20240102", want: "20240102"},
		{name: "invalid yt-dlp format", input: "20241340", wantErr: true},
		{name: "iso", input: "2024-01-02", want: "20240102"},
		{name: "slashes", input: "2024/01/02", want: "20240102"},
		{name: "words", input: "January 2, 2024", want: "20240102"},
		{name: "today", input: "today", want: "today"},
		{name: "relative", input: "today-2weeks", want: "today-2weeks"},
		{name: "relative mixed case", input: "Now-1Month", want: "now-1month"},
		{name: "garbage", input: "not a date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseYtdlpDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseYtdlpDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseYtdlpDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHyphenateYyyyMmDd(t *testing.T) {
	tests := map[string]string{
		"20240102":     "2024-01-02",
		"2024-01-02":   "2024-01-02",
		"today-2weeks": "today-2weeks",
		"now+1day":     "now+1day",
		"2024-0102":    "2024-0102",
		"2024":         "2024",
	}

	for in, want := range tests {
		if got := HyphenateYyyyMmDd(in); got != want {
			t.Errorf("HyphenateYyyyMmDd(%q) = %q, want %q", in, got, want)
		}
	}
}
