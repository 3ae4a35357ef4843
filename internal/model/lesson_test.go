package model

import "testing"

func TestLessonHTMLContent(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"wrapped html", `{"html":"<p>hi</p>"}`, "<p>hi</p>"},
		{"json string", `"<p>bare</p>"`, "<p>bare</p>"},
		{"raw text", `plain text lesson`, "plain text lesson"},
		{"empty", ``, ""},
		{"wrapper with empty html falls back to raw", `{"html":""}`, `{"html":""}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lesson := Lesson{Content: []byte(tc.content)}
			if got := lesson.HTMLContent(); got != tc.want {
				t.Errorf("HTMLContent() = %q, want %q", got, tc.want)
			}
		})
	}
}
