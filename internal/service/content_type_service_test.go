package service

import (
	"strings"
	"testing"
)

func TestCodePercentageEmpty(t *testing.T) {
	if got := codePercentage(""); got != 0 {
		t.Errorf("codePercentage(\"\") = %f, want 0", got)
	}
}

func TestCodePercentageAllCode(t *testing.T) {
	content := "<pre><code>npm install foo\nnpx foo init</code></pre>"
	if got := codePercentage(content); got != 100 {
		t.Errorf("codePercentage = %f, want 100", got)
	}
}

func TestCodePercentageNoCode(t *testing.T) {
	content := "<p>prose only, with inline <code>bits</code> that do not count</p>"
	if got := codePercentage(content); got != 0 {
		t.Errorf("codePercentage = %f, want 0", got)
	}
}

func TestCodePercentageMostlyProse(t *testing.T) {
	// ~500 characters of prose plus one small snippet: well under the
	// threshold, so a block like this must be reclassified to text
	prose := "<p>" + strings.Repeat("words and more words. ", 23) + "</p>"
	snippet := "<pre><code>npm i</code></pre>"
	content := prose + snippet

	got := codePercentage(content)
	if got <= 0 {
		t.Fatalf("codePercentage = %f, want > 0", got)
	}
	if got >= codeRatioThreshold {
		t.Fatalf("codePercentage = %f, want below threshold %f", got, codeRatioThreshold)
	}

	want := float64(len(snippet)) / float64(len(content)) * 100
	if diff := got - want; diff > 0.0001 || diff < -0.0001 {
		t.Errorf("codePercentage = %f, want %f", got, want)
	}
}

func TestCodePercentageMultipleSnippets(t *testing.T) {
	a := "<pre><code>first</code></pre>"
	b := "<pre><code>second snippet</code></pre>"
	content := a + "<p>x</p>" + b

	want := float64(len(a)+len(b)) / float64(len(content)) * 100
	got := codePercentage(content)
	if diff := got - want; diff > 0.0001 || diff < -0.0001 {
		t.Errorf("codePercentage = %f, want %f", got, want)
	}
}

func TestCodePercentageStableUnderRepeat(t *testing.T) {
	// the corrector only flips code→text, and codePercentage does not
	// depend on the stored type, so a second pass computes the same
	// ratios and changes nothing
	content := "<p>prose</p><pre><code>x</code></pre>"
	first := codePercentage(content)
	second := codePercentage(content)
	if first != second {
		t.Errorf("codePercentage unstable: %f then %f", first, second)
	}
}
