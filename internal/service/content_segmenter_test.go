package service

import (
	"strings"
	"testing"

	"skillforge_backend/internal/model"
)

func TestSegmentLessonNoHeadings(t *testing.T) {
	drafts := SegmentLesson("<p>Hello world</p>", "Intro")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	d := drafts[0]
	if d.Title != "Intro" {
		t.Errorf("title = %q, want Intro", d.Title)
	}
	if d.Section != model.SectionIntroduction {
		t.Errorf("section = %q, want introduction", d.Section)
	}
	if d.Type != model.BlockText {
		t.Errorf("type = %q, want text", d.Type)
	}
	if d.OrderIndex != 0 {
		t.Errorf("orderIndex = %d, want 0", d.OrderIndex)
	}
	if d.Content != "<p>Hello world</p>" {
		t.Errorf("content = %q, want original document", d.Content)
	}
}

func TestSegmentLessonSingleCodeHeavyFragment(t *testing.T) {
	drafts := SegmentLesson("<h2>Setup</h2><pre><code>npm install foo</code></pre>", "CLI Lesson")

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	d := drafts[0]
	if d.Title != "Setup" {
		t.Errorf("title = %q, want Setup", d.Title)
	}
	if d.Type != model.BlockCode {
		t.Errorf("type = %q, want code", d.Type)
	}
	// title has no practice/closure keyword and the block does not sit at
	// position 0, so it lands in the content section
	if d.Section != model.SectionContent {
		t.Errorf("section = %q, want content", d.Section)
	}
	found := false
	for _, tag := range d.Tags {
		if tag == "installation" {
			found = true
		}
	}
	if !found {
		t.Errorf("tags = %v, want installation present", d.Tags)
	}
}

func TestSegmentLessonHeadingOrder(t *testing.T) {
	src := `<h1>Overview</h1><p>first</p>` +
		`<h2>Usage Example</h2><pre><code>run it</code></pre>` +
		`<h2>Conclusion</h2><p>bye</p>`

	drafts := SegmentLesson(src, "Guide")

	if len(drafts) != 3 {
		t.Fatalf("expected 3 drafts, got %d", len(drafts))
	}

	titles := []string{"Overview", "Usage Example", "Conclusion"}
	sections := []model.Section{model.SectionContent, model.SectionPractice, model.SectionClosure}
	for i, d := range drafts {
		if d.Title != titles[i] {
			t.Errorf("draft %d title = %q, want %q", i, d.Title, titles[i])
		}
		if d.Section != sections[i] {
			t.Errorf("draft %d section = %q, want %q", i, d.Section, sections[i])
		}
		if d.OrderIndex != i+1 {
			t.Errorf("draft %d orderIndex = %d, want %d", i, d.OrderIndex, i+1)
		}
	}

	if !strings.Contains(drafts[0].Content, "<p>first</p>") {
		t.Errorf("draft 0 content = %q, want trailing paragraph", drafts[0].Content)
	}
	if !strings.Contains(drafts[1].Content, "<pre><code>run it</code></pre>") {
		t.Errorf("draft 1 content = %q, want code fence", drafts[1].Content)
	}
}

func TestSegmentLessonOrderIndexesIncrease(t *testing.T) {
	src := `<p>lead-in</p><h2>A</h2><p>a</p><h2>B Example</h2><p>b</p><h2>C</h2><p>c</p>`

	drafts := SegmentLesson(src, "Lesson")
	if len(drafts) != 4 {
		t.Fatalf("expected 4 drafts, got %d", len(drafts))
	}

	for i := 1; i < len(drafts); i++ {
		if drafts[i].OrderIndex <= drafts[i-1].OrderIndex {
			t.Fatalf("order indexes not strictly increasing: %d then %d",
				drafts[i-1].OrderIndex, drafts[i].OrderIndex)
		}
	}
}

func TestSegmentLessonPreamble(t *testing.T) {
	src := `<p>Before any heading.</p><h2>Details</h2><p>after</p>`

	drafts := SegmentLesson(src, "My Lesson")
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}

	pre := drafts[0]
	if pre.Title != "My Lesson" {
		t.Errorf("preamble title = %q, want lesson name", pre.Title)
	}
	if pre.Section != model.SectionIntroduction {
		t.Errorf("preamble section = %q, want introduction", pre.Section)
	}
	if pre.OrderIndex != 0 {
		t.Errorf("preamble orderIndex = %d, want 0", pre.OrderIndex)
	}
	if !strings.Contains(pre.Content, "Before any heading.") {
		t.Errorf("preamble content = %q", pre.Content)
	}
}

func TestSegmentLessonHeadingsInsideWrapper(t *testing.T) {
	src := `<div class="lesson"><h2>Inside</h2><p>wrapped</p></div>`

	drafts := SegmentLesson(src, "Wrapped")
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Title != "Inside" {
		t.Errorf("title = %q, want Inside", drafts[0].Title)
	}
	if !strings.Contains(drafts[0].Content, "<p>wrapped</p>") {
		t.Errorf("content = %q", drafts[0].Content)
	}
}

func TestSegmentLessonHeadingTitleStripped(t *testing.T) {
	src := `<h2>Using <code>swarm</code> mode</h2><p>x</p>`

	drafts := SegmentLesson(src, "L")
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Title != "Using swarm mode" {
		t.Errorf("title = %q, want tags stripped", drafts[0].Title)
	}
}
