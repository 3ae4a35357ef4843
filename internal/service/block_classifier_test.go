package service

import (
	"reflect"
	"strings"
	"testing"

	"skillforge_backend/internal/model"
)

func TestClassifySection(t *testing.T) {
	cases := []struct {
		title    string
		position int
		want     model.Section
	}{
		{"Worked Example", 3, model.SectionPractice},
		{"A Practical Walkthrough", 5, model.SectionPractice},
		{"Next Steps", 4, model.SectionClosure},
		{"Conclusion", 9, model.SectionClosure},
		{"Overview", 0, model.SectionIntroduction},
		{"Deep Dive", 2, model.SectionContent},
		// keyword rules win over position
		{"Example First", 0, model.SectionPractice},
		{"conclusion and next steps", 0, model.SectionClosure},
	}

	for _, tc := range cases {
		got := classifySection(tc.title, tc.position)
		if got != tc.want {
			t.Errorf("classifySection(%q, %d) = %q, want %q", tc.title, tc.position, got, tc.want)
		}
	}
}

func TestClassifyType(t *testing.T) {
	cases := []struct {
		fragment string
		want     model.BlockType
	}{
		{"<pre><code>npm install</code></pre>", model.BlockCode},
		{"<pre class=\"hl\"><code>x := 1</code></pre>", model.BlockCode},
		{"<PRE><CODE>loud</CODE></PRE>", model.BlockCode},
		{"<table><tr><td>a</td></tr></table>", model.BlockInteractive},
		{"<p>plain prose</p>", model.BlockText},
		{"", model.BlockText},
		// a bare <code> without <pre> is inline, not a code block
		{"<p>use <code>ls</code></p>", model.BlockText},
	}

	for _, tc := range cases {
		got := classifyType(tc.fragment)
		if got != tc.want {
			t.Errorf("classifyType(%q) = %q, want %q", tc.fragment, got, tc.want)
		}
	}
}

func TestEstimateMinutesFloor(t *testing.T) {
	cases := []struct {
		length int
		want   int
	}{
		{0, 2},
		{1, 2},
		{500, 2},
		{999, 2},
		{1001, 3},
		{2500, 5},
		{2501, 6},
	}

	for _, tc := range cases {
		got := estimateMinutes(tc.length)
		if got != tc.want {
			t.Errorf("estimateMinutes(%d) = %d, want %d", tc.length, got, tc.want)
		}
		if got < minBlockMinutes {
			t.Errorf("estimateMinutes(%d) = %d, below floor", tc.length, got)
		}
	}
}

func TestDeriveTags(t *testing.T) {
	cases := []struct {
		name       string
		lessonName string
		title      string
		content    string
		want       []string
	}{
		{
			name:       "installation via npm install",
			lessonName: "Setup",
			title:      "Setup",
			content:    "<pre><code>npm install foo</code></pre>",
			want:       []string{"installation"},
		},
		{
			name:       "getting started",
			lessonName: "Getting Started with SkillForge",
			title:      "Welcome",
			content:    "<p>hello</p>",
			want:       []string{"beginner", "tutorial"},
		},
		{
			name:       "command contributes both vocab entries without duplicates",
			lessonName: "CLI Basics",
			title:      "Useful Commands",
			content:    "<p>open your terminal</p>",
			want:       []string{"commands", "cli"},
		},
		{
			name:       "agents and swarm collapse to one tag",
			lessonName: "Swarm Coordination",
			title:      "Agent Topologies",
			content:    "<p>spawn agents</p>",
			want:       []string{"agents"},
		},
		{
			name:       "claude flow and hive",
			lessonName: "Claude Flow Hive Mind",
			title:      "Intro",
			content:    "",
			want:       []string{"claude-flow", "hive-mind"},
		},
		{
			name:       "no vocabulary match",
			lessonName: "Misc",
			title:      "Misc",
			content:    "<p>nothing of note</p>",
			want:       nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := deriveTags(tc.lessonName, tc.title, tc.content)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("deriveTags = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyFragmentReusability(t *testing.T) {
	code := ClassifyFragment("<pre><code>x</code></pre>", "Setup", 2, "L")
	if !code.IsReusable {
		t.Errorf("code block should be reusable")
	}

	example := ClassifyFragment("<p>prose</p>", "An Example Walk", 2, "L")
	if !example.IsReusable {
		t.Errorf("example-titled block should be reusable")
	}

	plain := ClassifyFragment("<p>prose</p>", "Theory", 2, "L")
	if plain.IsReusable {
		t.Errorf("plain text block should not be reusable")
	}
}

func TestClassifyFragmentDeterministic(t *testing.T) {
	fragment := "<h2>ignored</h2><pre><code>npm install claude-flow</code></pre>" + strings.Repeat("<p>x</p>", 40)

	first := ClassifyFragment(fragment, "Example Setup", 3, "Getting Started")
	for i := 0; i < 5; i++ {
		again := ClassifyFragment(fragment, "Example Setup", 3, "Getting Started")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
		}
	}
}

func TestClassifyFragmentDefaults(t *testing.T) {
	draft := ClassifyFragment("", "Untitled", 7, "Lesson")
	if draft.Type != model.BlockText {
		t.Errorf("default type = %q, want text", draft.Type)
	}
	if draft.Section != model.SectionContent {
		t.Errorf("default section = %q, want content", draft.Section)
	}
	if draft.EstimatedTimeMinutes != 2 {
		t.Errorf("empty fragment minutes = %d, want 2", draft.EstimatedTimeMinutes)
	}
	if len(draft.Tags) != 0 {
		t.Errorf("unexpected tags %v", draft.Tags)
	}
}
