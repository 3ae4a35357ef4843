package service

import (
	"encoding/json"
	"testing"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/repository"
)

func linked(id string, section model.Section, order, minutes int) repository.LinkedBlock {
	return repository.LinkedBlock{
		Block: model.ContentBlock{
			UUIDBase:             model.UUIDBase{ID: id},
			Title:                "block " + id,
			Type:                 model.BlockText,
			Content:              []byte(`{"format":"html","content":"<p>x</p>"}`),
			EstimatedTimeMinutes: minutes,
		},
		Section:    section,
		OrderIndex: order,
		Required:   true,
	}
}

func TestBuildLessonViewEmptyLesson(t *testing.T) {
	lesson := &model.ModularLesson{ID: 7, Name: "Empty", Type: "modular"}

	view := buildLessonView(lesson, nil, nil)

	if len(view.Sections) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(view.Sections))
	}
	for _, sec := range model.Sections() {
		blocks, ok := view.Sections[sec]
		if !ok {
			t.Errorf("section %q missing", sec)
			continue
		}
		if blocks == nil || len(blocks) != 0 {
			t.Errorf("section %q = %v, want empty slice", sec, blocks)
		}
	}
	if view.Progress.ProgressPercentage != 0 {
		t.Errorf("progress = %f, want 0 for empty lesson", view.Progress.ProgressPercentage)
	}
	if view.EstimatedDurationMinutes != 0 {
		t.Errorf("duration = %d, want 0", view.EstimatedDurationMinutes)
	}
}

func TestBuildLessonViewEmptySectionsSerializeAsArrays(t *testing.T) {
	lesson := &model.ModularLesson{ID: 1, Name: "L", Type: "modular"}
	links := []repository.LinkedBlock{
		linked("a", model.SectionContent, 1, 3),
	}

	view := buildLessonView(lesson, links, nil)

	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Sections map[string]json.RawMessage `json:"sections"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, sec := range []string{"introduction", "practice", "assessment", "closure"} {
		body, ok := decoded.Sections[sec]
		if !ok {
			t.Errorf("section %q omitted from JSON", sec)
			continue
		}
		if string(body) != "[]" {
			t.Errorf("section %q = %s, want []", sec, body)
		}
	}
}

func TestBuildLessonViewOrderWithinSection(t *testing.T) {
	lesson := &model.ModularLesson{ID: 2, Name: "L", Type: "modular"}
	// stored order deliberately shuffled; order indexes are global, so
	// within the content section we expect 2 then 5, not insertion order
	links := []repository.LinkedBlock{
		linked("late", model.SectionContent, 5, 2),
		linked("intro", model.SectionIntroduction, 0, 2),
		linked("early", model.SectionContent, 2, 2),
	}

	view := buildLessonView(lesson, links, nil)

	content := view.Sections[model.SectionContent]
	if len(content) != 2 {
		t.Fatalf("content section has %d blocks, want 2", len(content))
	}
	if content[0].ID != "early" || content[1].ID != "late" {
		t.Errorf("content order = [%s %s], want [early late]", content[0].ID, content[1].ID)
	}

	intro := view.Sections[model.SectionIntroduction]
	if len(intro) != 1 || intro[0].ID != "intro" {
		t.Errorf("introduction section = %v", intro)
	}
}

func TestBuildLessonViewDurationSum(t *testing.T) {
	lesson := &model.ModularLesson{ID: 3, Name: "L", Type: "modular"}
	links := []repository.LinkedBlock{
		linked("a", model.SectionIntroduction, 0, 2),
		linked("b", model.SectionContent, 1, 4),
		linked("c", model.SectionPractice, 2, 7),
	}

	view := buildLessonView(lesson, links, nil)
	if view.EstimatedDurationMinutes != 13 {
		t.Errorf("duration = %d, want 13", view.EstimatedDurationMinutes)
	}
}

func TestBuildLessonViewProgress(t *testing.T) {
	lesson := &model.ModularLesson{ID: 4, Name: "L", Type: "modular"}

	ids := []string{"a", "b", "c", "d"}
	var links []repository.LinkedBlock
	for i, id := range ids {
		links = append(links, linked(id, model.SectionContent, i+1, 2))
	}

	for k := 0; k <= len(ids); k++ {
		completed := map[string]bool{}
		for i := 0; i < k; i++ {
			completed[ids[i]] = true
		}

		view := buildLessonView(lesson, links, completed)

		if view.Progress.TotalBlocks != len(ids) {
			t.Fatalf("k=%d: totalBlocks = %d", k, view.Progress.TotalBlocks)
		}
		if view.Progress.CompletedBlocks != k {
			t.Fatalf("k=%d: completedBlocks = %d", k, view.Progress.CompletedBlocks)
		}
		want := float64(k) / float64(len(ids)) * 100
		if view.Progress.ProgressPercentage != want {
			t.Fatalf("k=%d: percentage = %f, want %f", k, view.Progress.ProgressPercentage, want)
		}
	}
}

func TestBuildLessonViewCompletionFlagsOnBlocks(t *testing.T) {
	lesson := &model.ModularLesson{ID: 5, Name: "L", Type: "modular"}
	links := []repository.LinkedBlock{
		linked("done", model.SectionContent, 1, 2),
		linked("todo", model.SectionContent, 2, 2),
	}

	view := buildLessonView(lesson, links, map[string]bool{"done": true})

	content := view.Sections[model.SectionContent]
	if !content[0].Completed {
		t.Errorf("block %q should be completed", content[0].ID)
	}
	if content[1].Completed {
		t.Errorf("block %q should not be completed", content[1].ID)
	}
}
