package service

import (
	"encoding/json"
	"testing"

	"skillforge_backend/internal/model"
)

func TestDraftToBlock(t *testing.T) {
	draft := BlockDraft{
		Title:                "Setup",
		Content:              "<pre><code>npm install</code></pre>",
		Type:                 model.BlockCode,
		Section:              model.SectionContent,
		EstimatedTimeMinutes: 2,
		Tags:                 []string{"installation"},
		IsReusable:           true,
		OrderIndex:           1,
	}

	block := draftToBlock(draft)

	if block.Status != "published" {
		t.Errorf("status = %q, want published", block.Status)
	}
	if block.Type != model.BlockCode {
		t.Errorf("type = %q, want code", block.Type)
	}
	if !block.IsReusable {
		t.Errorf("expected reusable")
	}

	var payload model.BlockPayload
	if err := json.Unmarshal(block.Content, &payload); err != nil {
		t.Fatalf("payload unmarshal: %v", err)
	}
	if payload.Format != "html" {
		t.Errorf("payload format = %q, want html", payload.Format)
	}
	if payload.Content != draft.Content {
		t.Errorf("payload content = %q", payload.Content)
	}

	var tags []string
	if err := json.Unmarshal(block.Tags, &tags); err != nil {
		t.Fatalf("tags unmarshal: %v", err)
	}
	if len(tags) != 1 || tags[0] != "installation" {
		t.Errorf("tags = %v", tags)
	}
}

func TestDraftToBlockNilTags(t *testing.T) {
	block := draftToBlock(BlockDraft{Title: "T", Type: model.BlockText, EstimatedTimeMinutes: 2})

	// nil tags must serialize as an empty array, not null
	if string(block.Tags) != "[]" {
		t.Errorf("tags column = %s, want []", block.Tags)
	}
}

func TestMigrationSummaryMergeAndAverage(t *testing.T) {
	var summary MigrationSummary
	summary.Candidates = 3

	summary.merge(MigrationSummary{Migrated: 1, BlocksCreated: 4, TotalMinutes: 10})
	summary.merge(MigrationSummary{Failed: 1})
	summary.merge(MigrationSummary{Migrated: 1, BlocksCreated: 2, TotalMinutes: 5})

	if summary.Migrated != 2 || summary.Failed != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.BlocksCreated != 6 {
		t.Errorf("blocksCreated = %d, want 6", summary.BlocksCreated)
	}
	if summary.TotalMinutes != 15 {
		t.Errorf("totalMinutes = %d, want 15", summary.TotalMinutes)
	}
	if got := summary.AverageBlocks(); got != 3 {
		t.Errorf("averageBlocks = %f, want 3", got)
	}
}

func TestMigrationSummaryAverageWithNoMigrations(t *testing.T) {
	var summary MigrationSummary
	if got := summary.AverageBlocks(); got != 0 {
		t.Errorf("averageBlocks = %f, want 0", got)
	}
}
