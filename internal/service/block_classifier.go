package service

import (
	"regexp"
	"strings"

	"skillforge_backend/internal/model"
)

// BlockDraft is one segmented, classified fragment of a legacy lesson,
// not yet persisted.
type BlockDraft struct {
	Title                string
	Content              string
	Type                 model.BlockType
	Section              model.Section
	EstimatedTimeMinutes int
	Tags                 []string
	IsReusable           bool
	OrderIndex           int
}

const minBlockMinutes = 2

var (
	codeFragmentRe = regexp.MustCompile(`(?is)<pre[^>]*>\s*<code`)
	tableRe        = regexp.MustCompile(`(?i)<table`)
)

// tagRule maps a substring of lesson name + title + content to tags.
type tagRule struct {
	needle string
	tags   []string
}

// Fixed vocabulary, matched case-insensitively. A needle may contribute
// more than one tag and several needles may contribute the same tag; the
// result is de-duplicated.
var tagRules = []tagRule{
	{"claude flow", []string{"claude-flow"}},
	{"hive", []string{"hive-mind"}},
	{"command", []string{"commands"}},
	{"getting started", []string{"beginner", "tutorial"}},
	{"npm install", []string{"installation"}},
	{"installation", []string{"installation"}},
	{"example", []string{"examples"}},
	{"demo", []string{"examples"}},
	{"terminal", []string{"cli", "commands"}},
	{"command", []string{"cli", "commands"}},
	{"agent", []string{"agents"}},
	{"swarm", []string{"agents"}},
}

// ClassifyFragment decides a block's type, target section, time estimate,
// tags and reusability from a single heading-delimited HTML fragment.
// Classification never fails: anything unmatched falls through to the
// defaults (text, content section, empty tags).
func ClassifyFragment(fragment, title string, position int, lessonName string) BlockDraft {
	blockType := classifyType(fragment)

	return BlockDraft{
		Title:                title,
		Content:              fragment,
		Type:                 blockType,
		Section:              classifySection(title, position),
		EstimatedTimeMinutes: estimateMinutes(len(fragment)),
		Tags:                 deriveTags(lessonName, title, fragment),
		IsReusable:           blockType == model.BlockCode || containsFold(title, "example"),
		OrderIndex:           position,
	}
}

// classifySection assigns one of the five lesson phases. Keyword rules
// win over position; first match wins.
func classifySection(title string, position int) model.Section {
	switch {
	case containsFold(title, "example"), containsFold(title, "practical"):
		return model.SectionPractice
	case containsFold(title, "next steps"), containsFold(title, "conclusion"):
		return model.SectionClosure
	case position == 0:
		return model.SectionIntroduction
	default:
		return model.SectionContent
	}
}

func classifyType(fragment string) model.BlockType {
	switch {
	case codeFragmentRe.MatchString(fragment):
		return model.BlockCode
	case tableRe.MatchString(fragment):
		return model.BlockInteractive
	default:
		return model.BlockText
	}
}

// estimateMinutes is a length-proportional reading estimate with a
// 2-minute floor: ceil(length/500), never below 2.
func estimateMinutes(length int) int {
	minutes := (length + 499) / 500
	if minutes < minBlockMinutes {
		return minBlockMinutes
	}
	return minutes
}

func deriveTags(lessonName, title, content string) []string {
	haystack := strings.ToLower(lessonName + " " + title + " " + content)

	var tags []string
	seen := make(map[string]bool)
	for _, rule := range tagRules {
		if !strings.Contains(haystack, rule.needle) {
			continue
		}
		for _, tag := range rule.tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}
