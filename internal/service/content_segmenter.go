package service

import (
	"strings"

	"golang.org/x/net/html"
)

// segmentUnit is one heading-delimited slice of the document: the heading
// text plus everything up to the next h1/h2.
type segmentUnit struct {
	title   string
	content strings.Builder
}

// SegmentLesson splits a legacy lesson's HTML body into ordered,
// classified block drafts. The document is cut at h1/h2 boundaries; each
// heading owns the markup that follows it. A document without headings
// collapses into a single block titled after the lesson.
//
// Position 0 is reserved for content that precedes the first heading, so
// heading-delimited units are numbered from 1. The order index increments
// globally across sections, not per section; renderers sort by it only
// within a section group.
func SegmentLesson(lessonHTML, lessonName string) []BlockDraft {
	nodes := flattenDocument(lessonHTML)

	var units []*segmentUnit
	var preamble strings.Builder
	for _, n := range nodes {
		if isHeading(n) {
			units = append(units, &segmentUnit{title: strings.TrimSpace(textContent(n))})
			continue
		}
		if len(units) == 0 {
			preamble.WriteString(renderNode(n))
			continue
		}
		units[len(units)-1].content.WriteString(renderNode(n))
	}

	// No headings anywhere: the whole document becomes one block. The raw
	// input is kept verbatim rather than re-rendered.
	if len(units) == 0 {
		return []BlockDraft{ClassifyFragment(lessonHTML, lessonName, 0, lessonName)}
	}

	var drafts []BlockDraft
	if strings.TrimSpace(preamble.String()) != "" {
		drafts = append(drafts, ClassifyFragment(preamble.String(), lessonName, 0, lessonName))
	}
	for i, u := range units {
		drafts = append(drafts, ClassifyFragment(u.content.String(), u.title, i+1, lessonName))
	}
	return drafts
}

// flattenDocument parses the HTML and returns body-level nodes in
// document order, descending through pure wrapper elements so headings
// nested in a container div still act as boundaries.
func flattenDocument(src string) []*html.Node {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil
	}

	body := findElement(doc, "body")
	if body == nil {
		return nil
	}

	var nodes []*html.Node
	flattenInto(body, &nodes)
	return nodes
}

var wrapperElements = map[string]bool{
	"div":     true,
	"section": true,
	"article": true,
	"main":    true,
}

func flattenInto(n *html.Node, out *[]*html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && wrapperElements[c.Data] {
			flattenInto(c, out)
			continue
		}
		*out = append(*out, c)
	}
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

func isHeading(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "h1" || n.Data == "h2")
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

func renderNode(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}
