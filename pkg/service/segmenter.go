package service

import (
	"regexp"
	"strings"
)

var (
	// <a id="prompt-12"></a>
	anchorRegex = regexp.MustCompile(`^<a\s+id="prompt-(\d+)"\s*>\s*</a>$`)
	// ## 案例 12：标题 / ## Case 12: title
	headingRegex = regexp.MustCompile(`^##\s+(?:案例|(?i:case))\s*\d+\s*[:：](.*)$`)
)

// sourceMarkers 标题末尾来源注释的开头，注释必须以对应的右括号结束整行
var sourceMarkers = []struct {
	open  string
	close string
}{
	{open: "(来源", close: ")"},
	{open: "（来源", close: "）"},
}

// Section 一个案例在文档中的原始片段
type Section struct {
	ID    string
	Title string
	Body  string
}

// Segment 按 "锚点行 + 标题行" 把文档切分成案例片段。
// 第一个案例之前的内容会被丢弃，没有任何案例时返回空切片。
func Segment(doc string) []Section {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	lines := strings.Split(doc, "\n")

	type boundary struct {
		line  int
		id    string
		title string
	}
	var boundaries []boundary
	for i := 0; i+1 < len(lines); i++ {
		id, ok := matchAnchor(lines[i])
		if !ok {
			continue
		}
		title, ok := matchHeading(lines[i+1])
		if !ok {
			continue
		}
		boundaries = append(boundaries, boundary{line: i, id: id, title: title})
		i++
	}

	sections := make([]Section, 0, len(boundaries))
	for k, b := range boundaries {
		end := len(lines)
		if k+1 < len(boundaries) {
			end = boundaries[k+1].line
		}
		sections = append(sections, Section{
			ID:    b.id,
			Title: b.title,
			Body:  strings.Join(lines[b.line+2:end], "\n"),
		})
	}
	return sections
}

// countAnchors 统计文档中的锚点行数
func countAnchors(doc string) int {
	n := 0
	for _, line := range strings.Split(strings.ReplaceAll(doc, "\r\n", "\n"), "\n") {
		if _, ok := matchAnchor(line); ok {
			n++
		}
	}
	return n
}

func matchAnchor(line string) (string, bool) {
	m := anchorRegex.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	return m[1], true
}

func matchHeading(line string) (string, bool) {
	m := headingRegex.FindStringSubmatch(strings.TrimRight(line, " \t"))
	if m == nil {
		return "", false
	}
	title := cleanTitle(m[1])
	if title == "" {
		return "", false
	}
	return title, true
}

// cleanTitle 去掉末尾的 "(来源…)" 注释。取最靠前的、能延伸到行尾右括号的注释开头。
func cleanTitle(raw string) string {
	raw = strings.TrimSpace(raw)
	cut := len(raw)
	for _, m := range sourceMarkers {
		if !strings.HasSuffix(raw, m.close) {
			continue
		}
		if idx := strings.Index(raw, m.open); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	if title := strings.TrimSpace(raw[:cut]); title != "" {
		return title
	}
	return raw
}
