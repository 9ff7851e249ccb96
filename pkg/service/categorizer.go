package service

import (
	"strings"

	"prompt-gallery/pkg/model"
)

// Categorizer 按关键词给提示词打分类标签
type Categorizer struct {
	categories []model.Category
	max        int
}

// NewCategorizer 关键词在这里统一转成小写（仅 ASCII），max 小于 1 时不截断
func NewCategorizer(categories []model.Category, max int) *Categorizer {
	table := make([]model.Category, len(categories))
	for i, c := range categories {
		keywords := make([]string, 0, len(c.Keywords))
		for _, k := range c.Keywords {
			if k = asciiLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		c.Keywords = keywords
		table[i] = c
	}
	return &Categorizer{
		categories: table,
		max:        max,
	}
}

// Categories 返回分类表的副本
func (c *Categorizer) Categories() []model.Category {
	out := make([]model.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Categorize 在标题和提示词中查找关键词，按分类表顺序返回命中的标签
func (c *Categorizer) Categorize(title, prompt string) []string {
	text := asciiLower(title + "\n" + prompt)

	var tags []string
	for _, category := range c.categories {
		if c.max > 0 && len(tags) >= c.max {
			break
		}
		for _, keyword := range category.Keywords {
			if strings.Contains(text, keyword) {
				tags = append(tags, category.ID)
				break
			}
		}
	}
	if len(tags) == 0 {
		return []string{model.OtherCategory}
	}
	return tags
}

// asciiLower 只转换 A-Z，其他字符原样保留
func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
