package service

import (
	"regexp"
	"strings"

	"prompt-gallery/pkg/model"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const fence = "```"

var imageRegex = regexp.MustCompile(`<img\s+src="\./(images/\d+(?:-\d+)?\.(?:png|jpeg|jpg))"`)

// Extractor 把案例片段转换为 PromptCase
type Extractor struct {
	imageBaseURL string
	categorizer  *Categorizer
}

func NewExtractor(imageBaseURL string, categorizer *Categorizer) *Extractor {
	return &Extractor{
		imageBaseURL: imageBaseURL,
		categorizer:  categorizer,
	}
}

// WithImageBaseURL 返回使用另一个图片前缀的 Extractor，分类器共用
func (e *Extractor) WithImageBaseURL(imageBaseURL string) *Extractor {
	return &Extractor{
		imageBaseURL: imageBaseURL,
		categorizer:  e.categorizer,
	}
}

// Extract 提取单个案例，提示词为空或编号不合法时返回 false
func (e *Extractor) Extract(sec Section) (*model.PromptCase, bool) {
	// cast 按 base 0 解析，去掉前导零避免 "08" 被当成八进制
	id, err := cast.ToIntE(strings.TrimLeft(sec.ID, "0"))
	if err != nil || id <= 0 {
		zap.S().Debugf("案例编号 %q 不合法，跳过", sec.ID)
		return nil, false
	}

	prompt, ok := ExtractPrompt(sec.Body)
	if !ok {
		zap.S().Debugf("案例 %d: 没有提示词，跳过", id)
		return nil, false
	}

	image := ""
	if path := ExtractImagePath(sec.Body); path != "" {
		image = e.imageBaseURL + path
	}

	return &model.PromptCase{
		ID:         id,
		Title:      sec.Title,
		Prompt:     prompt,
		Image:      image,
		Categories: e.categorizer.Categorize(sec.Title, prompt),
	}, true
}

// ExtractAll 依次提取所有片段，保持文档顺序
func (e *Extractor) ExtractAll(sections []Section) []model.PromptCase {
	cases := make([]model.PromptCase, 0, len(sections))
	for _, sec := range sections {
		if c, ok := e.Extract(sec); ok {
			cases = append(cases, *c)
		}
	}
	return cases
}

// ExtractImagePath 返回正文中第一个图片的相对路径，例如 images/7.png
func ExtractImagePath(body string) string {
	m := imageRegex.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return m[1]
}

// ExtractPrompt 返回第一个代码块的内容（去掉首尾空白）。
// 起始围栏行可以带语言标记，结束围栏行只能是三个反引号；没有闭合的代码块不算。
func ExtractPrompt(body string) (string, bool) {
	lines := strings.Split(body, "\n")
	start := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if start < 0 {
			if strings.HasPrefix(trimmed, fence) {
				start = i + 1
			}
			continue
		}
		if trimmed == fence {
			prompt := strings.TrimSpace(strings.Join(lines[start:i], "\n"))
			return prompt, prompt != ""
		}
	}
	return "", false
}
