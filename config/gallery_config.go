package config

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultImageBaseURL  = "https://raw.githubusercontent.com/songguoxs/gpt4o-image-prompts/master/"
	DefaultMaxCategories = 3
	MaxCategoriesLimit   = 3 // 前端卡片最多展示 3 个标签
)

type GalleryConfig struct {
	InputDir      string `json:"inputDir" yaml:"inputDir"`           // 目录模式下的输入目录
	Pattern       string `json:"pattern" yaml:"pattern"`             // 输入文件 glob
	Output        string `json:"output" yaml:"output"`               // 输出文件名，位于输入目录内
	ImageBaseURL  string `json:"imageBaseURL" yaml:"imageBaseURL"`   // 图片相对路径拼接的前缀
	MaxCategories int    `json:"maxCategories" yaml:"maxCategories"` // 每条提示词最多保留的分类数
}

func (g *GalleryConfig) Validate() []error {
	var errs = make([]error, 0)
	if g.InputDir == "" {
		errs = append(errs, errors.Errorf("输入目录不能为空"))
	}
	if g.Pattern == "" {
		errs = append(errs, errors.Errorf("文件匹配模式不能为空"))
	} else if _, err := filepath.Match(g.Pattern, ""); err != nil {
		errs = append(errs, errors.Errorf("文件匹配模式 %q 不合法: %v", g.Pattern, err))
	}
	if g.Output == "" {
		errs = append(errs, errors.Errorf("输出文件名不能为空"))
	} else if strings.ContainsRune(g.Output, filepath.Separator) || strings.Contains(g.Output, "/") {
		errs = append(errs, errors.Errorf("输出文件名 %q 不能包含路径", g.Output))
	}
	if g.ImageBaseURL != "" {
		if u, err := url.Parse(g.ImageBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, errors.Errorf("图片地址前缀 %q 不是合法的 URL", g.ImageBaseURL))
		}
	}
	if g.MaxCategories < 1 || g.MaxCategories > MaxCategoriesLimit {
		errs = append(errs, errors.Errorf("分类上限必须在 1 到 %d 之间, 当前为 %d", MaxCategoriesLimit, g.MaxCategories))
	}
	return errs
}

func NewDefaultGalleryConfig() *GalleryConfig {
	return &GalleryConfig{
		InputDir:      "./data",
		Pattern:       "*.md",
		Output:        "prompts.json",
		ImageBaseURL:  DefaultImageBaseURL,
		MaxCategories: DefaultMaxCategories,
	}
}

// OutputPath 输出文件的完整路径
func (g *GalleryConfig) OutputPath(dir string) string {
	if dir == "" {
		dir = g.InputDir
	}
	return filepath.Join(dir, g.Output)
}
