package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"prompt-gallery/config"
	"prompt-gallery/pkg/model"

	"github.com/adrg/frontmatter"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// documentMeta 文档开头可选的 front matter
type documentMeta struct {
	ImageBase string `yaml:"image_base"`
}

// FileFailure 目录模式下被跳过的文件
type FileFailure struct {
	File string
	Err  error
}

// BuildResult 目录模式一次运行的结果
type BuildResult struct {
	RunID  string
	Files  []string
	Failed []FileFailure
	Cases  []model.PromptCase
	Output string
}

type GalleryService struct {
	cfg       *config.GalleryConfig
	extractor *Extractor
}

func NewGalleryService(cfg *config.GalleryConfig) *GalleryService {
	categorizer := NewCategorizer(model.DefaultCategories(), cfg.MaxCategories)
	return &GalleryService{
		cfg:       cfg,
		extractor: NewExtractor(cfg.ImageBaseURL, categorizer),
	}
}

// ParseDocument 解析单个文档，结果保持文档中的出现顺序
func (s *GalleryService) ParseDocument(content string) ([]model.PromptCase, error) {
	body, meta := splitFrontMatter(content)

	extractor := s.extractor
	if meta.ImageBase != "" {
		extractor = extractor.WithImageBaseURL(meta.ImageBase)
	}
	return extractor.ExtractAll(Segment(body)), nil
}

// splitFrontMatter 文档开头的 --- 也可能只是案例之间的分隔线。
// 只有能解析成 yaml 映射且没有吞掉任何案例锚点时才当作 front matter，否则原样返回。
func splitFrontMatter(content string) (string, documentMeta) {
	var meta documentMeta
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		zap.S().Debugf("文档开头不是 front matter，按正文处理: %v", err)
		return content, documentMeta{}
	}
	if countAnchors(string(body)) != countAnchors(content) {
		zap.S().Debug("front matter 中包含案例锚点，按正文处理")
		return content, documentMeta{}
	}
	return string(body), meta
}

// ParseStream 读取整个输入流后解析，用于标准输入模式
func (s *GalleryService) ParseStream(r io.Reader) ([]model.PromptCase, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "读取输入失败")
	}
	if !utf8.Valid(data) {
		return nil, errors.New("输入不是合法的 UTF-8")
	}
	return s.ParseDocument(string(data))
}

// ParseFile 读取并解析单个文件
func (s *GalleryService) ParseFile(path string) ([]model.PromptCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "读取文件 %s 失败", path)
	}
	if !utf8.Valid(data) {
		return nil, errors.Errorf("文件 %s 不是合法的 UTF-8", path)
	}
	return s.ParseDocument(string(data))
}

// Build 目录模式：解析 dir 下所有匹配的文件，合并去重后按编号倒序写入输出文件
func (s *GalleryService) Build(ctx context.Context, dir string) (*BuildResult, error) {
	if dir == "" {
		dir = s.cfg.InputDir
	}
	result := &BuildResult{
		RunID:  uuid.NewString(),
		Output: s.cfg.OutputPath(dir),
	}
	log := zap.S().With("run_id", result.RunID)
	startTime := time.Now()

	if info, err := os.Stat(dir); err != nil {
		return nil, errors.Wrapf(err, "读取输入目录 %s 失败", dir)
	} else if !info.IsDir() {
		return nil, errors.Errorf("%s 不是目录", dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, s.cfg.Pattern))
	if err != nil {
		return nil, errors.Wrap(err, "匹配文件失败")
	}
	sort.Strings(files)
	// 输出文件本身可能也被匹配到
	files = slices.DeleteFunc(files, func(f string) bool {
		return filepath.Clean(f) == filepath.Clean(result.Output)
	})
	result.Files = files
	log.Infof("找到 %d 个文件", len(files))

	docs := make([][]model.PromptCase, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "构建被中断")
		}
		cases, err := s.ParseFile(file)
		if err != nil {
			log.Warnf("处理文件 %s 失败，跳过: %v", filepath.Base(file), err)
			result.Failed = append(result.Failed, FileFailure{File: file, Err: err})
			continue
		}
		log.Infof("文件 %s: 解析出 %d 条提示词", filepath.Base(file), len(cases))
		docs = append(docs, cases)
	}

	result.Cases = Merge(docs...)

	var buf bytes.Buffer
	if err := Encode(&buf, result.Cases); err != nil {
		return nil, err
	}
	if err := ValidateGallery(buf.Bytes()); err != nil {
		return nil, err
	}
	if err := writeFileAtomic(result.Output, buf.Bytes()); err != nil {
		return nil, err
	}

	log.Infof("成功写入 %d 条提示词到 %s, 跳过 %d 个文件", len(result.Cases), result.Output, len(result.Failed))
	log.Debugf("耗时：%s", time.Since(startTime))
	return result, nil
}

// Merge 按文档顺序合并，编号相同时保留先出现的一条，最后按编号倒序排列
func Merge(docs ...[]model.PromptCase) []model.PromptCase {
	seen := make(map[int]struct{})
	merged := make([]model.PromptCase, 0)
	for _, cases := range docs {
		for _, c := range cases {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			merged = append(merged, c)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].ID > merged[j].ID
	})
	return merged
}

// Encode 两空格缩进，不转义 HTML 和非 ASCII 字符，空结果输出 []
func Encode(w io.Writer, cases []model.PromptCase) error {
	if cases == nil {
		cases = []model.PromptCase{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cases); err != nil {
		return errors.Wrap(err, "序列化输出失败")
	}
	return nil
}

// writeFileAtomic 先写临时文件再重命名，失败时不会留下半个输出文件
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "创建临时文件失败")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "写入 %s 失败", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "写入 %s 失败", path)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.Wrapf(err, "设置 %s 权限失败", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "写入 %s 失败", path)
	}
	return nil
}
