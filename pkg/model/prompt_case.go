package model

// PromptCase 表示从 markdown 中提取出的一条提示词案例
type PromptCase struct {
	ID         int      `json:"id"`         // 锚点中的编号，跨文档去重的主键
	Title      string   `json:"title"`      // 标题，已去掉末尾的来源注释
	Prompt     string   `json:"prompt"`     // 第一个代码块中的提示词
	Image      string   `json:"image"`      // 图片地址，没有图片时为空字符串
	Categories []string `json:"categories"` // 分类标签，按分类表顺序排列
}

// HasImage 是否引用了图片
func (p PromptCase) HasImage() bool {
	return p.Image != ""
}
