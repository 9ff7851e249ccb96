package model

// OtherCategory 没有任何关键词命中时使用的分类
const OtherCategory = "other"

// Category 表示分类表中的一项
type Category struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Emoji    string   `json:"emoji" yaml:"emoji"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Label 前端展示用的名称，带 emoji 前缀
func (c Category) Label() string {
	if c.Emoji == "" {
		return c.Name
	}
	return c.Emoji + " " + c.Name
}

// DefaultCategories 返回内置的分类表，顺序即匹配和输出的顺序。
// 每次调用都返回新的切片，调用方可以随意修改。
func DefaultCategories() []Category {
	return []Category{
		{ID: "photography", Name: "摄影", Emoji: "📷", Keywords: []string{"摄影", "照片", "相机", "摆拍", "写真", "拍摄", "photograph", "photo", "camera", "studio"}},
		{ID: "portrait", Name: "人像", Emoji: "👤", Keywords: []string{"人像", "肖像", "头像", "自拍", "portrait", "selfie", "headshot"}},
		{ID: "nature", Name: "自然", Emoji: "🌿", Keywords: []string{"自然", "植物", "花卉", "森林", "海洋", "nature", "flower", "forest", "botanical", "ocean"}},
		{ID: "landscape", Name: "景观", Emoji: "🏔️", Keywords: []string{"风景", "风光", "山水", "景观", "landscape", "scenery", "mountain"}},
		{ID: "architecture", Name: "建筑", Emoji: "🏛️", Keywords: []string{"建筑", "城市", "街道", "architecture", "building", "skyline", "cityscape"}},
		{ID: "interior", Name: "室内", Emoji: "🏠", Keywords: []string{"室内", "家居", "房间", "interior", "bedroom", "living room", "furniture"}},
		{ID: "3d", Name: "3D", Emoji: "🧊", Keywords: []string{"3d", "立体", "雕塑", "渲染", "等距", "render", "c4d", "blender", "isometric"}},
		{ID: "illustration", Name: "插画", Emoji: "🎨", Keywords: []string{"插画", "插图", "绘画", "手绘", "水彩", "油画", "素描", "illustration", "painting", "drawing", "watercolor", "sketch"}},
		{ID: "character", Name: "角色", Emoji: "👾", Keywords: []string{"角色", "人物", "卡通", "可爱", "玩偶", "q版", "cartoon", "character", "mascot", "chibi"}},
		{ID: "anime", Name: "动漫", Emoji: "🌸", Keywords: []string{"动漫", "动画", "漫画", "二次元", "吉卜力", "anime", "manga", "ghibli"}},
		{ID: "retro", Name: "复古", Emoji: "📼", Keywords: []string{"复古", "怀旧", "老式", "年代", "retro", "vintage", "nostalgic", "80s", "90s"}},
		{ID: "neon", Name: "霓虹", Emoji: "🎆", Keywords: []string{"霓虹", "发光", "荧光", "赛博朋克", "neon", "glow", "cyberpunk"}},
		{ID: "minimalist", Name: "极简", Emoji: "✨", Keywords: []string{"极简", "简约", "扁平", "minimal", "flat design"}},
		{ID: "sci-fi", Name: "科幻", Emoji: "🚀", Keywords: []string{"科幻", "未来", "太空", "机甲", "宇宙", "sci-fi", "futuristic", "spaceship", "astronaut", "robot", "mecha"}},
		{ID: "fantasy", Name: "奇幻", Emoji: "🦄", Keywords: []string{"奇幻", "魔法", "童话", "精灵", "神话", "fantasy", "magic", "fairy", "dragon"}},
		{ID: "clay", Name: "粘土", Emoji: "🧸", Keywords: []string{"粘土", "黏土", "橡皮泥", "毛毡", "clay", "plasticine", "needle felt"}},
		{ID: "paper", Name: "剪纸", Emoji: "✂️", Keywords: []string{"剪纸", "纸艺", "折纸", "纸雕", "papercut", "paper cut", "origami", "paper craft", "paper art"}},
		{ID: "texture", Name: "材质", Emoji: "🧶", Keywords: []string{"材质", "纹理", "质感", "玻璃", "金属", "毛绒", "针织", "texture", "glass", "metallic", "fabric", "knit", "plush"}},
		{ID: "fashion", Name: "时尚", Emoji: "👗", Keywords: []string{"时尚", "服装", "穿搭", "模特", "fashion", "outfit", "clothing", "runway"}},
		{ID: "product", Name: "产品", Emoji: "📦", Keywords: []string{"产品", "商品", "包装", "电商", "product", "packaging", "mockup", "commercial"}},
		{ID: "food", Name: "美食", Emoji: "🍔", Keywords: []string{"食物", "美食", "零食", "甜点", "饮料", "蛋糕", "咖啡", "food", "snack", "dessert", "drink", "cake", "coffee"}},
		{ID: "logo", Name: "Logo", Emoji: "🔷", Keywords: []string{"logo", "标志", "商标", "徽标", "emblem"}},
		{ID: "branding", Name: "品牌", Emoji: "💼", Keywords: []string{"品牌", "vi设计", "视觉识别", "brand", "identity"}},
		{ID: "typography", Name: "字体", Emoji: "🅰️", Keywords: []string{"字体", "文字", "排版", "书法", "typography", "lettering", "font", "calligraphy", "typeface"}},
		{ID: "poster", Name: "海报", Emoji: "📜", Keywords: []string{"海报", "封面", "杂志", "poster", "magazine", "flyer", "banner", "book cover", "album cover"}},
		{ID: "ui", Name: "UI", Emoji: "📱", Keywords: []string{"界面", "网页", "ui设计", "ui design", "user interface", "dashboard", "website", "app screen"}},
		{ID: "icon", Name: "图标", Emoji: "🏷️", Keywords: []string{"图标", "表情包", "贴纸", "icon", "emoji", "sticker"}},
		{ID: "game", Name: "游戏", Emoji: "🎮", Keywords: []string{"游戏", "像素", "game", "gaming", "pixel art", "8-bit", "rpg"}},
		{ID: "animal", Name: "动物", Emoji: "🐾", Keywords: []string{"动物", "宠物", "猫", "狗", "熊猫", "鸟", "animal", "puppy", "kitten", "panda", "wildlife"}},
		{ID: "vehicle", Name: "车辆", Emoji: "🚗", Keywords: []string{"汽车", "跑车", "车辆", "摩托", "飞机", "自行车", "vehicle", "sports car", "motorcycle", "automobile", "truck", "bicycle"}},
	}
}

// CategoryIDs 按表顺序返回分类 ID
func CategoryIDs(categories []Category) []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return ids
}
