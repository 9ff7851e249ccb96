package service

import (
	"testing"

	"prompt-gallery/pkg/model"

	"github.com/stretchr/testify/assert"
)

func TestCategorizer_Categorize(t *testing.T) {
	c := NewCategorizer(model.DefaultCategories(), 3)

	tests := []struct {
		name   string
		title  string
		prompt string
		want   []string
	}{
		{name: "retro neon poster", title: "复古霓虹海报", prompt: "A retro neon poster", want: []string{"retro", "neon", "poster"}},
		{name: "product shot", title: "产品摆拍", prompt: "studio product shot", want: []string{"photography", "product"}},
		{name: "nothing matched", title: "随便写写", prompt: "xyz", want: []string{"other"}},
		{name: "capped in table order", title: "复古霓虹3D卡通海报", prompt: "", want: []string{"3d", "character", "retro"}},
		{name: "ascii is case-insensitive", title: "LOGO", prompt: "A NEON SIGN", want: []string{"neon", "logo"}},
		{name: "mixed keyword folds ascii part", title: "Q版头像", prompt: "", want: []string{"portrait", "character"}},
		{name: "prompt widens the match surface", title: "无题", prompt: "a vintage coffee cup", want: []string{"retro", "food"}},
		{name: "keyword spanning title and prompt does not match", title: "neo", prompt: "n", want: []string{"other"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.title, tt.prompt))
		})
	}
}

func TestCategorizer_Cap(t *testing.T) {
	title := "摄影 人像 自然 风景 建筑"

	assert.Len(t, NewCategorizer(model.DefaultCategories(), 3).Categorize(title, ""), 3)
	assert.Len(t, NewCategorizer(model.DefaultCategories(), 1).Categorize(title, ""), 1)
	assert.Len(t, NewCategorizer(model.DefaultCategories(), 0).Categorize(title, ""), 5, "non-positive cap disables truncation")
}

func TestCategorizer_KeywordsAreFolded(t *testing.T) {
	c := NewCategorizer([]model.Category{
		{ID: "ui", Keywords: []string{" UI Design ", ""}},
	}, 3)

	assert.Equal(t, []string{"ui"}, c.Categorize("Mobile ui design", ""))
	assert.Equal(t, []string{"ui design"}, c.Categories()[0].Keywords)
}

func TestCategorizer_NonASCIINotFolded(t *testing.T) {
	c := NewCategorizer([]model.Category{
		{ID: "cafe", Keywords: []string{"café"}},
	}, 3)

	assert.Equal(t, []string{"cafe"}, c.Categorize("CAFé", ""), "ascii letters fold")
	assert.Equal(t, []string{"other"}, c.Categorize("CAFÉ", ""), "É is not folded to é")
}

func TestAsciiLower(t *testing.T) {
	assert.Equal(t, "abc xyz", asciiLower("ABC xyz"))
	assert.Equal(t, "àbc", asciiLower("àBC"))
	assert.Equal(t, "Àbc", asciiLower("ÀBC"))
	assert.Equal(t, "复古 retro", asciiLower("复古 RETRO"))
}

func TestDefaultCategories(t *testing.T) {
	categories := model.DefaultCategories()
	assert.Len(t, categories, 30)

	seen := make(map[string]bool)
	for _, category := range categories {
		assert.False(t, seen[category.ID], "duplicate id %s", category.ID)
		seen[category.ID] = true
		assert.NotEmpty(t, category.Keywords, category.ID)
		assert.NotEmpty(t, category.Label(), category.ID)
		assert.NotEqual(t, model.OtherCategory, category.ID)
		for _, k := range category.Keywords {
			assert.Equal(t, asciiLower(k), k, "keyword %q of %s should be lower case", k, category.ID)
		}
	}
}
