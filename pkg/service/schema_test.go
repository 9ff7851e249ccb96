package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGallery(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "empty array", data: `[]`},
		{
			name: "valid record",
			data: `[{"id": 7, "title": "复古霓虹海报", "prompt": "A retro neon poster",
				"image": "https://raw.githubusercontent.com/x/y/master/images/7.png", "categories": ["retro"]}]`,
		},
		{
			name: "empty image",
			data: `[{"id": 1, "title": "t", "prompt": "p", "image": "", "categories": ["other"]}]`,
		},
		{name: "not json", data: `{`, wantErr: true},
		{name: "object instead of array", data: `{}`, wantErr: true},
		{
			name:    "null image",
			data:    `[{"id": 1, "title": "t", "prompt": "p", "image": null, "categories": ["other"]}]`,
			wantErr: true,
		},
		{
			name:    "empty prompt",
			data:    `[{"id": 1, "title": "t", "prompt": "", "image": "", "categories": ["other"]}]`,
			wantErr: true,
		},
		{
			name:    "no categories",
			data:    `[{"id": 1, "title": "t", "prompt": "p", "image": "", "categories": []}]`,
			wantErr: true,
		},
		{
			name:    "too many categories",
			data:    `[{"id": 1, "title": "t", "prompt": "p", "image": "", "categories": ["a", "b", "c", "d"]}]`,
			wantErr: true,
		},
		{
			name:    "non positive id",
			data:    `[{"id": 0, "title": "t", "prompt": "p", "image": "", "categories": ["other"]}]`,
			wantErr: true,
		},
		{
			name:    "fractional id",
			data:    `[{"id": 1.5, "title": "t", "prompt": "p", "image": "", "categories": ["other"]}]`,
			wantErr: true,
		},
		{
			name:    "unexpected image path",
			data:    `[{"id": 1, "title": "t", "prompt": "p", "image": "https://x/cover.gif", "categories": ["other"]}]`,
			wantErr: true,
		},
		{
			name:    "extra field",
			data:    `[{"id": 1, "title": "t", "prompt": "p", "image": "", "categories": ["other"], "extra": 1}]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGallery([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
