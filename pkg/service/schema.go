package service

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed gallery.schema.json
var gallerySchemaJSON []byte

var (
	gallerySchema     *jsonschema.Schema
	gallerySchemaErr  error
	gallerySchemaOnce sync.Once
)

func loadGallerySchema() (*jsonschema.Schema, error) {
	gallerySchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("gallery.schema.json", bytes.NewReader(gallerySchemaJSON)); err != nil {
			gallerySchemaErr = errors.Wrap(err, "加载输出 schema 失败")
			return
		}
		gallerySchema, gallerySchemaErr = compiler.Compile("gallery.schema.json")
		if gallerySchemaErr != nil {
			gallerySchemaErr = errors.Wrap(gallerySchemaErr, "编译输出 schema 失败")
		}
	})
	return gallerySchema, gallerySchemaErr
}

// ValidateGallery 校验序列化后的输出是否符合前端约定的结构
func ValidateGallery(data []byte) error {
	schema, err := loadGallerySchema()
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "输出不是合法的 JSON")
	}
	if err := schema.Validate(doc); err != nil {
		return errors.Wrap(err, "输出不符合 schema")
	}
	return nil
}
