package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix 环境变量前缀，例如 PROMPT_GALLERY_GALLERY_OUTPUT
const EnvPrefix = "PROMPT_GALLERY"

type IConfig interface {
	Validate() []error
}

type GlobalConfig struct {
	GalleryConfig *GalleryConfig `json:"gallery" yaml:"gallery"`
	DuckDBConfig  *DuckDBConfig  `json:"duckdb" yaml:"duckdb"`
	LogConfig     *LogConfig     `json:"log" yaml:"log"`
}

func (g *GlobalConfig) Validate() []error {
	var errs = make([]error, 0)
	var sections []IConfig
	if g.GalleryConfig != nil {
		sections = append(sections, g.GalleryConfig)
	}
	if g.DuckDBConfig != nil {
		sections = append(sections, g.DuckDBConfig)
	}
	if g.LogConfig != nil {
		sections = append(sections, g.LogConfig)
	}
	for _, c := range sections {
		if es := c.Validate(); len(es) > 0 {
			errs = append(errs, es...)
		}
	}
	return errs
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		GalleryConfig: NewDefaultGalleryConfig(),
		DuckDBConfig:  NewDefaultDuckDBConfig(),
		LogConfig:     NewDefaultLogConfig(),
	}
}

// Load 配置文件路径为空时使用默认配置，环境变量在两种情况下都会生效
func Load(configFilePath string) (*GlobalConfig, error) {
	if configFilePath == "" {
		v, err := newViper()
		if err != nil {
			return nil, err
		}
		return decode(v, "yaml")
	}
	return TryLoadFromDisk(configFilePath)
}

func TryLoadFromDisk(configFilePath string) (*GlobalConfig, error) {
	_, err := os.Stat(configFilePath)
	if err != nil {
		return nil, err
	}
	dir, file := filepath.Split(configFilePath)
	fileType := filepath.Ext(file)

	v, err := newViper()
	if err != nil {
		return nil, err
	}
	v.AddConfigPath(dir)
	v.SetConfigName(strings.TrimSuffix(file, fileType))
	v.SetConfigType(strings.TrimPrefix(fileType, "."))
	if err := v.MergeInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
		return nil, errors.Errorf("解析配置文件错误:%s", err.Error())
	}
	return decode(v, tagName(fileType))
}

// tagName 结构体只有 json 和 yaml 标签，两者字段名一致，其他格式都按 yaml 标签解码
func tagName(fileType string) string {
	if strings.TrimPrefix(fileType, ".") == "json" {
		return "json"
	}
	return "yaml"
}

// newViper 先载入默认配置，让每个配置项都能被环境变量覆盖
func newViper() (*viper.Viper, error) {
	defaults, err := yaml.Marshal(NewDefaultGlobalConfig())
	if err != nil {
		return nil, errors.Wrap(err, "序列化默认配置失败")
	}
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, errors.Wrap(err, "载入默认配置失败")
	}
	return v, nil
}

func decode(v *viper.Viper, tagName string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()
	if err := v.Unmarshal(cfg, func(config *mapstructure.DecoderConfig) {
		config.TagName = tagName
	}); err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults 配置文件中显式置空的段落恢复为默认值
func (g *GlobalConfig) fillDefaults() {
	if g.GalleryConfig == nil {
		g.GalleryConfig = NewDefaultGalleryConfig()
	}
	if g.DuckDBConfig == nil {
		g.DuckDBConfig = NewDefaultDuckDBConfig()
	}
	if g.LogConfig == nil {
		g.LogConfig = NewDefaultLogConfig()
	}
}
