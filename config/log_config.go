package config

import (
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // console 或 json
}

func (l *LogConfig) Validate() []error {
	var errs = make([]error, 0)
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		errs = append(errs, errors.Errorf("日志级别 %q 不合法", l.Level))
	}
	if l.Format != "console" && l.Format != "json" {
		errs = append(errs, errors.Errorf("日志格式 %q 不合法, 只支持 console 或 json", l.Format))
	}
	return errs
}

func NewDefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: "console",
	}
}
