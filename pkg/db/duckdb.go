package db

import (
	"context"
	"database/sql"
	"sync"

	"prompt-gallery/config"

	_ "github.com/duckdb/duckdb-go/v2"
	"go.uber.org/zap"
)

var duckDB *sql.DB
var duckDBOnce sync.Once

// InitDuckDB 初始化 duckdb 连接，DBPath 为空时使用内存库
func InitDuckDB(cfg *config.DuckDBConfig) error {
	var err error
	duckDBOnce.Do(func() {
		duckDB, err = OpenDuckDB(cfg)
	})
	return err
}

// OpenDuckDB 打开一个新的 duckdb 连接并测试
func OpenDuckDB(cfg *config.DuckDBConfig) (*sql.DB, error) {
	conn, err := sql.Open("duckdb", cfg.DSN())
	if err != nil {
		zap.S().Errorf("连接 duckdb 失败: %v", err)
		return nil, err
	}

	// 测试连接
	if err = conn.Ping(); err != nil {
		zap.S().Errorf("duckdb 连接测试失败: %v", err)
		conn.Close()
		return nil, err
	}

	if cfg.DSN() == "" {
		zap.S().Debug("duckdb 初始化完成（内存库）...")
	} else {
		zap.S().Debugf("duckdb 初始化完成: %s", cfg.DSN())
	}
	return conn, nil
}

// GetDuckDB 获取 DuckDB 连接
func GetDuckDB() *sql.DB {
	return duckDB
}

// GetDuckDBWithContext 获取带上下文的 DuckDB 连接
func GetDuckDBWithContext(ctx context.Context) *sql.DB {
	return duckDB
}

// CloseDuckDB 关闭连接
func CloseDuckDB() error {
	if duckDB == nil {
		return nil
	}
	return duckDB.Close()
}
