package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"

	"prompt-gallery/pkg/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TagCount 单个分类的提示词数量
type TagCount struct {
	Tag   string
	Count int64
}

// StatsSummary 画廊的统计信息
type StatsSummary struct {
	Total     int64
	WithImage int64
	Tags      []TagCount
}

type StatsService struct {
	db *sql.DB
}

func NewStatsService(db *sql.DB) *StatsService {
	return &StatsService{db: db}
}

// LoadGalleryFile 读取已经生成的画廊 JSON
func LoadGalleryFile(path string) ([]model.PromptCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "读取 %s 失败", path)
	}
	if err := ValidateGallery(data); err != nil {
		return nil, errors.Wrapf(err, "%s 格式不正确", path)
	}
	var cases []model.PromptCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, errors.Wrapf(err, "解析 %s 失败", path)
	}
	return cases, nil
}

// Load 重建统计表并写入所有提示词
func (s *StatsService) Load(ctx context.Context, cases []model.PromptCase) error {
	if s.db == nil {
		return errors.New("DuckDB 连接未初始化")
	}
	if err := s.createTables(ctx); err != nil {
		return errors.Wrap(err, "创建 DuckDB 表失败")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "开启事务失败")
	}
	defer tx.Rollback()

	caseStmt, err := tx.PrepareContext(ctx, `INSERT INTO prompt_case (id, title, image) VALUES (?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "准备插入语句失败")
	}
	defer caseStmt.Close()

	tagStmt, err := tx.PrepareContext(ctx, `INSERT INTO prompt_case_category (case_id, ord, tag) VALUES (?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "准备插入语句失败")
	}
	defer tagStmt.Close()

	for _, c := range cases {
		if _, err := caseStmt.ExecContext(ctx, c.ID, c.Title, c.Image); err != nil {
			return errors.Wrapf(err, "插入提示词 %d 失败", c.ID)
		}
		for i, tag := range c.Categories {
			if _, err := tagStmt.ExecContext(ctx, c.ID, i, tag); err != nil {
				return errors.Wrapf(err, "插入提示词 %d 的分类失败", c.ID)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "提交事务失败")
	}
	zap.S().Debugf("已写入 %d 条提示词到 DuckDB", len(cases))
	return nil
}

// createTables 删除旧表后重新创建
func (s *StatsService) createTables(ctx context.Context) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS prompt_case_category`,
		`DROP TABLE IF EXISTS prompt_case`,
		`CREATE TABLE prompt_case (
			id BIGINT PRIMARY KEY,
			title TEXT,
			image TEXT
		)`,
		`CREATE TABLE prompt_case_category (
			case_id BIGINT,
			ord INTEGER,
			tag TEXT
		)`,
	} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Summary 汇总总数、带图数量以及每个分类的数量
func (s *StatsService) Summary(ctx context.Context) (*StatsSummary, error) {
	if s.db == nil {
		return nil, errors.New("DuckDB 连接未初始化")
	}

	summary := &StatsSummary{}
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE image <> '') FROM prompt_case`,
	).Scan(&summary.Total, &summary.WithImage)
	if err != nil {
		return nil, errors.Wrap(err, "查询数量失败")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT tag, COUNT(*) AS n FROM prompt_case_category GROUP BY tag ORDER BY n DESC, tag`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "查询分类统计失败")
	}
	defer rows.Close()

	for rows.Next() {
		var tc TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, errors.Wrap(err, "扫描分类统计失败")
		}
		summary.Tags = append(summary.Tags, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "查询分类统计失败")
	}
	return summary, nil
}
