package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tenthin/youtube-analyzer/internal/model"
)

// AnalysisRepo records completed analyses for aggregate statistics.
// It is an audit trail, not a cache: rows are append-only and never
// consulted by the analysis pipeline itself.
type AnalysisRepo struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepo(pool *pgxpool.Pool) *AnalysisRepo {
	return &AnalysisRepo{pool: pool}
}

// Record inserts one row for a completed analysis.
func (r *AnalysisRepo) Record(ctx context.Context, url, resultType, title string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO analyses (url, result_type, title, created_at)
		VALUES ($1, $2, $3, NOW())`,
		url, resultType, title)
	return err
}

// GetStats returns analysis totals by type and activity over the last
// 24 hours.
func (r *AnalysisRepo) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	query := `
		SELECT
			COUNT(*)                                                        AS total,
			COUNT(*) FILTER (WHERE result_type = 'video')                   AS videos,
			COUNT(*) FILTER (WHERE result_type = 'channel')                 AS channels,
			COUNT(*) FILTER (WHERE created_at > NOW() - INTERVAL '24 hours') AS last_24h
		FROM analyses`

	var stats model.StatsResponse
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalAnalyses, &stats.VideoAnalyses, &stats.ChannelAnalyses, &stats.Analyses24h,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
