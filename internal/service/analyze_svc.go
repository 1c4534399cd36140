package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tenthin/youtube-analyzer/internal/model"
	"github.com/tenthin/youtube-analyzer/internal/repository"
	"github.com/tenthin/youtube-analyzer/internal/resolver"
)

// AnalyzeService orchestrates the full pipeline: cache lookup, URL
// classification, evidence gathering, AI judgment, and cache update.
// Each request is independent; the service holds no per-request state.
type AnalyzeService struct {
	gather  *GatherService
	judge   *JudgeService
	history *HistoryService
	archive *repository.AnalysisRepo // nil when the database is not configured
}

func NewAnalyzeService(gather *GatherService, judge *JudgeService, history *HistoryService, archive *repository.AnalysisRepo) *AnalyzeService {
	return &AnalyzeService{gather: gather, judge: judge, history: history, archive: archive}
}

// Analyze runs the pipeline for a raw URL. The returned bool reports
// whether the result was served from cache. Input validation happens
// before any remote call; a cache hit short-circuits the pipeline
// entirely.
func (s *AnalyzeService) Analyze(ctx context.Context, rawURL string) (*model.AnalysisResult, bool, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, false, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	if !resolver.IsYouTubeURL(rawURL) {
		return nil, false, fmt.Errorf("%w: not a YouTube URL", ErrInvalidInput)
	}

	normalized := resolver.Normalize(rawURL)

	// Cache trouble must never fail an analysis; fall through on error.
	if entry, err := s.history.Lookup(ctx, normalized); err != nil {
		log.Printf("analyze: cache lookup error: %v", err)
	} else if entry != nil {
		return &entry.Result, true, nil
	}

	target := resolver.Classify(normalized)

	var result *model.AnalysisResult
	switch target.Kind {
	case resolver.KindVideo:
		evidence, err := s.gather.GatherVideo(ctx, target.VideoID)
		if err != nil {
			return nil, false, err
		}
		judgment := s.judge.JudgeVideo(ctx, evidence)
		result = &model.AnalysisResult{
			Type:             model.ResultTypeVideo,
			Video:            evidence,
			VideoAnalysis:    judgment,
			CommentsDisabled: evidence.CommentsDisabled,
		}

	case resolver.KindChannel:
		channelID := target.ChannelID
		if channelID == "" {
			id, err := s.gather.ResolveHandle(ctx, target.Handle)
			if err != nil {
				return nil, false, err
			}
			channelID = id
		}
		evidence, err := s.gather.GatherChannel(ctx, channelID)
		if err != nil {
			return nil, false, err
		}
		judgment := s.judge.JudgeChannel(ctx, evidence)
		result = &model.AnalysisResult{
			Type:            model.ResultTypeChannel,
			Channel:         evidence,
			ChannelAnalysis: judgment,
		}

	default:
		return nil, false, fmt.Errorf("%w: unsupported YouTube URL", ErrInvalidInput)
	}

	meta := entryMeta(result, target)
	if err := s.history.Put(ctx, normalized, *result, meta); err != nil {
		log.Printf("analyze: cache put error: %v", err)
	}
	if s.archive != nil {
		if err := s.archive.Record(ctx, normalized, string(result.Type), meta.Title); err != nil {
			log.Printf("analyze: archive record error: %v", err)
		}
	}

	return result, false, nil
}

// History, RemoveFromHistory and ClearHistory expose the cache manager
// to the history handlers through the same service facade.
func (s *AnalyzeService) History(ctx context.Context) ([]model.HistoryEntry, error) {
	return s.history.History(ctx)
}

func (s *AnalyzeService) RemoveFromHistory(ctx context.Context, rawURL string) error {
	return s.history.Remove(ctx, resolver.Normalize(rawURL))
}

func (s *AnalyzeService) ClearHistory(ctx context.Context) error {
	return s.history.Clear(ctx)
}

func entryMeta(result *model.AnalysisResult, target resolver.Target) model.EntryMeta {
	if result.Type == model.ResultTypeVideo {
		thumbnail := "https://img.youtube.com/vi/" + target.VideoID + "/hqdefault.jpg"
		return model.EntryMeta{
			Title:     result.Video.Title,
			Thumbnail: &thumbnail,
			Type:      model.ResultTypeVideo,
		}
	}
	return model.EntryMeta{
		Title:     result.Channel.Name,
		Thumbnail: nil,
		Type:      model.ResultTypeChannel,
	}
}
