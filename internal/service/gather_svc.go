package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/tenthin/youtube-analyzer/internal/model"
	"github.com/tenthin/youtube-analyzer/internal/youtube"
)

const (
	maxComments      = 20
	maxRecentUploads = 10
)

// DataAPI is the subset of the YouTube Data API client the gatherer
// consumes. An empty items list means "not found" for required lookups.
type DataAPI interface {
	SearchChannels(ctx context.Context, query string) (youtube.SearchListResponse, error)
	VideoDetails(ctx context.Context, videoID string) (youtube.VideoListResponse, error)
	ChannelDetails(ctx context.Context, channelID string) (youtube.ChannelListResponse, error)
	RecentVideos(ctx context.Context, channelID string, maxResults int) (youtube.SearchListResponse, error)
	TopComments(ctx context.Context, videoID string, maxResults int) (youtube.CommentThreadListResponse, error)
}

// GatherService assembles the evidence bundle for a classified target.
type GatherService struct {
	yt DataAPI
}

func NewGatherService(yt DataAPI) *GatherService {
	return &GatherService{yt: yt}
}

type commentsResult struct {
	comments []string
	disabled bool
}

// GatherVideo fetches a video's details and its top comments. The two
// calls are independent and run concurrently. The comments fetch is
// isolated: any failure there (a 403 means comments are disabled)
// degrades to commentsDisabled=true instead of failing the request.
func (s *GatherService) GatherVideo(ctx context.Context, videoID string) (*model.VideoEvidence, error) {
	commentsCh := make(chan commentsResult, 1)
	go func() {
		commentsCh <- s.fetchComments(ctx, videoID)
	}()

	details, err := s.yt.VideoDetails(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("%w: video details for %s: %v", ErrUpstream, videoID, err)
	}
	if len(details.Items) == 0 {
		return nil, fmt.Errorf("%w: video %s", ErrNotFound, videoID)
	}
	item := details.Items[0]

	views, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
	uploadedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)

	cr := <-commentsCh

	return &model.VideoEvidence{
		Title:            item.Snippet.Title,
		Views:            views,
		UploadedAt:       uploadedAt,
		ChannelName:      item.Snippet.ChannelTitle,
		Description:      item.Snippet.Description,
		Comments:         cr.comments,
		CommentsDisabled: cr.disabled,
	}, nil
}

func (s *GatherService) fetchComments(ctx context.Context, videoID string) commentsResult {
	resp, err := s.yt.TopComments(ctx, videoID, maxComments)
	if err != nil {
		log.Printf("gather: comments unavailable for %s: %v", videoID, err)
		return commentsResult{comments: []string{}, disabled: true}
	}

	comments := make([]string, 0, len(resp.Items))
	for _, thread := range resp.Items {
		comments = append(comments, thread.Snippet.TopLevelComment.Snippet.TextDisplay)
	}
	return commentsResult{comments: comments}
}

// ResolveHandle resolves an @handle to a channel ID via text search.
func (s *GatherService) ResolveHandle(ctx context.Context, handle string) (string, error) {
	resp, err := s.yt.SearchChannels(ctx, handle)
	if err != nil {
		return "", fmt.Errorf("%w: channel search for %q: %v", ErrUpstream, handle, err)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("%w: channel handle %q", ErrNotFound, handle)
	}
	return resp.Items[0].Snippet.ChannelID, nil
}

// GatherChannel fetches a channel's recent uploads, derives the upload
// cadence from their publish timestamps, then fetches the channel
// details. The order matters: cadence feeds the evidence bundle.
func (s *GatherService) GatherChannel(ctx context.Context, channelID string) (*model.ChannelEvidence, error) {
	recent, err := s.yt.RecentVideos(ctx, channelID, maxRecentUploads)
	if err != nil {
		return nil, fmt.Errorf("%w: recent uploads for %s: %v", ErrUpstream, channelID, err)
	}

	// Unparseable publish dates are dropped, not fatal.
	published := make([]time.Time, 0, len(recent.Items))
	for _, item := range recent.Items {
		ts, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if err != nil {
			continue
		}
		published = append(published, ts)
	}
	frequency := UploadCadence(published)

	details, err := s.yt.ChannelDetails(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("%w: channel details for %s: %v", ErrUpstream, channelID, err)
	}
	if len(details.Items) == 0 {
		return nil, fmt.Errorf("%w: channel %s", ErrNotFound, channelID)
	}
	item := details.Items[0]

	// Hidden subscriber count means nil, not zero.
	var subscribers *int64
	if !item.Statistics.HiddenSubscriberCount {
		n, _ := strconv.ParseInt(item.Statistics.SubscriberCount, 10, 64)
		subscribers = &n
	}
	totalVideos, _ := strconv.ParseInt(item.Statistics.VideoCount, 10, 64)
	createdAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)

	return &model.ChannelEvidence{
		ID:              item.ID,
		Name:            item.Snippet.Title,
		Subscribers:     subscribers,
		TotalVideos:     totalVideos,
		Description:     item.Snippet.Description,
		CreatedAt:       createdAt,
		UploadFrequency: frequency,
	}, nil
}
