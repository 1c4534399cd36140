package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tenthin/youtube-analyzer/internal/model"
	"github.com/tenthin/youtube-analyzer/internal/youtube"
)

// stubDataAPI implements DataAPI with per-call function fields so each
// test controls exactly the responses it needs.
type stubDataAPI struct {
	searchChannels func(query string) (youtube.SearchListResponse, error)
	videoDetails   func(videoID string) (youtube.VideoListResponse, error)
	channelDetails func(channelID string) (youtube.ChannelListResponse, error)
	recentVideos   func(channelID string, max int) (youtube.SearchListResponse, error)
	topComments    func(videoID string, max int) (youtube.CommentThreadListResponse, error)
}

func (s *stubDataAPI) SearchChannels(_ context.Context, query string) (youtube.SearchListResponse, error) {
	return s.searchChannels(query)
}

func (s *stubDataAPI) VideoDetails(_ context.Context, videoID string) (youtube.VideoListResponse, error) {
	return s.videoDetails(videoID)
}

func (s *stubDataAPI) ChannelDetails(_ context.Context, channelID string) (youtube.ChannelListResponse, error) {
	return s.channelDetails(channelID)
}

func (s *stubDataAPI) RecentVideos(_ context.Context, channelID string, max int) (youtube.SearchListResponse, error) {
	return s.recentVideos(channelID, max)
}

func (s *stubDataAPI) TopComments(_ context.Context, videoID string, max int) (youtube.CommentThreadListResponse, error) {
	return s.topComments(videoID, max)
}

func videoItem(title, description, channelTitle, publishedAt, viewCount string) youtube.VideoListResponse {
	return youtube.VideoListResponse{Items: []youtube.Video{{
		Snippet: youtube.VideoSnippet{
			Title:        title,
			Description:  description,
			ChannelTitle: channelTitle,
			PublishedAt:  publishedAt,
		},
		Statistics: youtube.VideoStatistics{ViewCount: viewCount},
	}}}
}

func commentItems(texts ...string) youtube.CommentThreadListResponse {
	var resp youtube.CommentThreadListResponse
	for _, text := range texts {
		resp.Items = append(resp.Items, youtube.CommentThread{
			Snippet: youtube.CommentThreadSnippet{
				TopLevelComment: youtube.Comment{
					Snippet: youtube.CommentSnippet{TextDisplay: text},
				},
			},
		})
	}
	return resp
}

func TestGatherVideo_Success(t *testing.T) {
	svc := NewGatherService(&stubDataAPI{
		videoDetails: func(string) (youtube.VideoListResponse, error) {
			return videoItem("Test Video", "A description", "Test Channel", "2025-06-01T12:00:00Z", "12345"), nil
		},
		topComments: func(string, int) (youtube.CommentThreadListResponse, error) {
			return commentItems("great", "terrible"), nil
		},
	})

	ev, err := svc.GatherVideo(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Title != "Test Video" {
		t.Errorf("title = %q, want %q", ev.Title, "Test Video")
	}
	if ev.Views != 12345 {
		t.Errorf("views = %d, want 12345 (string viewCount coerced)", ev.Views)
	}
	if ev.ChannelName != "Test Channel" {
		t.Errorf("channelName = %q, want %q", ev.ChannelName, "Test Channel")
	}
	if len(ev.Comments) != 2 || ev.Comments[0] != "great" {
		t.Errorf("comments = %v, want [great terrible]", ev.Comments)
	}
	if ev.CommentsDisabled {
		t.Error("commentsDisabled should be false when the fetch succeeds")
	}
}

func TestGatherVideo_NotFound(t *testing.T) {
	svc := NewGatherService(&stubDataAPI{
		videoDetails: func(string) (youtube.VideoListResponse, error) {
			return youtube.VideoListResponse{}, nil
		},
		topComments: func(string, int) (youtube.CommentThreadListResponse, error) {
			return commentItems(), nil
		},
	})

	_, err := svc.GatherVideo(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGatherVideo_UpstreamError(t *testing.T) {
	svc := NewGatherService(&stubDataAPI{
		videoDetails: func(string) (youtube.VideoListResponse, error) {
			return youtube.VideoListResponse{}, errors.New("quota exceeded")
		},
		topComments: func(string, int) (youtube.CommentThreadListResponse, error) {
			return commentItems(), nil
		},
	})

	_, err := svc.GatherVideo(context.Background(), "abc123")
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("err = %v, want ErrUpstream", err)
	}
}

// A failed comments fetch (403 when comments are disabled) must not
// abort the request: it degrades to commentsDisabled with an empty
// list.
func TestGatherVideo_CommentsFailureIsIsolated(t *testing.T) {
	svc := NewGatherService(&stubDataAPI{
		videoDetails: func(string) (youtube.VideoListResponse, error) {
			return videoItem("Video", "desc", "Channel", "2025-06-01T12:00:00Z", "10"), nil
		},
		topComments: func(string, int) (youtube.CommentThreadListResponse, error) {
			return youtube.CommentThreadListResponse{}, errors.New("youtube: status 403: comments disabled")
		},
	})

	ev, err := svc.GatherVideo(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ev.CommentsDisabled {
		t.Error("commentsDisabled should be true after a comments fetch failure")
	}
	if len(ev.Comments) != 0 {
		t.Errorf("comments = %v, want empty", ev.Comments)
	}
}

func TestResolveHandle(t *testing.T) {
	svc := NewGatherService(&stubDataAPI{
		searchChannels: func(query string) (youtube.SearchListResponse, error) {
			if query != "somecreator" {
				t.Errorf("search query = %q, want %q", query, "somecreator")
			}
			return youtube.SearchListResponse{Items: []youtube.SearchItem{
				{Snippet: youtube.SearchSnippet{ChannelID: "UCresolved"}},
			}}, nil
		},
	})

	id, err := svc.ResolveHandle(context.Background(), "somecreator")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "UCresolved" {
		t.Errorf("channel id = %q, want %q", id, "UCresolved")
	}
}

func TestResolveHandle_NoResults(t *testing.T) {
	svc := NewGatherService(&stubDataAPI{
		searchChannels: func(string) (youtube.SearchListResponse, error) {
			return youtube.SearchListResponse{}, nil
		},
	})

	_, err := svc.ResolveHandle(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGatherChannel_Success(t *testing.T) {
	svc := NewGatherService(&stubDataAPI{
		recentVideos: func(channelID string, max int) (youtube.SearchListResponse, error) {
			if max != maxRecentUploads {
				t.Errorf("maxResults = %d, want %d", max, maxRecentUploads)
			}
			return youtube.SearchListResponse{Items: []youtube.SearchItem{
				{Snippet: youtube.SearchSnippet{PublishedAt: "2025-06-08T12:00:00Z"}},
				{Snippet: youtube.SearchSnippet{PublishedAt: "not-a-date"}},
				{Snippet: youtube.SearchSnippet{PublishedAt: "2025-06-01T12:00:00Z"}},
			}}, nil
		},
		channelDetails: func(string) (youtube.ChannelListResponse, error) {
			return youtube.ChannelListResponse{Items: []youtube.Channel{{
				ID: "UCabc",
				Snippet: youtube.ChannelSnippet{
					Title:       "Some Channel",
					Description: "About",
					PublishedAt: "2020-01-01T00:00:00Z",
				},
				Statistics: youtube.ChannelStatistics{
					SubscriberCount: "5000",
					VideoCount:      "321",
				},
			}}}, nil
		},
	})

	ev, err := svc.GatherChannel(context.Background(), "UCabc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Name != "Some Channel" {
		t.Errorf("name = %q, want %q", ev.Name, "Some Channel")
	}
	if ev.Subscribers == nil || *ev.Subscribers != 5000 {
		t.Errorf("subscribers = %v, want 5000", ev.Subscribers)
	}
	if ev.TotalVideos != 321 {
		t.Errorf("totalVideos = %d, want 321", ev.TotalVideos)
	}
	// One unparseable date dropped → one 7-day gap → Weekly.
	if ev.UploadFrequency != model.FrequencyWeekly {
		t.Errorf("uploadFrequency = %q, want %q", ev.UploadFrequency, model.FrequencyWeekly)
	}
}

func TestGatherChannel_HiddenSubscribers(t *testing.T) {
	svc := NewGatherService(&stubDataAPI{
		recentVideos: func(string, int) (youtube.SearchListResponse, error) {
			return youtube.SearchListResponse{}, nil
		},
		channelDetails: func(string) (youtube.ChannelListResponse, error) {
			return youtube.ChannelListResponse{Items: []youtube.Channel{{
				ID:      "UCabc",
				Snippet: youtube.ChannelSnippet{Title: "Hidden Channel"},
				Statistics: youtube.ChannelStatistics{
					SubscriberCount:       "0",
					HiddenSubscriberCount: true,
					VideoCount:            "10",
				},
			}}}, nil
		},
	})

	ev, err := svc.GatherChannel(context.Background(), "UCabc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Subscribers != nil {
		t.Errorf("subscribers = %v, want nil for hidden count", *ev.Subscribers)
	}
	if ev.UploadFrequency != model.FrequencyUnknown {
		t.Errorf("uploadFrequency = %q, want %q with no uploads", ev.UploadFrequency, model.FrequencyUnknown)
	}
}

func TestGatherChannel_NotFound(t *testing.T) {
	svc := NewGatherService(&stubDataAPI{
		recentVideos: func(string, int) (youtube.SearchListResponse, error) {
			return youtube.SearchListResponse{}, nil
		},
		channelDetails: func(string) (youtube.ChannelListResponse, error) {
			return youtube.ChannelListResponse{}, nil
		},
	})

	_, err := svc.GatherChannel(context.Background(), "UCmissing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGatherChannel_RecentUploadsErrorIsFatal(t *testing.T) {
	svc := NewGatherService(&stubDataAPI{
		recentVideos: func(string, int) (youtube.SearchListResponse, error) {
			return youtube.SearchListResponse{}, errors.New("network down")
		},
	})

	_, err := svc.GatherChannel(context.Background(), "UCabc")
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("err = %v, want ErrUpstream", err)
	}
}
