package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/tenthin/youtube-analyzer/internal/llm"
	"github.com/tenthin/youtube-analyzer/internal/model"
)

// Fixed invocation constants. Low temperature keeps replies close to
// the requested JSON shape; the system message constrains the format.
const (
	defaultModel      = "gpt-4o-mini"
	judgeTemperature  = 0.4
	systemInstruction = "You output only valid JSON."
)

// Placeholders substituted into prompts for absent optional text.
const (
	noDescription        = "No description"
	commentsDisabledLine = "Comments are disabled."
	hiddenSubscribers    = "Hidden"
)

// completionClient is the slice of the llm client the judge consumes.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error)
}

// JudgeService turns an evidence bundle into an AI judgment. Its
// methods never fail: the completion upstream is free-text-capable and
// untrusted, so any network or parse failure degrades to a fixed,
// fully-typed fallback record.
type JudgeService struct {
	client completionClient
	model  string
}

func NewJudgeService(client completionClient, modelName string) *JudgeService {
	if modelName == "" {
		modelName = defaultModel
	}
	return &JudgeService{client: client, model: modelName}
}

// JudgeVideo asks the model to assess a video from its description and
// comments.
func (s *JudgeService) JudgeVideo(ctx context.Context, ev *model.VideoEvidence) *model.VideoJudgment {
	reply, err := s.complete(ctx, VideoPrompt(ev))
	if err != nil {
		log.Printf("judge: video completion failed: %v", err)
		return videoFallback()
	}

	var judgment model.VideoJudgment
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &judgment); err != nil {
		log.Printf("judge: unparseable video reply: %v", err)
		return videoFallback()
	}
	// A parsed reply is trusted as-is; percentages are not re-checked.
	return &judgment
}

// JudgeChannel asks the model to assess a channel from its profile and
// upload cadence.
func (s *JudgeService) JudgeChannel(ctx context.Context, ev *model.ChannelEvidence) *model.ChannelJudgment {
	reply, err := s.complete(ctx, ChannelPrompt(ev))
	if err != nil {
		log.Printf("judge: channel completion failed: %v", err)
		return channelFallback()
	}

	var judgment model.ChannelJudgment
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &judgment); err != nil {
		log.Printf("judge: unparseable channel reply: %v", err)
		return channelFallback()
	}
	return &judgment
}

func (s *JudgeService) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, llm.ChatRequest{
		Model:       s.model,
		Temperature: judgeTemperature,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemInstruction},
			{Role: llm.RoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

// VideoPrompt renders the deterministic analysis prompt for a video.
// Exported so tests can pin its shape.
func VideoPrompt(ev *model.VideoEvidence) string {
	description := ev.Description
	if description == "" {
		description = noDescription
	}

	comments := strings.Join(ev.Comments, "\n")
	if ev.CommentsDisabled {
		comments = commentsDisabledLine
	}

	return fmt.Sprintf(`
You are a YouTube video analyst.

Return ONLY valid JSON with:
- summary
- goodCommentsPercent
- badCommentsPercent
- worthWatching ("Yes","Maybe","No")
- improvementSuggestions

Video description:
%s

Viewer comments:
%s
`, description, comments)
}

// ChannelPrompt renders the deterministic analysis prompt for a
// channel.
func ChannelPrompt(ev *model.ChannelEvidence) string {
	subscribers := hiddenSubscribers
	if ev.Subscribers != nil {
		subscribers = strconv.FormatInt(*ev.Subscribers, 10)
	}

	description := ev.Description
	if description == "" {
		description = noDescription
	}

	return fmt.Sprintf(`
You are a YouTube channel analyst.

Analyze the channel below and return ONLY valid JSON with:
- summary (2-3 sentences)
- score (0-100)
- worthFollowing ("Yes", "Maybe", "No")
- reason (short explanation)

Channel info:
Name: %s
Subscribers: %s
Upload frequency: %s
Description: %s
`, ev.Name, subscribers, ev.UploadFrequency, description)
}

func videoFallback() *model.VideoJudgment {
	return &model.VideoJudgment{
		Summary:                "AI analysis failed.",
		GoodCommentsPercent:    nil,
		BadCommentsPercent:     nil,
		WorthWatching:          model.VerdictUnknown,
		ImprovementSuggestions: "Could not generate suggestions.",
	}
}

func channelFallback() *model.ChannelJudgment {
	return &model.ChannelJudgment{
		Summary:        "AI analysis failed.",
		Score:          nil,
		WorthFollowing: model.VerdictUnknown,
		Reason:         "Could not parse AI output.",
	}
}
