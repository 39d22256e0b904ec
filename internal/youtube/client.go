package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"

	"commentscope/internal/models"
	"commentscope/shared/config"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const commentsPageSize = 100

var (
	// ErrVideoNotFound is returned when the API cannot resolve the video ID.
	ErrVideoNotFound = errors.New("video not found")

	// ErrCommentsUnavailable distinguishes a failed comment fetch (disabled
	// comments, exhausted quota) from a video that simply has no comments.
	ErrCommentsUnavailable = errors.New("comments unavailable")
)

// Client reads public video metadata and comment threads from the YouTube
// Data API v3 using developer API-key access.
type Client struct {
	service *youtube.Service
}

func NewClient(ctx context.Context, cfg *config.YouTubeConfig) (*Client, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service}, nil
}

// VideoDetails fetches the title and channel for a video. The sentinel
// Unknown record accompanies every error so callers always have something to
// display.
func (c *Client) VideoDetails(ctx context.Context, videoID string) (models.VideoDetails, error) {
	resp, err := c.service.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return models.UnknownVideoDetails(), fmt.Errorf("failed to fetch video details: %w", err)
	}
	if len(resp.Items) == 0 {
		return models.UnknownVideoDetails(), fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}

	snippet := resp.Items[0].Snippet
	details := models.VideoDetails{
		Title:        snippet.Title,
		ChannelTitle: snippet.ChannelTitle,
	}
	if details.Title == "" {
		details.Title = "No Title"
	}
	if details.ChannelTitle == "" {
		details.ChannelTitle = "No Channel Title"
	}
	return details, nil
}

// Comments fetches every top-level comment of a video in display order,
// paging through the commentThreads endpoint. A video with comments disabled
// or an exhausted quota yields ErrCommentsUnavailable; an empty-but-successful
// list is not an error.
func (c *Client) Comments(ctx context.Context, videoID string) ([]string, error) {
	var comments []string
	pageToken := ""

	for {
		call := c.service.CommentThreads.List([]string{"snippet"}).
			VideoId(videoID).
			TextFormat("plainText").
			MaxResults(commentsPageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) && apiErr.Code == 403 {
				return nil, fmt.Errorf("%w: comments may be disabled or the API quota is exhausted: %v", ErrCommentsUnavailable, err)
			}
			return nil, fmt.Errorf("%w: %v", ErrCommentsUnavailable, err)
		}

		for _, item := range resp.Items {
			comments = append(comments, item.Snippet.TopLevelComment.Snippet.TextDisplay)
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	log.Printf("Fetched %d comments for video %s", len(comments), videoID)
	return comments, nil
}
