package handler

import "github.com/wildwall/wall-api/internal/core/domain"

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		PostID:   p.ID,
		Text:     p.Text,
		Color:    p.Color,
		Status:   string(p.Status),
		UserID:   p.UserID,
		Username: p.Username,
		PostDate: p.CreatedAt.UTC(),
	}
}

func toPostsResponse(posts []*domain.Post) postsResponse {
	items := make([]postResponse, len(posts))
	for i, p := range posts {
		items[i] = toPostResponse(p)
	}
	return postsResponse{Posts: items}
}
