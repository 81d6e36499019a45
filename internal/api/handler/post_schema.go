package handler

import "time"

type createPostRequest struct {
	Text  string `json:"postText"  validate:"required,max=1000"`
	Color string `json:"colorCode" validate:"required"`
}

type updatePostRequest struct {
	Text  string `json:"postText"  validate:"required,max=1000"`
	Color string `json:"colorCode" validate:"required"`
}

// postResponse keeps the original wall JSON contract: postId / postText /
// postDate / colorCode plus the author's id and username.
type postResponse struct {
	PostID   int       `json:"postId"`
	Text     string    `json:"postText"`
	Color    string    `json:"colorCode"`
	Status   string    `json:"status"`
	UserID   int       `json:"userId"`
	Username string    `json:"username"`
	PostDate time.Time `json:"postDate"`
}

type postsResponse struct {
	Posts []postResponse `json:"posts"`
}

type postDetailResponse struct {
	Post postResponse `json:"post"`
}
