package domain

import "time"

// Post is a CMS blog entry served by the public content API.
type Post struct {
	ID          int64
	Slug        string
	Title       string
	Excerpt     *string
	Content     *string
	CoverImage  *string
	Author      *string
	Published   bool
	PublishedAt *time.Time
}

type PageQuery struct {
	Limit int
}

type PostsPage struct {
	Items []Post
}
