package models

// Source identifies the publisher of an article
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article represents a single entry of the news feed
type Article struct {
	Author      string `json:"author"`
	Content     string `json:"content"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
	Source      Source `json:"source"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
}
