package kafka

// ContentSubmittedMessage is the payload on the content intake topic. The
// platform publishes one message per new piece of user content.
type ContentSubmittedMessage struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
	AuthorID    string `json:"author_id,omitempty"`
	Text        string `json:"text"`
}
