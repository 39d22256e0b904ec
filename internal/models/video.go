package models

// VideoDetails is the metadata record supplied by the YouTube collaborator.
type VideoDetails struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
}

// UnknownVideoDetails is the sentinel record used when metadata cannot be
// retrieved.
func UnknownVideoDetails() VideoDetails {
	return VideoDetails{Title: "Unknown Video", ChannelTitle: "Unknown Channel"}
}
