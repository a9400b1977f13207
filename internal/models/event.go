package models

import "strconv"

// Event is the envelope pushed to websocket subscribers of a topic.
type Event struct {
	Type    string      `json:"type"`
	Topic   string      `json:"topic"`
	Payload interface{} `json:"payload"`
}

const TopicFeed = "feed"

// ChatTopic names the per-thread topic.
func ChatTopic(chatID int) string {
	return "chat:" + strconv.Itoa(chatID)
}
