package model

type DailyQuote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}
