package advice

import (
	"time"

	"inspire-tracker/internal/model"
)

var quotes = []model.DailyQuote{
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Text: "You don't have to be great to start, but you have to start to be great.", Author: "Zig Ziglar"},
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt"},
	{Text: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
	{Text: "Success is not final, failure is not fatal: It is the courage to continue that counts.", Author: "Winston Churchill"},
	{Text: "The best way to predict the future is to create it.", Author: "Peter Drucker"},
	{Text: "Your time is limited, so don't waste it living someone else's life.", Author: "Steve Jobs"},
}

// DailyQuote picks the quote for day's day-of-year.
func DailyQuote(day time.Time) model.DailyQuote {
	return quotes[day.YearDay()%len(quotes)]
}
