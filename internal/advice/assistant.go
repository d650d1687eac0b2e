package advice

import (
	"hash/fnv"
	"strings"
)

const assistantGreeting = "Hello! I'm your InspireMe assistant. How can I help you with your self-improvement journey today?"

var cannedReplies = []string{
	"That's a great question! Based on your progress, I suggest focusing on your academics mission this week.",
	"I can help you with that. Have you tried setting smaller, achievable goals to build momentum?",
	"Your consistency is impressive! Keep up with your daily goals and you'll see significant improvement soon.",
	"Let me find some resources for you on that topic. Would you prefer articles, videos, or interactive exercises?",
	"Based on your recent activity, you might enjoy trying meditation to improve your mental wellness score.",
	"Remember, progress isn't always linear. Small steps consistently taken lead to big results!",
	"I've noticed you've been completing your fitness goals regularly. Great job maintaining that habit!",
}

var keywordReplies = []struct {
	words []string
	reply string
}{
	{[]string{"hello", "hi", "hey"}, assistantGreeting},
	{[]string{"cgpa", "gpa", "grade"}, "Keep your course list up to date with /cgpa and try /plan to see the grades you need for your target."},
	{[]string{"tired", "sad", "stress", "anxious"}, "Be kind to yourself today. A short walk or ten minutes of mindfulness can reset your energy. Try /mood to check in."},
	{[]string{"motivat", "lazy", "procrastinat"}, "Remember, progress isn't always linear. Small steps consistently taken lead to big results!"},
	{[]string{"goal", "plan"}, "I can help you with that. Have you tried setting smaller, achievable goals to build momentum?"},
}

// AssistantReply picks a canned answer: keyword matches first, otherwise a
// stable choice derived from the message text.
func AssistantReply(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return assistantGreeting
	}
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	for _, kr := range keywordReplies {
		for _, kw := range kr.words {
			for _, w := range words {
				if w == kw || len(kw) > 3 && strings.HasPrefix(w, kw) {
					return kr.reply
				}
			}
		}
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(lower))
	return cannedReplies[h.Sum32()%uint32(len(cannedReplies))]
}
