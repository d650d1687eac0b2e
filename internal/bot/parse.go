package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"inspire-tracker/internal/model"
	"inspire-tracker/internal/service"
)

// splitPipe splits "a | b | c" into trimmed fields.
func splitPipe(raw string) []string {
	parts := strings.Split(raw, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// parseRegisterArgs reads "name | email | password [| university]".
func parseRegisterArgs(raw string) (service.RegisterInput, error) {
	fields := splitPipe(raw)
	if len(fields) < 3 || len(fields) > 4 {
		return service.RegisterInput{}, fmt.Errorf("expected name | email | password [| university]")
	}
	in := service.RegisterInput{Name: fields[0], Email: fields[1], Password: fields[2]}
	if len(fields) == 4 {
		in.University = fields[3]
	}
	return in, nil
}

// parseLoginArgs reads "email password".
func parseLoginArgs(raw string) (email, password string, err error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("expected email and password")
	}
	return fields[0], fields[1], nil
}

// parseCourseArgs reads "name | credits | grade [| semester]".
func parseCourseArgs(raw string) (model.Course, error) {
	fields := splitPipe(raw)
	if len(fields) < 3 || len(fields) > 4 {
		return model.Course{}, fmt.Errorf("expected name | credits | grade [| semester]")
	}
	credits, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Course{}, fmt.Errorf("credits must be a whole number")
	}
	c := model.Course{Name: fields[0], Credits: credits, Grade: fields[2]}
	if len(fields) == 4 {
		c.Semester = fields[3]
	}
	return c, nil
}

// parseDueDate accepts 2006-01-02 plus the words today and tomorrow.
func parseDueDate(text string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	}
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(text), now.Location())
}

func parsePriority(text string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(text))
	value = strings.TrimLeft(value, "🔴🟡🟢 ")
	if model.ValidPriority(value) && value != "" {
		return value, true
	}
	return "", false
}

// parseTags pulls #hashtags out of a description.
func parseTags(text string) []string {
	var tags []string
	for _, f := range strings.Fields(text) {
		if strings.HasPrefix(f, "#") && len(f) > 1 {
			tags = append(tags, strings.ToLower(strings.TrimRight(f[1:], ".,;!?")))
		}
	}
	return tags
}
