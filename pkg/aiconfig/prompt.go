package aiconfig

import "regexp"

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// ExtractSystemPrompt selects the system prompt from an ordered message
// list: the first message with role "system" wins, otherwise the first
// message's content, otherwise nothing.
func ExtractSystemPrompt(messages []Message) (string, bool) {
	for _, msg := range messages {
		if msg.Role == "system" {
			return msg.Content, true
		}
	}
	if len(messages) > 0 {
		return messages[0].Content, true
	}
	return "", false
}

// Interpolate substitutes {{name}} placeholders in content with values
// from vars. Unknown placeholders are left untouched.
func Interpolate(content string, vars map[string]string) string {
	if len(vars) == 0 {
		return content
	}
	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := vars[name]; ok {
			return value
		}
		return match
	})
}

// InterpolateMessages returns a copy of messages with placeholders in each
// content field substituted from vars.
func InterpolateMessages(messages []Message, vars map[string]string) []Message {
	if len(messages) == 0 {
		return messages
	}
	out := make([]Message, len(messages))
	for i, msg := range messages {
		out[i] = Message{
			Role:    msg.Role,
			Content: Interpolate(msg.Content, vars),
		}
	}
	return out
}
