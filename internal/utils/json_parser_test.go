package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assistantReply struct {
	Response     string   `json:"response"`
	QuickReplies []string `json:"quickReplies"`
}

func TestParseAIJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  assistantReply
	}{
		{
			name:  "pure JSON",
			input: `{"response": "We serve all of San Diego.", "quickReplies": ["Book now"]}`,
			want:  assistantReply{Response: "We serve all of San Diego.", QuickReplies: []string{"Book now"}},
		},
		{
			name:  "markdown fence",
			input: "```json\n{\"response\": \"Sure!\"}\n```",
			want:  assistantReply{Response: "Sure!"},
		},
		{
			name:  "fence without tag",
			input: "```\n{\"response\": \"Sure!\"}\n```",
			want:  assistantReply{Response: "Sure!"},
		},
		{
			name:  "surrounding prose",
			input: `Here you go: {"response": "Yes {really}", "quickReplies": []} hope that helps`,
			want:  assistantReply{Response: "Yes {really}", QuickReplies: []string{}},
		},
		{
			name:  "trailing comma",
			input: `{"response": "Hi", "quickReplies": ["A", "B",],}`,
			want:  assistantReply{Response: "Hi", QuickReplies: []string{"A", "B"}},
		},
		{
			name:  "unquoted keys",
			input: `{response: "Hi", quickReplies: ["A"]}`,
			want:  assistantReply{Response: "Hi", QuickReplies: []string{"A"}},
		},
		{
			name:  "single quotes with apostrophe",
			input: `{'response': 'We don't travel past 50 miles', 'quickReplies': ['Travel fees']}`,
			want:  assistantReply{Response: "We don't travel past 50 miles", QuickReplies: []string{"Travel fees"}},
		},
		{
			name:  "byte order mark",
			input: "\ufeff{\"response\": \"Hi\"}",
			want:  assistantReply{Response: "Hi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got assistantReply
			require.NoError(t, ParseAIJSON(tt.input, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAIJSON_Errors(t *testing.T) {
	for _, input := range []string{"", "   ", "not json at all", `{"response": `} {
		var got assistantReply
		assert.Error(t, ParseAIJSON(input, &got), input)
	}
}

func TestExtractBalanced(t *testing.T) {
	tests := []struct {
		name  string
		input string
		open  rune
		close rune
		want  string
	}{
		{"simple", `{"a": 1} tail`, '{', '}', `{"a": 1}`},
		{"nested", `{"a": {"b": 2}}`, '{', '}', `{"a": {"b": 2}}`},
		{"braces in string", `{"t": "x}y"}`, '{', '}', `{"t": "x}y"}`},
		{"escaped quote", `{"t": "a\"}"}`, '{', '}', `{"t": "a\"}"}`},
		{"array", `[1, [2], 3]`, '[', ']', `[1, [2], 3]`},
		{"unbalanced", `{"a": 1`, '{', '}', ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractBalanced(tt.input, tt.open, tt.close))
		})
	}
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "héll...", truncateString("héllo", 4))
	assert.Equal(t, "hi", truncateString("hi", 4))
}
