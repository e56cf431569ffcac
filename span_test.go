package md2office

import (
	"reflect"
	"testing"
)

func TestParseInline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StyledText
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "plain text only",
			input:    "just words",
			expected: StyledText{{Kind: SpanPlain, Text: "just words"}},
		},
		{
			name:  "bold in the middle",
			input: "a **bold** word",
			expected: StyledText{
				{Kind: SpanPlain, Text: "a "},
				{Kind: SpanBold, Text: "bold"},
				{Kind: SpanPlain, Text: " word"},
			},
		},
		{
			name:     "italic",
			input:    "*emphasis*",
			expected: StyledText{{Kind: SpanItalic, Text: "emphasis"}},
		},
		{
			name:     "inline code",
			input:    "`code`",
			expected: StyledText{{Kind: SpanCode, Text: "code"}},
		},
		{
			name:  "link",
			input: "see [docs](https://example.com) here",
			expected: StyledText{
				{Kind: SpanPlain, Text: "see "},
				{Kind: SpanLink, Text: "docs", URL: "https://example.com"},
				{Kind: SpanPlain, Text: " here"},
			},
		},
		{
			name:  "code span content is not rescanned",
			input: "`**not bold**`",
			expected: StyledText{
				{Kind: SpanCode, Text: "**not bold**"},
			},
		},
		{
			name:  "bold wins over italic at same position",
			input: "**strong**",
			expected: StyledText{
				{Kind: SpanBold, Text: "strong"},
			},
		},
		{
			name:     "unterminated bold degrades to literal",
			input:    "a **dangling marker",
			expected: StyledText{{Kind: SpanPlain, Text: "a **dangling marker"}},
		},
		{
			name:     "stray asterisk stays literal",
			input:    "2 * 3 = 6",
			expected: StyledText{{Kind: SpanPlain, Text: "2 * 3 = 6"}},
		},
		{
			name:  "mixed styles preserve order",
			input: "**a** then *b* then `c`",
			expected: StyledText{
				{Kind: SpanBold, Text: "a"},
				{Kind: SpanPlain, Text: " then "},
				{Kind: SpanItalic, Text: "b"},
				{Kind: SpanPlain, Text: " then "},
				{Kind: SpanCode, Text: "c"},
			},
		},
		{
			name:     "unterminated link degrades to literal",
			input:    "[text](no-close",
			expected: StyledText{{Kind: SpanPlain, Text: "[text](no-close"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInline(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseInline(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseInlineDeterministic(t *testing.T) {
	input := "mix of **bold**, *italic*, `code`, and [link](u)"
	first := ParseInline(input)
	for i := 0; i < 10; i++ {
		if got := ParseInline(input); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestPlainString(t *testing.T) {
	text := StyledText{
		{Kind: SpanBold, Text: "Title"},
		{Kind: SpanPlain, Text: ": "},
		{Kind: SpanCode, Text: "x"},
	}
	if got := text.PlainString(); got != "Title: x" {
		t.Errorf("PlainString() = %q, want %q", got, "Title: x")
	}
}

func TestIsLabelText(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		allowColon bool
		expected   bool
	}{
		{name: "single bold span", input: "**Note:**", allowColon: false, expected: true},
		{name: "bold with trailing colon allowed", input: "**Note**:", allowColon: true, expected: true},
		{name: "bold with trailing colon disallowed", input: "**Note**:", allowColon: false, expected: false},
		{name: "bold followed by text", input: "**Note:** more text", allowColon: true, expected: false},
		{name: "plain text", input: "nothing bold", allowColon: true, expected: false},
		{name: "italic only", input: "*soft*", allowColon: true, expected: false},
		{name: "empty", input: "", allowColon: true, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isLabelText(ParseInline(tt.input), tt.allowColon)
			if got != tt.expected {
				t.Errorf("isLabelText(%q, %v) = %v, want %v", tt.input, tt.allowColon, got, tt.expected)
			}
		})
	}
}
