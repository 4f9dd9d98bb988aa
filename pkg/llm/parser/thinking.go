// Package parser provides utilities for pulling structured content out of free-form
// model output.
package parser

import (
	"strings"
)

// ThinkingParser separates <thinking> blocks from regular content. It keeps state
// across calls so tags split between chunks are still recognised.
type ThinkingParser struct {
	buffer     strings.Builder
	tagBuffer  strings.Builder // Buffer for potential tag content between < and >
	inThinking bool
	inTag      bool // true when we're buffering a potential tag (saw '<' but not yet '>')
}

// NewThinkingParser creates a new thinking parser.
func NewThinkingParser() *ThinkingParser {
	return &ThinkingParser{}
}

// Parse processes a content chunk and returns the thinking and message text it contained.
func (p *ThinkingParser) Parse(content string) (thinking, message string) {
	var th, msg strings.Builder

	for _, ch := range content {
		if ch == '<' {
			// If we're already in a tag, the previous < wasn't a real tag
			if p.inTag {
				p.emit(p.tagBuffer.String(), &th, &msg)
				p.tagBuffer.Reset()
			}

			p.flushBuffer(&th, &msg)

			p.inTag = true
			p.tagBuffer.Reset()
			p.tagBuffer.WriteRune(ch)
			continue
		}

		if ch == '>' && p.inTag {
			p.tagBuffer.WriteRune(ch)
			tag := p.tagBuffer.String()
			p.tagBuffer.Reset()
			p.inTag = false

			switch tag {
			case "<thinking>":
				p.inThinking = true
			case "</thinking>":
				p.inThinking = false
			default:
				p.emit(tag, &th, &msg)
			}
			continue
		}

		if p.inTag {
			p.tagBuffer.WriteRune(ch)
		} else {
			p.buffer.WriteRune(ch)
		}
	}

	p.flushBuffer(&th, &msg)
	return th.String(), msg.String()
}

// Flush returns any buffered content that hasn't been emitted yet.
func (p *ThinkingParser) Flush() (thinking, message string) {
	var th, msg strings.Builder
	if p.inTag && p.tagBuffer.Len() > 0 {
		p.emit(p.tagBuffer.String(), &th, &msg)
		p.tagBuffer.Reset()
		p.inTag = false
	}
	p.flushBuffer(&th, &msg)
	return th.String(), msg.String()
}

// IsInThinking returns true if currently parsing thinking content.
func (p *ThinkingParser) IsInThinking() bool {
	return p.inThinking
}

// Reset resets the parser state.
func (p *ThinkingParser) Reset() {
	p.buffer.Reset()
	p.tagBuffer.Reset()
	p.inThinking = false
	p.inTag = false
}

func (p *ThinkingParser) flushBuffer(th, msg *strings.Builder) {
	if p.buffer.Len() == 0 {
		return
	}
	p.emit(p.buffer.String(), th, msg)
	p.buffer.Reset()
}

func (p *ThinkingParser) emit(text string, th, msg *strings.Builder) {
	if p.inThinking {
		th.WriteString(text)
	} else {
		msg.WriteString(text)
	}
}

// StripThinking removes every <thinking> block from a complete response.
func StripThinking(text string) string {
	p := NewThinkingParser()
	_, msg := p.Parse(text)
	_, rest := p.Flush()
	return msg + rest
}
