package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/leofalp/deckgen/core/deck"
)

// ErrNoContent is returned when provider output contains nothing that can be
// interpreted as slide content.
var ErrNoContent = errors.New("deckgen: no parseable slide content in provider output")

// Block parses provider output into a single [deck.ContentBlock].
//
// Providers are asked for a JSON object but routinely wrap it in prose or
// markdown fences, and smaller models emit almost-JSON (single quotes, bare
// keys, trailing commas). Block therefore extracts the outermost JSON object
// first, and on a failed unmarshal repairs the candidate with jsonrepair and
// retries once. A model that answers with a JSON array despite the
// single-object contract yields its first usable element. As a last resort
// the raw text becomes the block body, so a well-formed plain-text answer is
// still usable.
func Block(content string) (deck.ContentBlock, error) {
	var block deck.ContentBlock

	candidate := ExtractJSON(content)
	if candidate == "" {
		text := strings.TrimSpace(content)
		if text == "" {
			return block, ErrNoContent
		}
		block.Body = text
		return block, nil
	}

	if strings.HasPrefix(candidate, "[") {
		blocks, err := Blocks(candidate)
		if err != nil {
			return block, err
		}
		return blocks[0], nil
	}

	if err := json.Unmarshal([]byte(candidate), &block); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(candidate)
		if repairErr != nil {
			return block, fmt.Errorf("parsing slide content: %w (repair also failed: %v)", err, repairErr)
		}
		if err := json.Unmarshal([]byte(repaired), &block); err != nil {
			return block, fmt.Errorf("parsing repaired slide content: %w", err)
		}
	}

	normalizeBlock(&block)
	if block.Empty() {
		return block, ErrNoContent
	}
	return block, nil
}

// Blocks parses provider output into an ordered slice of content blocks,
// accepting either a JSON array of slide objects or a single object (treated
// as a one-element deck). The same repair strategy as [Block] applies.
func Blocks(content string) ([]deck.ContentBlock, error) {
	candidate := ExtractJSON(content)
	if candidate == "" {
		return nil, ErrNoContent
	}

	if strings.HasPrefix(candidate, "{") {
		block, err := Block(candidate)
		if err != nil {
			return nil, err
		}
		return []deck.ContentBlock{block}, nil
	}

	var blocks []deck.ContentBlock
	if err := json.Unmarshal([]byte(candidate), &blocks); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(candidate)
		if repairErr != nil {
			return nil, fmt.Errorf("parsing slide content array: %w (repair also failed: %v)", err, repairErr)
		}
		if err := json.Unmarshal([]byte(repaired), &blocks); err != nil {
			return nil, fmt.Errorf("parsing repaired slide content array: %w", err)
		}
	}

	kept := blocks[:0]
	for i := range blocks {
		normalizeBlock(&blocks[i])
		if !blocks[i].Empty() {
			kept = append(kept, blocks[i])
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoContent
	}
	return kept, nil
}

// ExtractJSON isolates the outermost JSON object or array embedded in chatty
// text. It returns an empty string when no balanced candidate exists.
func ExtractJSON(content string) string {
	content = stripFences(content)

	objStart := strings.IndexByte(content, '{')
	arrStart := strings.IndexByte(content, '[')

	start, closer := objStart, byte('}')
	if objStart == -1 || (arrStart != -1 && arrStart < objStart) {
		start, closer = arrStart, ']'
	}
	if start == -1 {
		return ""
	}

	end := strings.LastIndexByte(content, closer)
	if end <= start {
		return ""
	}

	return strings.TrimSpace(content[start : end+1])
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return content
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.IndexByte(trimmed, '\n'); idx != -1 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func normalizeBlock(block *deck.ContentBlock) {
	block.Title = strings.TrimSpace(block.Title)
	block.Body = strings.TrimSpace(block.Body)
	block.LeftColumn = strings.TrimSpace(block.LeftColumn)
	block.RightColumn = strings.TrimSpace(block.RightColumn)
	block.ImagePrompt = strings.TrimSpace(block.ImagePrompt)

	points := block.BulletPoints[:0]
	for _, point := range block.BulletPoints {
		point = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(point), "•"))
		if point != "" {
			points = append(points, point)
		}
	}
	block.BulletPoints = points

	if block.Layout != "" && !block.Layout.Valid() {
		// Unknown layout names from the model are dropped; the planner
		// will choose by content shape instead.
		block.Layout = ""
	}
}
