package model

import "encoding/json"

// ContentBlock is the closed variant set of content payloads. Unlike event
// types, an unrecognized block type is preserved as UnknownBlock rather than
// rejected, so forward-compatible tool output does not fail the load.
type ContentBlock interface {
	BlockType() string
	isContentBlock()
}

// TextBlock is plain text.
type TextBlock struct {
	Text string
}

// CodeBlock is a code snippet with optional language and origin line.
type CodeBlock struct {
	Code      string
	Language  string
	StartLine int
}

// JSONBlock is an arbitrary JSON payload kept verbatim.
type JSONBlock struct {
	Data json.RawMessage
}

// FileBlock references a file, optionally with inline content.
type FileBlock struct {
	Path    string
	Content string
}

// ImageBlock references an image.
type ImageBlock struct {
	URL string
	Alt string
}

// AudioBlock references an audio resource.
type AudioBlock struct {
	URL string
}

// VideoBlock references a video resource.
type VideoBlock struct {
	URL string
}

// ReferenceBlock is a generic typed URI reference.
type ReferenceBlock struct {
	URI       string
	MediaType string
}

// UnknownBlock preserves a block whose type this build does not recognize.
type UnknownBlock struct {
	Type string
	Raw  json.RawMessage
}

func (TextBlock) BlockType() string      { return "text" }
func (CodeBlock) BlockType() string      { return "code" }
func (JSONBlock) BlockType() string      { return "json" }
func (FileBlock) BlockType() string      { return "file" }
func (ImageBlock) BlockType() string     { return "image" }
func (AudioBlock) BlockType() string     { return "audio" }
func (VideoBlock) BlockType() string     { return "video" }
func (ReferenceBlock) BlockType() string { return "reference" }
func (b UnknownBlock) BlockType() string { return b.Type }

func (TextBlock) isContentBlock()      {}
func (CodeBlock) isContentBlock()      {}
func (JSONBlock) isContentBlock()      {}
func (FileBlock) isContentBlock()      {}
func (ImageBlock) isContentBlock()     {}
func (AudioBlock) isContentBlock()     {}
func (VideoBlock) isContentBlock()     {}
func (ReferenceBlock) isContentBlock() {}
func (UnknownBlock) isContentBlock()   {}

type contentBlockPayload struct {
	Type      string          `json:"type"`
	Text      string          `json:"text"`
	Code      string          `json:"code"`
	Language  string          `json:"language"`
	StartLine int             `json:"start_line"`
	Data      json.RawMessage `json:"data"`
	Path      string          `json:"path"`
	Content   string          `json:"content"`
	URL       string          `json:"url"`
	Alt       string          `json:"alt"`
	URI       string          `json:"uri"`
	MediaType string          `json:"media_type"`
}

// DecodeContentBlock decodes one tagged content block. Only structurally
// invalid JSON fails; unknown types round-trip as UnknownBlock.
func DecodeContentBlock(raw json.RawMessage) (ContentBlock, error) {
	var p contentBlockPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}

	switch p.Type {
	case "text":
		return TextBlock{Text: p.Text}, nil
	case "code":
		return CodeBlock{Code: p.Code, Language: p.Language, StartLine: p.StartLine}, nil
	case "json":
		return JSONBlock{Data: p.Data}, nil
	case "file":
		return FileBlock{Path: p.Path, Content: p.Content}, nil
	case "image":
		return ImageBlock{URL: p.URL, Alt: p.Alt}, nil
	case "audio":
		return AudioBlock{URL: p.URL}, nil
	case "video":
		return VideoBlock{URL: p.URL}, nil
	case "reference":
		return ReferenceBlock{URI: p.URI, MediaType: p.MediaType}, nil
	default:
		return UnknownBlock{Type: p.Type, Raw: append(json.RawMessage(nil), raw...)}, nil
	}
}

// FirstText returns the text of the first TextBlock in c, or "".
func (c Content) FirstText() string {
	for _, block := range c.Blocks {
		if text, ok := block.(TextBlock); ok {
			return text.Text
		}
	}
	return ""
}
