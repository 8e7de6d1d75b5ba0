package components

import "encoding/json"

// Default styling parameters applied when authored data omits a field.
// Values mirror what existing authored content was designed against, so
// changing them changes how legacy pages render.
const (
	DefaultGridColumns      = 3
	DefaultTextTitleSize    = "24px"
	DefaultTextContentSize  = "16px"
	DefaultTextColor        = "#333"
	DefaultCardImageHeight  = "200px"
	DefaultHeroHeight       = "400px"
	DefaultHeroTitleSize    = "48px"
	DefaultHeroSubtitleSize = "18px"
	DefaultSubTextSize      = "14px"
	DefaultSubTextAlign     = "left"
	DefaultSubTextWeight    = "normal"
	DefaultImageWidth       = "100%"
	DefaultImageHeight      = "auto"
)

// TextFormatMarkdown marks a text node whose content should be rendered as
// markdown rather than escaped plain text.
const TextFormatMarkdown = "markdown"

// TextData carries the parameters of a top-level text node.
type TextData struct {
	Title       string `json:"title,omitempty"`
	Content     string `json:"content,omitempty"`
	Format      string `json:"format,omitempty"`
	FontSize    string `json:"fontSize,omitempty"`
	ContentSize string `json:"contentSize,omitempty"`
	Color       string `json:"color,omitempty"`
}

// CardData carries the parameters of a card node.
type CardData struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	ImageHeight string `json:"imageHeight,omitempty"`
}

// GridData carries the parameters of a grid node, including its cell tree.
type GridData struct {
	Columns int    `json:"columns,omitempty"`
	Items   []Cell `json:"items,omitempty"`
}

// HeroData carries the parameters of a hero banner node.
type HeroData struct {
	Title           string `json:"title,omitempty"`
	Subtitle        string `json:"subtitle,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
	Height          string `json:"height,omitempty"`
	TitleSize       string `json:"titleSize,omitempty"`
	SubtitleSize    string `json:"subtitleSize,omitempty"`
	ButtonText      string `json:"buttonText,omitempty"`
}

// ImageData carries the parameters of an image sub-component.
type ImageData struct {
	Src    string `json:"src,omitempty"`
	Alt    string `json:"alt,omitempty"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

// SubTextData carries the parameters of a text sub-component.
type SubTextData struct {
	Content    string `json:"content,omitempty"`
	FontSize   string `json:"fontSize,omitempty"`
	Color      string `json:"color,omitempty"`
	TextAlign  string `json:"textAlign,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
}

// ButtonData carries the parameters of a button sub-component.
type ButtonData struct {
	Text  string `json:"text,omitempty"`
	Link  string `json:"link,omitempty"`
	Style string `json:"style,omitempty"`
}

// decodeData unmarshals a raw payload into the typed variant, tolerating
// missing or malformed payloads: absence always resolves to defaults, never
// an error.
func decodeData(raw json.RawMessage, out any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, out)
}

// TextData decodes the node payload as a text variant with defaults applied.
func (n Node) TextData() TextData {
	var d TextData
	decodeData(n.Data, &d)
	if d.FontSize == "" {
		d.FontSize = DefaultTextTitleSize
	}
	if d.ContentSize == "" {
		d.ContentSize = DefaultTextContentSize
	}
	if d.Color == "" {
		d.Color = DefaultTextColor
	}
	return d
}

// CardData decodes the node payload as a card variant with defaults applied.
func (n Node) CardData() CardData {
	var d CardData
	decodeData(n.Data, &d)
	if d.ImageHeight == "" {
		d.ImageHeight = DefaultCardImageHeight
	}
	return d
}

// GridData decodes the node payload as a grid variant. Columns defaults to
// three when absent or non-positive.
func (n Node) GridData() GridData {
	var d GridData
	decodeData(n.Data, &d)
	if d.Columns <= 0 {
		d.Columns = DefaultGridColumns
	}
	return d
}

// HeroData decodes the node payload as a hero variant with defaults applied.
func (n Node) HeroData() HeroData {
	var d HeroData
	decodeData(n.Data, &d)
	if d.Height == "" {
		d.Height = DefaultHeroHeight
	}
	if d.TitleSize == "" {
		d.TitleSize = DefaultHeroTitleSize
	}
	if d.SubtitleSize == "" {
		d.SubtitleSize = DefaultHeroSubtitleSize
	}
	return d
}

// ImageData decodes the sub-node payload as an image variant with defaults applied.
func (n SubNode) ImageData() ImageData {
	var d ImageData
	decodeData(n.Data, &d)
	if d.Width == "" {
		d.Width = DefaultImageWidth
	}
	if d.Height == "" {
		d.Height = DefaultImageHeight
	}
	return d
}

// SubTextData decodes the sub-node payload as a text variant with defaults applied.
func (n SubNode) SubTextData() SubTextData {
	var d SubTextData
	decodeData(n.Data, &d)
	if d.FontSize == "" {
		d.FontSize = DefaultSubTextSize
	}
	if d.Color == "" {
		d.Color = DefaultTextColor
	}
	if d.TextAlign == "" {
		d.TextAlign = DefaultSubTextAlign
	}
	if d.FontWeight == "" {
		d.FontWeight = DefaultSubTextWeight
	}
	return d
}

// ButtonData decodes the sub-node payload as a button variant.
func (n SubNode) ButtonData() ButtonData {
	var d ButtonData
	decodeData(n.Data, &d)
	return d
}
