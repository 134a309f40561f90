package discordhook

// embed.go contains the embed sub-builder for rich message content.

// Embed represents a rich content embed attached to a webhook message. Only
// the fields that can be sent are present; received-only fields such as video
// or provider are not part of this surface.
type Embed struct {
	Timestamp   *Timestamp      `json:"timestamp,omitempty"`
	Footer      *EmbedFooter    `json:"footer,omitempty"`
	Image       *EmbedImage     `json:"image,omitempty"`
	Thumbnail   *EmbedThumbnail `json:"thumbnail,omitempty"`
	Author      *EmbedAuthor    `json:"author,omitempty"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	URL         string          `json:"url,omitempty"`
	Fields      []EmbedField    `json:"fields,omitempty"`
	Color       int32           `json:"color,omitempty"`
}

func NewEmbed() *Embed {
	return &Embed{}
}

func (e *Embed) SetTitle(title string) *Embed {
	e.Title = title

	return e
}

func (e *Embed) SetDescription(description string) *Embed {
	e.Description = description

	return e
}

func (e *Embed) SetURL(url string) *Embed {
	e.URL = url

	return e
}

func (e *Embed) SetTimestamp(timestamp *Timestamp) *Embed {
	e.Timestamp = timestamp

	return e
}

func (e *Embed) SetColor(color int32) *Embed {
	e.Color = color

	return e
}

func (e *Embed) SetFooter(footer *EmbedFooter) *Embed {
	e.Footer = footer

	return e
}

func (e *Embed) SetImage(image *EmbedImage) *Embed {
	e.Image = image

	return e
}

func (e *Embed) SetThumbnail(thumbnail *EmbedThumbnail) *Embed {
	e.Thumbnail = thumbnail

	return e
}

func (e *Embed) SetAuthor(author *EmbedAuthor) *Embed {
	e.Author = author

	return e
}

func (e *Embed) AddField(field EmbedField) *Embed {
	e.Fields = append(e.Fields, field)

	return e
}

// Raw serializes the embed into the opaque value form the payload builder
// stores. The embed struct contains nothing that can fail to serialize.
func (e *Embed) Raw() EmbedValue {
	raw, _ := json.Marshal(e)

	return raw
}

// EmbedFooter represents the footer of an embed.
type EmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

func NewEmbedFooter(text, iconURL string) *EmbedFooter {
	return &EmbedFooter{
		Text:    text,
		IconURL: iconURL,
	}
}

// EmbedImage represents an image in an embed.
type EmbedImage struct {
	URL string `json:"url"`
}

func NewEmbedImage(url string) *EmbedImage {
	return &EmbedImage{
		URL: url,
	}
}

// EmbedThumbnail represents the thumbnail of an embed.
type EmbedThumbnail struct {
	URL string `json:"url"`
}

func NewEmbedThumbnail(url string) *EmbedThumbnail {
	return &EmbedThumbnail{
		URL: url,
	}
}

// EmbedAuthor represents the author of an embed.
type EmbedAuthor struct {
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

func NewEmbedAuthor(name, url, iconURL string) *EmbedAuthor {
	return &EmbedAuthor{
		Name:    name,
		URL:     url,
		IconURL: iconURL,
	}
}

// EmbedField represents a field in an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

func NewEmbedField(name, value string, inline bool) EmbedField {
	return EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}
