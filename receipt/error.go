package receipt

import "errors"

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat output format is not text, json or yaml
var ErrUnknownFormat = errors.New("unknown format")
