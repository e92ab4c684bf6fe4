package elementpager

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RawOptions is the serializable form of Options, intended for configuration
// files and API payloads. Zero values keep the defaults; booleans are pointers
// so that an explicit false survives decoding.
//
// Both YAML and JSON documents are accepted:
//
//	itemsPerPage: 6
//	hideClass: customHideClass
//	toolbar:
//	  location: before
//	  showFirstLast: false
//	links:
//	  currentClass: customCurrentClass
type RawOptions struct {
	ItemsPerPage int            `json:"itemsPerPage" yaml:"itemsPerPage"`
	HideClass    string         `json:"hideClass" yaml:"hideClass"`
	Toolbar      RawToolbar     `json:"toolbar" yaml:"toolbar"`
	Links        RawLinkOptions `json:"links" yaml:"links"`
}

type RawToolbar struct {
	// Location - "before" or "after". Anything else resolves to "after".
	Location           string `json:"location" yaml:"location"`
	CSSClass           string `json:"cssClass" yaml:"cssClass"`
	LinkContainerClass string `json:"linkContainerClass" yaml:"linkContainerClass"`
	ShowNextPrevious   *bool  `json:"showNextPrevious" yaml:"showNextPrevious"`
	ShowFirstLast      *bool  `json:"showFirstLast" yaml:"showFirstLast"`
}

type RawLinkOptions struct {
	CurrentClass  string `json:"currentClass" yaml:"currentClass"`
	DisabledClass string `json:"disabledClass" yaml:"disabledClass"`
	Labels        Labels `json:"labels" yaml:"labels"`
}

// ParseRawOptions decodes a YAML (or JSON, which is valid YAML) document.
func ParseRawOptions(data []byte) (RawOptions, error) {
	var raw RawOptions
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return RawOptions{}, fmt.Errorf("failed to unmarshal pager options: %w", err)
	}

	return raw, nil
}

// LoadRawOptions reads and decodes the options file at path.
func LoadRawOptions(path string) (RawOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RawOptions{}, fmt.Errorf("failed to read pager options: %w", err)
	}

	return ParseRawOptions(data)
}

// DecodeOptions converts RawOptions into *Options[N], starting from
// DefaultOptions and overriding every non-zero field.
func DecodeOptions[N comparable](raw RawOptions) *Options[N] {
	opts := DefaultOptions[N]()

	if raw.ItemsPerPage != 0 {
		opts.WithItemsPerPage(raw.ItemsPerPage)
	}
	if raw.HideClass != "" {
		opts.HideClass = raw.HideClass
	}

	if raw.Toolbar.Location != "" {
		opts.Toolbar.Location = LocationKeyword[N](raw.Toolbar.Location)
	}
	if raw.Toolbar.CSSClass != "" {
		opts.Toolbar.CSSClass = raw.Toolbar.CSSClass
	}
	if raw.Toolbar.LinkContainerClass != "" {
		opts.Toolbar.LinkContainerClass = raw.Toolbar.LinkContainerClass
	}
	if raw.Toolbar.ShowNextPrevious != nil {
		opts.Toolbar.ShowNextPrevious = *raw.Toolbar.ShowNextPrevious
	}
	if raw.Toolbar.ShowFirstLast != nil {
		opts.Toolbar.ShowFirstLast = *raw.Toolbar.ShowFirstLast
	}

	if raw.Links.CurrentClass != "" {
		opts.Links.CurrentClass = raw.Links.CurrentClass
	}
	if raw.Links.DisabledClass != "" {
		opts.Links.DisabledClass = raw.Links.DisabledClass
	}
	opts.WithLabels(raw.Links.Labels)

	return opts
}

