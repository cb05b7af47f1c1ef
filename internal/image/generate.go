package image

import "context"

type Params struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	Size    string `json:"size,omitempty"`
	Quality string `json:"quality,omitempty"`
}

type Generator interface {
	Generate(context.Context, Params) ([]byte, error)
}
