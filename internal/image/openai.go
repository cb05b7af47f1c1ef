package image

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/samber/do"

	"imagebatch/internal/log"
)

// ErrNoImageData means the API response carried neither an inline
// payload nor a download URL.
var ErrNoImageData = errors.New("no image data returned")

type OpenAIGenerator struct {
	Client  *http.Client
	Key     string
	BaseURL string
}

func NewOpenAIGenerator(i *do.Injector) (Generator, error) {
	return &OpenAIGenerator{
		Client:  do.MustInvoke[*http.Client](i),
		Key:     do.MustInvokeNamed[string](i, "openai_api_key"),
		BaseURL: do.MustInvokeNamed[string](i, "openai_base_url"),
	}, nil
}

type generateRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size,omitempty"`
	Quality        string `json:"quality,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
}

type generateResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
		URL     string `json:"url"`
	} `json:"data"`
}

func (g *OpenAIGenerator) Generate(ctx context.Context, params Params) ([]byte, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("openai").With("model", params.Model)
	log.Info("generating image")

	gr := generateRequest{
		Model:   params.Model,
		Prompt:  params.Prompt,
		N:       1,
		Size:    params.Size,
		Quality: params.Quality,
	}
	// gpt-image-1* models reject response_format; only dall-e-* takes it.
	if strings.HasPrefix(params.Model, "dall-e") {
		gr.ResponseFormat = "b64_json"
	}

	body, err := json.Marshal(gr)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.Key)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("images api: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 {
		return nil, ErrNoImageData
	}

	item := out.Data[0]
	switch {
	case item.B64JSON != "":
		return base64.StdEncoding.DecodeString(item.B64JSON)
	case item.URL != "":
		log.Info("downloading image", "url", item.URL)
		return g.download(ctx, item.URL)
	default:
		return nil, ErrNoImageData
	}
}

func (g *OpenAIGenerator) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("image download: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
