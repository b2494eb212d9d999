package embedding

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
)

// RemoteEmbedder calls an external embeddings HTTP service. The service is
// expected to accept {"text": "..."} and answer {"embedding": [...]}.
type RemoteEmbedder struct {
	client *utils.HTTPClient
	url    string
	dim    int
}

type embedRequest struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// NewRemoteEmbedder constructs a [RemoteEmbedder] from the embedder
// configuration. dim is the dimensionality the index expects; responses of
// any other length are rejected.
func NewRemoteEmbedder(cfg config.Embedder, dim int) *RemoteEmbedder {
	client := utils.NewHTTPClient()
	if cfg.RemoteTimeout > 0 {
		client.SetTimeout(cfg.RemoteTimeout)
	}

	return &RemoteEmbedder{
		client: client,
		url:    cfg.RemoteURL,
		dim:    dim,
	}
}

// Embed implements [Embedder].
func (e *RemoteEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	var result embedResponse

	resp, err := e.client.R().
		SetContext(ctx).
		SetBody(embedRequest{Text: text}).
		SetResult(&result).
		Post(e.url)
	if err != nil {
		return nil, fmt.Errorf("remote embedding call failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("remote embedding service returned %s", resp.Status())
	}

	if len(result.Embedding) != e.dim {
		return nil, fmt.Errorf("remote embedding has %d dimensions, want %d", len(result.Embedding), e.dim)
	}

	return result.Embedding, nil
}

// Dim implements [Embedder].
func (e *RemoteEmbedder) Dim() int {
	return e.dim
}
