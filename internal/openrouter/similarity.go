package openrouter

import (
	"context"
	"math"

	"go.uber.org/zap"
)

// embeddingDimensions is the vector size of the embedding model, used for
// zero-vector substitution on per-text failures.
const embeddingDimensions = 1536

// EmbedAll embeds each text with its own API call. A failed text yields a
// zero vector of the expected dimensionality instead of failing the whole
// batch; the output always has one vector per input.
func (c *Client) EmbedAll(ctx context.Context, texts []string) [][]float64 {
	vectors := make([][]float64, 0, len(texts))
	for _, text := range texts {
		vec, err := c.Embed(ctx, text)
		if err != nil {
			c.log.Warn("embedding failed, substituting zero vector", zap.Error(err))
			vec = make([]float64, embeddingDimensions)
		}
		vectors = append(vectors, vec)
	}
	return vectors
}

// Similarity embeds both texts and returns their cosine similarity. Unlike
// EmbedAll, embedding failures propagate so the caller can apply its own
// neutral fallback.
func (c *Client) Similarity(ctx context.Context, a, b string) (float64, error) {
	vecA, err := c.Embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vecB, err := c.Embed(ctx, b)
	if err != nil {
		return 0, err
	}
	return CosineSimilarity(vecA, vecB), nil
}

// CosineSimilarity computes the cosine of the angle between two vectors,
// clamped to [0,1]. A zero-norm vector has similarity 0 with anything.
func CosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if similarity < 0 {
		return 0
	}
	if similarity > 1 {
		return 1
	}
	return similarity
}
