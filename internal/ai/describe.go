// Package ai drafts promotional dish descriptions through the configured
// language model. It is the only asynchronous external collaborator in the
// system and it fails soft: callers always get usable text.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// FallbackDescription is returned whenever generation fails.
const FallbackDescription = "Descrição indisponível no momento."

// ErrEmptyDishName rejects a generation request before any external call.
var ErrEmptyDishName = fmt.Errorf("dish name is required")

// Description is the outcome of a generation request. Generated
// distinguishes model output from the fixed placeholder so callers can tell
// the two apart; Reason carries the failure cause for fallbacks.
type Description struct {
	Text      string `json:"text"`
	Generated bool   `json:"generated"`
	Reason    string `json:"reason,omitempty"`
}

// Generator wraps the language model behind the one operation the product
// needs.
type Generator struct {
	model llms.LLM
}

// New returns a generator over the given model. A nil model is allowed and
// makes every request fall back, for deployments without an API key.
func New(model llms.LLM) *Generator {
	return &Generator{model: model}
}

// Describe asks the model for a short promotional description of the dish.
// An empty name is a validation error and no call is made. Any model
// failure degrades to the fixed fallback text; the raw error is never
// surfaced to the customer.
func (g *Generator) Describe(ctx context.Context, name, category string) (Description, error) {
	if strings.TrimSpace(name) == "" {
		return Description{}, ErrEmptyDishName
	}
	if g.model == nil {
		return Description{Text: FallbackDescription, Reason: "no model configured"}, nil
	}

	prompt := fmt.Sprintf(`Escreva uma descrição apetitosa e vendedora para um prato de restaurante.
Nome do prato: %s
Categoria: %s

A descrição deve ter no máximo 25 palavras.
Use português de Angola ou Portugal.
Foque no sabor e frescura.
Não use aspas na resposta.`, name, category)

	text, err := g.model.Call(ctx, prompt)
	if err != nil {
		return Description{Text: FallbackDescription, Reason: err.Error()}, nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Description{Text: FallbackDescription, Reason: "empty model response"}, nil
	}
	return Description{Text: text, Generated: true}, nil
}
