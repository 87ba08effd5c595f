/*
# Module: services/description.go
AI-generated activity descriptions with a static fallback.

## Linked Modules
- [clients/openai](../clients/openai.go) - OpenAI chat completions client

## Tags
business-logic, ai, description

## Exports
DescriptionService, NewDescriptionService, ChatCompleter, Describe

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "services/description.go" ;
    code:description "AI-generated activity descriptions with a static fallback" ;
    code:linksTo [
        code:name "clients/openai" ;
        code:path "../clients/openai.go" ;
        code:relationship "OpenAI chat completions client"
    ] ;
    code:exports :DescriptionService, :NewDescriptionService, :ChatCompleter, :Describe ;
    code:tags "business-logic", "ai", "description" .
<!-- End LinkedDoc RDF -->
*/
package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"recreo/clients"
)

const (
	descriptionModel     = "gpt-3.5-turbo"
	descriptionMaxTokens = 100

	fallbackDescription = "Description unavailable."
)

// ChatCompleter is the text-generation transport this service needs.
// *clients.OpenAIClient satisfies it.
type ChatCompleter interface {
	ChatCompletion(model string, messages []clients.ChatMessage, maxTokens int) (string, error)
}

// DescriptionService generates short activity descriptions
type DescriptionService struct {
	ai ChatCompleter
}

// NewDescriptionService creates a new description service. A nil client
// means a fresh OpenAI client is built per call with OPENAI_API_KEY, so the
// key can be rotated without a restart.
func NewDescriptionService(ai ChatCompleter) *DescriptionService {
	return &DescriptionService{ai: ai}
}

// Describe returns a short description of the named activity. Any generation
// failure, a missing API key included, degrades to a static fallback so the
// detail page never fails on AI errors.
func (s *DescriptionService) Describe(name string) string {
	ai := s.ai
	if ai == nil {
		ai = clients.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	}

	prompt := fmt.Sprintf("Write a short, engaging description of the outdoor activity '%s'.", name)
	content, err := ai.ChatCompletion(descriptionModel, []clients.ChatMessage{
		{Role: "user", Content: prompt},
	}, descriptionMaxTokens)
	if err != nil {
		log.Printf("⚠️  Description generation failed for %q: %v", name, err)
		return fallbackDescription
	}

	return strings.TrimSpace(content)
}
