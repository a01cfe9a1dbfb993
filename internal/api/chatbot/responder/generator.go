package responder

import (
	"context"

	"CatalogChatbot/internal/api/chatbot/extractor"
	"CatalogChatbot/internal/api/chatbot/intent"
)

type Reply struct {
	Text     string
	Intent   intent.Intent
	Entities extractor.Entities
	Rule     string
}

// Generator turns one message into one reply. It holds no per-call state;
// the store passed to each call is the only thing it reads or writes.
type Generator struct {
	classifier *intent.Classifier
	extractor  *extractor.Extractor
}

func NewGenerator(classifier *intent.Classifier, entityExtractor *extractor.Extractor) *Generator {
	return &Generator{
		classifier: classifier,
		extractor:  entityExtractor,
	}
}

func (g *Generator) Generate(ctx context.Context, text string, store CatalogStore) (string, error) {
	reply, err := g.Respond(ctx, text, store)
	if err != nil {
		return "", err
	}
	return reply.Text, nil
}

// Respond is Generate with the classification, entities and rule name that
// produced the text. Store errors are returned unchanged.
func (g *Generator) Respond(ctx context.Context, text string, store CatalogStore) (Reply, error) {
	t := turn{
		text:     text,
		intent:   g.classifier.Classify(text),
		entities: g.extractor.Extract(text),
	}

	reply := Reply{
		Intent:   t.intent,
		Entities: t.entities,
	}

	for _, r := range rules {
		if !r.match(t) {
			continue
		}

		answer, err := r.handle(ctx, store, t)
		if err != nil {
			return reply, err
		}

		reply.Text = answer
		reply.Rule = r.name
		return reply, nil
	}

	return reply, nil
}
