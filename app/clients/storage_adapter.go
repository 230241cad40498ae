package clients

import (
	"context"

	"phrase-svc/app/domains"
)

// PhraseStore defines the whole-document storage contract for phrases.
// Save replaces everything previously stored.
type PhraseStore interface {
	Load(ctx context.Context) (domains.PhraseBook, error)
	Save(ctx context.Context, book domains.PhraseBook) error
}

