package yt

import (
	"context"

	"github.com/patrickprogramme/vttscribe/pkg/model"
)

// Interface est l'abstraction utilisée par l'application. Elle facilite le test
// en autorisant une implémentation factice dans les tests.
type Interface interface {
	CheckBinary() error
	GetVersion(ctx context.Context) (string, error)
	ExtractRaw(ctx context.Context, url string) (*ExtractedRaw, error)
	ListChannel(ctx context.Context, channelURL string, limit int) ([]model.VideoEntry, error)
}
