package panel

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cozy-creator/comfy-panel/internal/github"
	"github.com/cozy-creator/comfy-panel/internal/view"
)

const resetLayout = "15:04:05"

// SearchAuthor looks up an author's node repositories and renders them as
// installable cards. Rate limiting and API failures are rendered into the
// results region; an empty result is not an error.
func (p *Panel) SearchAuthor(ctx context.Context, ctl Control, d Display, author string) error {
	author, err := p.required(d, author, "search.enter_author")
	if err != nil {
		return err
	}

	release := Busy(ctl, p.loc.T("search.searching"))
	defer release()

	result, err := p.searcher.SearchByAuthor(ctx, author)
	release()

	if err != nil {
		p.logger.Warn("author search failed", zap.String("author", author), zap.Error(err))
		_ = p.render(d, RegionSearch, view.Search, view.SearchFailure(author, p.searchErrorMessage(err)))
		return fmt.Errorf("search %q: %w", author, err)
	}

	return p.render(d, RegionSearch, view.Search, view.NewSearchResults(author, result))
}

func (p *Panel) searchErrorMessage(err error) string {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		if rateErr.Reset.IsZero() {
			return p.loc.T("search.rate_limited_unknown")
		}
		return p.loc.T("search.rate_limited", rateErr.Reset.In(p.location).Format(resetLayout))
	}

	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return p.loc.T("search.failed", apiErr.Message)
		}
		return p.loc.T("search.failed_generic")
	}

	return p.loc.T("common.network_error", err.Error())
}
