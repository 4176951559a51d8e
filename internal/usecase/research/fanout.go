package research

import (
	"context"
	"fmt"
	"sync"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// branch is one outbound search of a fan-out.
type branch struct {
	name  string
	kind  entity.SearchKind
	query string
}

type branchResult struct {
	branch
	resp *entity.SearchResponse
	err  error
}

// fanOut runs every branch concurrently and waits for all of them. A failed
// branch yields an empty response and never fails the whole call.
func (uc *ResearchUsecase) fanOut(ctx context.Context, location string, branches []branch) []branchResult {
	results := make([]branchResult, len(branches))

	var wg sync.WaitGroup
	for i, b := range branches {
		wg.Add(1)
		go func(i int, b branch) {
			defer wg.Done()
			resp, err := uc.search.Search(ctx, b.kind, b.query, location)
			if err != nil {
				ctxzap.Warn(ctx, "search branch failed, using empty result",
					zap.String("branch", b.name),
					zap.String("query", b.query),
					zap.Error(err),
				)
				resp = &entity.SearchResponse{}
				err = fmt.Errorf("%w: %s: %w", entity.ErrSearchBranchFailed, b.name, err)
			}
			results[i] = branchResult{branch: b, resp: resp, err: err}
		}(i, b)
	}
	wg.Wait()

	return results
}

// collect groups branch results by search kind and fills the counters.
func collect(results []branchResult) (entity.ResearchRawData, entity.ResearchMetadata) {
	raw := entity.ResearchRawData{
		SearchResults: []*entity.SearchResponse{},
		NewsResults:   []*entity.SearchResponse{},
		ImageResults:  []*entity.SearchResponse{},
	}
	meta := entity.ResearchMetadata{FailedBranches: []string{}}

	for _, r := range results {
		if r.err != nil {
			meta.FailedBranches = append(meta.FailedBranches, r.name)
		}
		switch r.kind {
		case entity.SearchNews:
			raw.NewsResults = append(raw.NewsResults, r.resp)
			meta.NewsResultsCount += len(r.resp.News)
		case entity.SearchImages:
			raw.ImageResults = append(raw.ImageResults, r.resp)
			meta.ImageResultsCount += len(r.resp.Images)
		default:
			raw.SearchResults = append(raw.SearchResults, r.resp)
			meta.SearchResultsCount += len(r.resp.Organic)
		}
	}
	meta.Degraded = len(meta.FailedBranches) > 0
	return raw, meta
}
