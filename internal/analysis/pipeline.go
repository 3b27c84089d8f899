package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"trendsight/internal/brands"
	"trendsight/internal/charts"
	"trendsight/internal/content"
	"trendsight/internal/keywords"
	"trendsight/internal/models"
	"trendsight/internal/sentiment"
)

const DefaultMaxKeywords = 10

// ReportCache is an optional short-TTL cache in front of the pipeline.
// Reports are deterministic for identical inputs, so serving a cached one
// is indistinguishable from recomputing it.
type ReportCache interface {
	Get(ctx context.Context, key string) (*models.AnalysisReport, bool)
	Set(ctx context.Context, key string, report *models.AnalysisReport)
}

// Pipeline is the content-to-insight flow: load once, run the three
// analyzers over the same immutable document, aggregate into one report.
type Pipeline struct {
	loader      *content.Loader
	watchlist   models.BrandWatchlist
	maxKeywords int
	cache       ReportCache
}

func NewPipeline(loader *content.Loader, watchlist models.BrandWatchlist, maxKeywords int, cache ReportCache) *Pipeline {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	return &Pipeline{
		loader:      loader,
		watchlist:   watchlist,
		maxKeywords: maxKeywords,
		cache:       cache,
	}
}

// Run executes one submission end to end. A loader error aborts before any
// analyzer runs; an analyzer error aborts aggregation. No partial reports.
func (p *Pipeline) Run(ctx context.Context, session models.Session, input models.RawInput) (*models.AnalysisReport, error) {
	start := time.Now()

	doc, err := p.loader.Load(ctx, input)
	if err != nil {
		return nil, err
	}

	cacheKey := reportCacheKey(doc, p.watchlist, p.maxKeywords)
	if p.cache != nil {
		if report, ok := p.cache.Get(ctx, cacheKey); ok {
			slog.Info("[Pipeline] Serving cached report",
				slog.String("user", session.Email),
				slog.String("cache_key", cacheKey))
			return report, nil
		}
	}

	var (
		sentimentResult models.SentimentResult
		keywordSet      models.KeywordSet
		hashtagSet      models.HashtagSet
		mentionTable    models.BrandMentionTable
	)

	// The three analyzers are pure functions of the same document; run them
	// concurrently and join before aggregating.
	g, _ := errgroup.WithContext(ctx)
	g.Go(stage("sentiment", func() {
		sentimentResult = sentiment.Analyze(doc)
	}))
	g.Go(stage("keywords", func() {
		keywordSet, hashtagSet = keywords.Extract(doc, p.maxKeywords)
	}))
	g.Go(stage("brands", func() {
		mentionTable = brands.Track(doc, p.watchlist)
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &models.AnalysisReport{
		Document:      doc,
		Sentiment:     sentimentResult,
		Keywords:      keywordSet,
		Hashtags:      hashtagSet,
		BrandMentions: mentionTable,
		Charts: models.ReportCharts{
			Sentiment:     charts.SentimentSeries(sentimentResult),
			BrandMentions: charts.BrandSeries(mentionTable),
		},
	}

	if p.cache != nil {
		p.cache.Set(ctx, cacheKey, report)
	}

	slog.Info("[Pipeline] Report generated",
		slog.String("user", session.Email),
		slog.Int("keywords", len(keywordSet)),
		slog.Duration("duration", time.Since(start)))

	return report, nil
}

// stage wraps an analyzer call so a library-internal panic surfaces as an
// AnalysisError naming the failed stage instead of crashing the server.
func stage(name string, fn func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &AnalysisError{Stage: name, Err: fmt.Errorf("%v", r)}
			}
		}()
		fn()
		return nil
	}
}
