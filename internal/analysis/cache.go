package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"trendsight/internal/clients"
	"trendsight/internal/models"
)

// reportCacheKey hashes everything a report depends on: the normalized
// text, the brand watchlist, and the keyword bound. Every part is length
// prefixed before hashing so no combination of inputs can collide with
// another by shifting bytes across part boundaries.
func reportCacheKey(doc models.NormalizedDocument, watchlist models.BrandWatchlist, maxKeywords int) string {
	var b strings.Builder
	writePart := func(part string) {
		fmt.Fprintf(&b, "%d:%s", len(part), part)
	}

	writePart(doc.Text)
	for _, brand := range watchlist {
		writePart(brand.Name)
		for _, alias := range brand.Aliases {
			writePart(alias)
		}
	}
	fmt.Fprintf(&b, "k%d", maxKeywords)

	hash := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(hash[:])
}

// ValkeyReportCache stores serialized reports in Valkey with a short TTL.
// Failures are logged and ignored; the cache is never load-bearing.
type ValkeyReportCache struct {
	client *clients.ValkeyClient
}

func NewValkeyReportCache(client *clients.ValkeyClient) *ValkeyReportCache {
	return &ValkeyReportCache{client: client}
}

func (c *ValkeyReportCache) Get(ctx context.Context, key string) (*models.AnalysisReport, bool) {
	payload, ok := c.client.GetCachedReport(ctx, key)
	if !ok {
		return nil, false
	}

	var report models.AnalysisReport
	if err := json.Unmarshal(payload, &report); err != nil {
		slog.Warn("[ReportCache] Failed to decode cached report",
			slog.String("cache_key", key),
			slog.String("error", err.Error()))
		return nil, false
	}

	return &report, true
}

func (c *ValkeyReportCache) Set(ctx context.Context, key string, report *models.AnalysisReport) {
	payload, err := json.Marshal(report)
	if err != nil {
		slog.Warn("[ReportCache] Failed to encode report",
			slog.String("error", err.Error()))
		return
	}

	if err := c.client.CacheReport(ctx, key, payload); err != nil {
		slog.Warn("[ReportCache] Failed to store report",
			slog.String("cache_key", key),
			slog.String("error", err.Error()))
	}
}
