package rehost

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/relforge/herald/internal/core"
)

// AssetFetcher is the slice of the GitHub client the rehoster needs.
type AssetFetcher interface {
	DownloadAsset(ctx context.Context, url string) ([]byte, error)
}

// attachmentURLRegex matches GitHub attachment URLs as they appear in PR and
// issue bodies: the modern user-attachments form and the older
// user-images.githubusercontent.com form.
var attachmentURLRegex = regexp.MustCompile(
	`https://(?:github\.com/user-attachments/assets/[A-Za-z0-9-]+|user-images\.githubusercontent\.com/[^\s)"'<>]+)`)

// Rehoster copies GitHub attachments to the CDN, deduplicating by original
// URL for the lifetime of one run. It is not safe for concurrent use; the
// pipelines are sequential by design.
type Rehoster struct {
	fetcher AssetFetcher
	cdn     CDN
	logger  *slog.Logger

	// cache maps original URL to rehosted asset. One entry per URL per
	// run, including URLs seen in several entries.
	cache map[string]core.MediaAsset
}

// NewRehoster builds a rehoster with an empty per-run cache.
func NewRehoster(fetcher AssetFetcher, cdn CDN, logger *slog.Logger) *Rehoster {
	return &Rehoster{
		fetcher: fetcher,
		cdn:     cdn,
		logger:  logger,
		cache:   make(map[string]core.MediaAsset),
	}
}

// Rehost fetches one attachment and uploads it to the CDN under a
// content-addressed name. The returned asset's HostedURL falls back to the
// original URL when anything fails; rehosting is never fatal to a run.
func (r *Rehoster) Rehost(ctx context.Context, originalURL string) core.MediaAsset {
	if asset, ok := r.cache[originalURL]; ok {
		return asset
	}

	asset := core.MediaAsset{OriginalURL: originalURL, HostedURL: originalURL}

	data, err := r.fetcher.DownloadAsset(ctx, originalURL)
	if err != nil {
		r.logger.Warn("failed to fetch asset, keeping original URL", "url", originalURL, "error", err)
		r.cache[originalURL] = asset
		return asset
	}

	contentType := http.DetectContentType(data)
	asset.Kind = kindFor(contentType)

	sum := sha256.Sum256(data)
	name := hex.EncodeToString(sum[:]) + extensionFor(contentType)

	hostedURL, err := r.cdn.Upload(ctx, name, contentType, data)
	if err != nil {
		r.logger.Warn("failed to upload asset, keeping original URL", "url", originalURL, "error", err)
		r.cache[originalURL] = asset
		return asset
	}

	asset.HostedURL = hostedURL
	r.cache[originalURL] = asset
	r.logger.Info("rehosted asset", "original", originalURL, "hosted", hostedURL, "kind", asset.Kind)
	return asset
}

// RewriteMarkdown replaces every GitHub attachment URL in a markdown body
// with its rehosted counterpart. URLs that fail to rehost stay as they are.
func (r *Rehoster) RewriteMarkdown(ctx context.Context, markdown string) (string, []core.MediaAsset) {
	var assets []core.MediaAsset
	seen := make(map[string]struct{})

	rewritten := attachmentURLRegex.ReplaceAllStringFunc(markdown, func(url string) string {
		asset := r.Rehost(ctx, url)
		if _, dup := seen[url]; !dup {
			seen[url] = struct{}{}
			assets = append(assets, asset)
		}
		return asset.HostedURL
	})

	return rewritten, assets
}

// CachedAssets returns everything rehosted so far this run, for reuse by a
// later pipeline stage such as the slide builder.
func (r *Rehoster) CachedAssets() []core.MediaAsset {
	assets := make([]core.MediaAsset, 0, len(r.cache))
	for _, a := range r.cache {
		assets = append(assets, a)
	}
	return assets
}

func kindFor(contentType string) core.MediaKind {
	if strings.HasPrefix(contentType, "video/") {
		return core.MediaVideo
	}
	return core.MediaImage
}

// extensionFor picks a file extension from the sniffed content type. The
// CDN serves by content type anyway; the extension is for humans reading
// the URL.
func extensionFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/png"):
		return ".png"
	case strings.HasPrefix(contentType, "image/jpeg"):
		return ".jpg"
	case strings.HasPrefix(contentType, "image/gif"):
		return ".gif"
	case strings.HasPrefix(contentType, "image/webp"):
		return ".webp"
	case strings.HasPrefix(contentType, "video/mp4"):
		return ".mp4"
	case strings.HasPrefix(contentType, "video/webm"):
		return ".webm"
	default:
		return ".bin"
	}
}
