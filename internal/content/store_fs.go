// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/nhatlepham/inkwell/internal/platform/constants"
)

// frontMatter mirrors the YAML block at the top of every content file.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Description *string  `yaml:"description"`
	Author      string   `yaml:"author"`
	Date        string   `yaml:"date"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	ReadingTime *string  `yaml:"readingTime"`
	Featured    bool     `yaml:"featured"`
	Image       *string  `yaml:"image"`
}

// FSRepository is the filesystem-backed [Repository] implementation.
//
// The whole content tree is parsed once at construction into an immutable
// in-memory snapshot, mirroring static-site loader semantics: content only
// changes on deploy, so per-request filesystem access buys nothing.
type FSRepository struct {
	posts     []*Post          // newest first
	byKey     map[string]*Post // key = path joined with "/"
	manifests map[string]*SeriesManifest
	logger    *slog.Logger
}

// NewFSRepository walks the content directory and loads every post and
// series manifest.
//
// # Failure semantics
//
// A missing directory is fatal (misconfiguration). Individual unparsable
// posts or manifests are logged and skipped: one bad file must never take
// the site down.
func NewFSRepository(dir string, logger *slog.Logger) (*FSRepository, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content: cannot open content dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content: %s is not a directory", dir)
	}

	repository := &FSRepository{
		byKey:     make(map[string]*Post),
		manifests: make(map[string]*SeriesManifest),
		logger:    logger,
	}

	walkErr := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		relative, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		// Normalize to forward slashes so keys are stable across platforms.
		relative = filepath.ToSlash(relative)

		switch {
		case strings.HasSuffix(relative, constants.ContentFileExtension):
			repository.loadPost(path, relative)
		case filepath.Base(relative) == constants.SeriesManifestFile:
			repository.loadManifest(path, relative)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("content: walking content dir failed: %w", walkErr)
	}

	// Snapshot order: newest first, key as the stable tiebreaker.
	sort.SliceStable(repository.posts, func(i, j int) bool {
		if !repository.posts[i].Date.Equal(repository.posts[j].Date) {
			return repository.posts[i].Date.After(repository.posts[j].Date)
		}
		return repository.posts[i].Key < repository.posts[j].Key
	})

	logger.Info("content_loaded",
		slog.Int("posts", len(repository.posts)),
		slog.Int("manifests", len(repository.manifests)),
	)

	return repository, nil
}

// ListAll implements [Repository].
func (repository *FSRepository) ListAll() []*Post {
	return repository.posts
}

// GetByPath implements [Repository].
func (repository *FSRepository) GetByPath(segments []string) (*Post, bool) {
	post, ok := repository.byKey[strings.Join(segments, "/")]
	return post, ok
}

// GetManifest implements [Repository].
func (repository *FSRepository) GetManifest(groupKey string) (*SeriesManifest, bool) {
	manifest, ok := repository.manifests[groupKey]
	return manifest, ok
}

// loadPost parses a single markdown file into a [Post]. Failures are logged
// and the file is skipped.
func (repository *FSRepository) loadPost(path, relative string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		repository.logger.Warn("content_post_skipped", slog.String("file", relative), slog.Any("error", err))
		return
	}

	matter, body, err := splitFrontMatter(string(raw))
	if err != nil {
		repository.logger.Warn("content_post_skipped", slog.String("file", relative), slog.Any("error", err))
		return
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(matter), &fm); err != nil {
		repository.logger.Warn("content_post_skipped", slog.String("file", relative), slog.Any("error", err))
		return
	}

	if strings.TrimSpace(fm.Title) == "" {
		repository.logger.Warn("content_post_skipped",
			slog.String("file", relative),
			slog.String("reason", "missing required title"),
		)
		return
	}

	date, err := parseDate(fm.Date)
	if err != nil {
		repository.logger.Warn("content_post_skipped", slog.String("file", relative), slog.Any("error", err))
		return
	}

	key := strings.TrimSuffix(relative, constants.ContentFileExtension)
	segments := strings.Split(key, "/")

	group := ""
	if len(segments) >= 2 {
		group = segments[0]
	}

	author := strings.TrimSpace(fm.Author)
	if author == "" {
		author = constants.DefaultAuthor
	}

	post := &Post{
		Path:        segments,
		Key:         key,
		Group:       group,
		URL:         "/" + key,
		Title:       fm.Title,
		Description: fm.Description,
		Author:      author,
		Date:        date,
		Category:    fm.Category,
		Tags:        fm.Tags,
		ReadingTime: fm.ReadingTime,
		Featured:    fm.Featured,
		Image:       fm.Image,
		Body:        body,
	}

	repository.posts = append(repository.posts, post)
	repository.byKey[key] = post
}

// loadManifest parses a per-group meta.json file. A manifest missing the
// required title is treated as absent per the series fallback contract.
func (repository *FSRepository) loadManifest(path, relative string) {
	groupKey := filepath.ToSlash(filepath.Dir(relative))
	if groupKey == "." || strings.Contains(groupKey, "/") {
		// Manifests only apply to top-level group folders.
		repository.logger.Warn("series_manifest_ignored", slog.String("file", relative))
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		repository.logger.Warn("series_manifest_skipped", slog.String("group", groupKey), slog.Any("error", err))
		return
	}

	var manifest SeriesManifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		repository.logger.Warn("series_manifest_skipped", slog.String("group", groupKey), slog.Any("error", err))
		return
	}

	if strings.TrimSpace(manifest.Title) == "" {
		repository.logger.Warn("series_manifest_skipped",
			slog.String("group", groupKey),
			slog.String("reason", "missing required title"),
		)
		return
	}

	repository.manifests[groupKey] = &manifest
}

// splitFrontMatter separates the leading YAML block from the markdown body.
//
// Files must start with a "---" line and close the block with another.
func splitFrontMatter(raw string) (matter, body string, err error) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")

	if !strings.HasPrefix(normalized, "---\n") {
		return "", "", fmt.Errorf("missing front matter block")
	}

	rest := normalized[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", "", fmt.Errorf("unterminated front matter block")
	}

	matter = rest[:end]
	body = rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")
	return matter, body, nil
}

// parseDate accepts the two date shapes the content tree uses.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("missing required date")
	}

	if date, err := time.Parse("2006-01-02", value); err == nil {
		return date, nil
	}

	date, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", value)
	}
	return date, nil
}
