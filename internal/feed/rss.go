// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

/*
Package feed renders the syndication surfaces of the site: the RSS feed, the
XML sitemap, and robots.txt.

These endpoints serve crawlers and feed readers, not the API client, so they
bypass the JSON envelope and emit raw documents.
*/
package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"time"

	"github.com/nhatlepham/inkwell/internal/content"
	"github.com/nhatlepham/inkwell/pkg/pointer"
)

// feedItemLimit caps the RSS feed at the newest posts.
const feedItemLimit = 20

// Site carries the channel-level metadata rendered into the feed documents.
type Site struct {
	Name        string
	URL         string
	Description string
}

type Service struct {
	repo   content.Repository
	posts  *content.Service
	site   Site
	logger *slog.Logger
}

func NewService(repo content.Repository, posts *content.Service, site Site, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		posts:  posts,
		site:   site,
		logger: logger,
	}
}

// # RSS

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description,omitempty"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// RSS renders the channel document for the newest posts.
func (service *Service) RSS(ctx context.Context) ([]byte, error) {
	all := service.repo.ListAll()

	limit := feedItemLimit
	if len(all) < limit {
		limit = len(all)
	}

	items := make([]rssItem, 0, limit)
	for _, post := range all[:limit] {
		link := service.site.URL + post.URL
		items = append(items, rssItem{
			Title:       post.Title,
			Link:        link,
			Description: pointer.Val(post.Description),
			Category:    post.Category,
			PubDate:     post.Date.Format(time.RFC1123Z),
			GUID:        link,
		})
	}

	lastBuild := time.Now().Format(time.RFC1123Z)
	if len(all) > 0 {
		lastBuild = all[0].Date.Format(time.RFC1123Z)
	}

	document := rssDocument{
		Version: "2.0",
		Channel: rssChannel{
			Title:         service.site.Name,
			Link:          service.site.URL,
			Description:   service.site.Description,
			Language:      "en",
			LastBuildDate: lastBuild,
			Items:         items,
		},
	}

	return marshalDocument(document)
}

// marshalDocument serializes an XML document with the standard declaration.
func marshalDocument(document interface{}) ([]byte, error) {
	body, err := xml.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("feed: xml marshal failed: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
