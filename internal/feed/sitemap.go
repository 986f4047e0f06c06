// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

package feed

import (
	"context"
	"encoding/xml"
	"fmt"
)

// sitemapNamespace is the sitemaps.org protocol namespace.
const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Crawl priorities per page class. Posts outrank taxonomy listings.
const (
	priorityHome       = "1.0"
	priorityPost       = "0.8"
	priorityCategories = "0.7"
	priorityTags       = "0.6"
	priorityAuthors    = "0.5"
)

type sitemapDocument struct {
	XMLName   xml.Name     `xml:"urlset"`
	Namespace string       `xml:"xmlns,attr"`
	URLs      []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
	Priority string `xml:"priority"`
}

// Sitemap renders the crawl map: home page, every post, and every taxonomy
// listing page.
func (service *Service) Sitemap(ctx context.Context) ([]byte, error) {
	all := service.repo.ListAll()

	urls := make([]sitemapURL, 0, len(all)+16)
	urls = append(urls, sitemapURL{Loc: service.site.URL + "/", Priority: priorityHome})

	for _, post := range all {
		urls = append(urls, sitemapURL{
			Loc:      service.site.URL + post.URL,
			LastMod:  post.Date.Format("2006-01-02"),
			Priority: priorityPost,
		})
	}

	for _, stat := range service.posts.Categories(ctx) {
		urls = append(urls, sitemapURL{
			Loc:      fmt.Sprintf("%s/categories/%s", service.site.URL, stat.Slug),
			Priority: priorityCategories,
		})
	}
	for _, stat := range service.posts.Tags(ctx) {
		urls = append(urls, sitemapURL{
			Loc:      fmt.Sprintf("%s/tags/%s", service.site.URL, stat.Slug),
			Priority: priorityTags,
		})
	}
	for _, stat := range service.posts.Authors(ctx) {
		urls = append(urls, sitemapURL{
			Loc:      fmt.Sprintf("%s/authors/%s", service.site.URL, stat.Slug),
			Priority: priorityAuthors,
		})
	}

	return marshalDocument(sitemapDocument{
		Namespace: sitemapNamespace,
		URLs:      urls,
	})
}

// Robots renders the crawler policy pointing at the sitemap.
func (service *Service) Robots() []byte {
	return []byte(fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", service.site.URL))
}
