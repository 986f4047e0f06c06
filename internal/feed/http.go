package feed

import (
	"net/http"

	"github.com/nhatlepham/inkwell/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// FeedXML serves the RSS channel document.
func (handler *Handler) FeedXML(writer http.ResponseWriter, request *http.Request) {
	body, err := handler.service.RSS(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.XML(writer, http.StatusOK, "application/rss+xml; charset=utf-8", body)
}

// SitemapXML serves the crawl map.
func (handler *Handler) SitemapXML(writer http.ResponseWriter, request *http.Request) {
	body, err := handler.service.Sitemap(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.XML(writer, http.StatusOK, "application/xml; charset=utf-8", body)
}

// RobotsTxt serves the crawler policy.
func (handler *Handler) RobotsTxt(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write(handler.service.Robots())
}
