package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/nhatlepham/inkwell/internal/platform/request"
	"github.com/nhatlepham/inkwell/internal/platform/respond"
	"github.com/nhatlepham/inkwell/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the post-browsing route group.
//
// # Endpoints
//   - GET /            : Paginated post listing with optional filters.
//   - GET /{path...}   : Single post by hierarchical path.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listPosts)
	router.Get("/*", handler.getPost)
	return router
}

// TaxonomyRoutes returns the browsing-aggregate route group mounted at the
// API root (mirrors the original site's category/tag/author listing pages).
func (handler *Handler) TaxonomyRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/categories", handler.listCategories)
	router.Get("/tags", handler.listTags)
	router.Get("/authors", handler.listAuthors)
	return router
}

// postResponse is the single-post payload including the markdown body.
type postResponse struct {
	*Post
	Body string `json:"body"`
}

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()
	filter := Filter{
		Category:     query.Get("category"),
		Tag:          query.Get("tag"),
		Author:       query.Get("author"),
		FeaturedOnly: query.Get("featured") == "true",
	}

	params := pagination.FromRequest(request)
	posts, meta := handler.service.ListPosts(request.Context(), filter, params)
	respond.Paginated(writer, posts, meta)
}

func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	segments := requestutil.PathSegments(request)

	post, err := handler.service.GetPost(request.Context(), segments)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, postResponse{Post: post, Body: post.Body})
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Categories(request.Context()))
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Tags(request.Context()))
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Authors(request.Context()))
}
