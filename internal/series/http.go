package series

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/nhatlepham/inkwell/internal/platform/request"
	"github.com/nhatlepham/inkwell/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the series route group.
//
// # Endpoints
//   - GET /                    : All multi-post series, summarized.
//   - GET /{group}             : One resolved series by its folder name.
//   - GET /resolve/{path...}   : Series navigation for a single post.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listSeries)
	router.Get("/resolve/*", handler.resolveForPost)
	router.Get("/{group}", handler.getSeries)
	return router
}

func (handler *Handler) listSeries(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.List(request.Context()))
}

func (handler *Handler) getSeries(writer http.ResponseWriter, request *http.Request) {
	groupKey := requestutil.Param(request, "group")

	info, err := handler.service.Get(request.Context(), groupKey)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, info)
}

// resolveResponse wraps the nullable series payload so standalone posts get
// an explicit null instead of a missing field.
type resolveResponse struct {
	Series *Info `json:"series"`
}

func (handler *Handler) resolveForPost(writer http.ResponseWriter, request *http.Request) {
	segments := requestutil.PathSegments(request)

	info, err := handler.service.ResolveForPost(request.Context(), segments)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, resolveResponse{Series: info})
}
