package visitor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nhatlepham/inkwell/internal/platform/middleware"
	"github.com/nhatlepham/inkwell/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the visitor identity route group.
//
// # Endpoints
//   - POST / : Mint a fresh anonymous visitor identity.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.mint)
	return router
}

func (handler *Handler) mint(writer http.ResponseWriter, request *http.Request) {
	identity, err := handler.service.Mint(
		request.Context(),
		request.UserAgent(),
		request.Header.Get("Accept-Language"),
		middleware.RealIP(request),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, identity)
}
