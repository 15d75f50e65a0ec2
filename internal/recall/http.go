package recall

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/recalldash/internal/platform/constants"
	requestutil "github.com/taibuivan/recalldash/internal/platform/request"
	"github.com/taibuivan/recalldash/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the recall API router. Everything is a public GET —
// the dashboard has no write path and no authenticated surface.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Browsing
	router.Get("/recalls", handler.listRecalls)
	router.Get("/recalls/makers", handler.listMakers)
	router.Get("/recalls/years", handler.yearBounds)

	// Statistics
	router.Get("/stats/kpi", handler.kpi)
	router.Get("/stats/makers", handler.makerRanking)
	router.Get("/stats/trend", handler.yearTrend)
	router.Get("/stats/models", handler.modelRanking)

	return router
}

// filterFromRequest collects the shared filter query parameters.
func filterFromRequest(request *http.Request) Filter {
	return Filter{
		Scope:  requestutil.QueryDefault(request, "scope", FilterAll),
		Maker:  requestutil.QueryDefault(request, "maker", FilterAll),
		Year:   requestutil.QueryIntPtr(request, "year"),
		Search: requestutil.Query(request, "q"),
	}
}

func (handler *Handler) listRecalls(writer http.ResponseWriter, request *http.Request) {
	filter := filterFromRequest(request)
	limit := requestutil.QueryInt(request, "limit", constants.DefaultRecallLimit)

	recalls, err := handler.service.ListRecalls(request.Context(), filter, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, recalls, len(recalls))
}

func (handler *Handler) listMakers(writer http.ResponseWriter, request *http.Request) {
	scope := requestutil.QueryDefault(request, "scope", FilterAll)

	makers, err := handler.service.ListMakers(request.Context(), scope)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, makers, len(makers))
}

func (handler *Handler) yearBounds(writer http.ResponseWriter, request *http.Request) {
	bounds, err := handler.service.YearBounds(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bounds)
}

func (handler *Handler) kpi(writer http.ResponseWriter, request *http.Request) {
	filter := filterFromRequest(request)

	summary, err := handler.service.KPI(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}

func (handler *Handler) makerRanking(writer http.ResponseWriter, request *http.Request) {
	filter := filterFromRequest(request)
	topN := requestutil.QueryInt(request, "top", constants.DefaultRankingTopN)

	ranking, err := handler.service.MakerRanking(request.Context(), filter, topN)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, ranking, len(ranking))
}

// yearTrend serves the per-year count series. Absent "from"/"to" parameters
// default to the known year bounds, mirroring the chart's full-range view.
func (handler *Handler) yearTrend(writer http.ResponseWriter, request *http.Request) {
	filter := filterFromRequest(request)

	from := requestutil.QueryIntPtr(request, "from")
	to := requestutil.QueryIntPtr(request, "to")

	if from == nil || to == nil {
		bounds, err := handler.service.YearBounds(request.Context())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		if from == nil {
			from = &bounds.MinYear
		}
		if to == nil {
			to = &bounds.MaxYear
		}
	}

	trend, err := handler.service.YearTrend(request.Context(), filter, *from, *to)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, trend, len(trend))
}

func (handler *Handler) modelRanking(writer http.ResponseWriter, request *http.Request) {
	filter := filterFromRequest(request)
	topN := requestutil.QueryInt(request, "top", constants.DefaultRankingTopN)

	ranking, err := handler.service.ModelRanking(request.Context(), filter, topN)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, ranking, len(ranking))
}
