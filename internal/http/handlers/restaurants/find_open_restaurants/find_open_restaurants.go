package findopenrestaurants

import (
	"errors"
	"net/http"
	e "openhours/internal/core/domain/errors"
	ratelimiter "openhours/internal/core/domain/rate_limiter"
	"openhours/internal/core/services"
	service "openhours/internal/core/services/find_open_restaurants"
	"openhours/internal/http/handlers/response"
	"time"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
	now     func() time.Time
}

func New(
	service services.Service[service.Input, service.Result],
	now func() time.Time,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Handler{service: service, now: now}
}

type Result struct {
	At          response.WeekPosition `json:"at"`
	Restaurants []response.Restaurant `json:"restaurants"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	at, err := parseAt(r.URL.Query().Get("at"), h.now)
	if err != nil {
		response.RenderBadRequest(rw, "invalid at query parameter, RFC 3339 expected")
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{At: at, ClientKey: r.RemoteAddr})
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	res := Result{Restaurants: make([]response.Restaurant, len(result.Restaurants))}
	res.At.FromDomainType(result.At)
	for ix, rest := range result.Restaurants {
		res.Restaurants[ix].FromDomainType(rest)
	}
	response.Render(rw, res, http.StatusOK)
}

func parseAt(raw string, now func() time.Time) (time.Time, error) {
	if raw == "" {
		return now(), nil
	}
	return time.Parse(time.RFC3339, raw)
}
