package checkhours

import (
	"errors"
	"io"
	"net/http"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	ratelimiter "openhours/internal/core/domain/rate_limiter"
	"openhours/internal/core/services"
	service "openhours/internal/core/services/check_hours"
	"openhours/internal/http/handlers/response"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goccy/go-json"
)

const MAX_HOURS_LENGTH = 1024

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

type Input struct {
	Hours string     `json:"hours"`
	At    *time.Time `json:"at"`
}

func (i *Input) FromJSON(r io.Reader) error {
	return json.NewDecoder(io.LimitReader(r, 4*MAX_HOURS_LENGTH)).Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Hours, validation.Required, validation.Length(1, MAX_HOURS_LENGTH)),
	)
}

type Result struct {
	Intervals []response.Interval   `json:"intervals"`
	Rest      string                `json:"rest"`
	At        response.WeekPosition `json:"at"`
	IsOpen    bool                  `json:"is_open"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderBadRequest(rw, "invalid request data")
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	at := h.now()
	if input.At != nil {
		at = *input.At
	}
	result, err := h.service.Run(
		r.Context(),
		service.Input{Hours: input.Hours, At: at, ClientKey: r.RemoteAddr},
	)
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrParsing):
			response.RenderUnparseableHours(rw)
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	res := Result{
		Intervals: response.NewIntervals(result.Intervals),
		Rest:      result.Rest,
		IsOpen:    result.IsOpen,
	}
	res.At.FromDomainType(result.At)
	response.Render(rw, res, http.StatusOK)
}
