package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Coderush2004/railway-desk/internal/app"
	"github.com/Coderush2004/railway-desk/internal/domain"
)

// CatalogService is the minimal interface needed by the train endpoints.
type CatalogService interface {
	AddTrain(ctx context.Context, in app.AddTrainInput) (domain.Train, error)
	GetTrain(ctx context.Context, trainNo int) (domain.Train, error)
	ListTrains(ctx context.Context) ([]domain.Train, error)
}

// HandleTrains returns an HTTP handler for listing and adding trains.
func HandleTrains(svc CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			trains, err := svc.ListTrains(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]trainResponse, 0, len(trains))
			for _, t := range trains {
				resp = append(resp, newTrainResponse(t))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
		case http.MethodPost:
			var req addTrainRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}
			if err := validate.Struct(req); err != nil {
				writeError(w, http.StatusBadRequest, codeValidationFailed, validationMessage(err))
				return
			}

			train, err := svc.AddTrain(r.Context(), app.AddTrainInput{
				TrainNo:     req.TrainNo,
				Name:        req.Name,
				Source:      req.Source,
				Destination: req.Destination,
				TotalSeats:  req.TotalSeats,
				FarePerSeat: req.FarePerSeat,
			})
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrDuplicateTrainID):
					writeError(w, http.StatusConflict, codeDuplicateTrain, err.Error())
				case errors.Is(err, domain.ErrInvalidTrainNo):
					writeError(w, http.StatusBadRequest, codeInvalidTrainNo, err.Error())
				case errors.Is(err, domain.ErrTrainNameRequired):
					writeError(w, http.StatusBadRequest, codeTrainNameRequired, err.Error())
				case errors.Is(err, domain.ErrInvalidSeatCount):
					writeError(w, http.StatusBadRequest, codeInvalidSeatCount, err.Error())
				case errors.Is(err, domain.ErrInvalidFare):
					writeError(w, http.StatusBadRequest, codeInvalidFare, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newTrainResponse(train))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleTrainByNo returns an HTTP handler for fetching a single train.
func HandleTrainByNo(svc CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		trainNo, ok := parseTrainPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		train, err := svc.GetTrain(r.Context(), trainNo)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTrainNotFound), errors.Is(err, domain.ErrInvalidTrainNo):
				writeError(w, http.StatusNotFound, codeTrainNotFound, domain.ErrTrainNotFound.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newTrainResponse(train))
	}
}

func parseTrainPath(path string) (int, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] != "trains" {
		return 0, false
	}
	trainNo, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return trainNo, true
}

type addTrainRequest struct {
	TrainNo     int     `json:"train_no" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required"`
	Source      string  `json:"source" validate:"required"`
	Destination string  `json:"destination" validate:"required"`
	TotalSeats  int     `json:"total_seats" validate:"required,gt=0"`
	FarePerSeat float64 `json:"fare_per_seat" validate:"gte=0"`
}

type trainResponse struct {
	TrainNo        int     `json:"train_no"`
	Name           string  `json:"name"`
	Source         string  `json:"source"`
	Destination    string  `json:"destination"`
	TotalSeats     int     `json:"total_seats"`
	AvailableSeats int     `json:"available_seats"`
	FarePerSeat    float64 `json:"fare_per_seat"`
}

func newTrainResponse(t domain.Train) trainResponse {
	return trainResponse{
		TrainNo:        t.TrainNo,
		Name:           t.Name,
		Source:         t.Source,
		Destination:    t.Destination,
		TotalSeats:     t.TotalSeats,
		AvailableSeats: t.AvailableSeats,
		FarePerSeat:    t.FarePerSeat,
	}
}
