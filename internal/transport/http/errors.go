package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeValidationFailed   = "validation_failed"
	codeInvalidTrainNo     = "invalid_train_no"
	codeTrainNameRequired  = "train_name_required"
	codeInvalidSeatCount   = "invalid_seat_count"
	codeInvalidFare        = "invalid_fare"
	codeDuplicateTrain     = "duplicate_train"
	codeTrainNotFound      = "train_not_found"
	codeBookingNotFound    = "booking_not_found"
	codeInsufficientSeats  = "insufficient_seats"
	codeInvalidTravelDate  = "invalid_travel_date"
	codeForbidden          = "forbidden"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
