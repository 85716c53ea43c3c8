package apperrors

import (
	"net/http"

	"nexora.io/infrastructure/logger"
	server_response "nexora.io/infrastructure/serverResponse"
)

func NotFoundError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusNotFound, message, nil, nil)
}

func ValidationFailedError(ctx interface{}, errMessages *[]error) {
	server_response.Responder.Respond(ctx, http.StatusUnprocessableEntity, "payload validation failed", nil, *errMessages)
}

func ClientError(ctx interface{}, msg string, errs []error) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, msg, nil, errs)
}

func UnsupportedMediaError(ctx interface{}, msg string) {
	server_response.Responder.Respond(ctx, http.StatusUnsupportedMediaType, msg, nil, nil)
}

func ErrorProcessingPayload(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, "abnormal payload passed", nil, nil)
}

func ExternalDependencyError(ctx interface{}, serviceName string, err error) {
	logger.Error("error reaching external dependency", logger.LoggerOptions{
		Key:  "service",
		Data: serviceName,
	}, logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusServiceUnavailable,
		"our service is temporarily down. please check back later.", nil, nil)
}

func FatalServerError(ctx interface{}, err error) {
	logger.Error("fatal server error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusInternalServerError,
		"something went wrong on our end. please check back later.", nil, nil)
}

func UnknownError(ctx interface{}, err error) {
	logger.Error("unknown error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusBadRequest,
		"something went wrong somewhere. please try again.", nil, nil)
}
