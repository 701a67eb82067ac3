package services

import (
	"errors"
	"net/http"

	"lab-portal/internal/clients"
	apperrors "lab-portal/pkg/errors"
)

// mapUpstreamError turns client failures into the reply the user should
// see: transport failures become a generic 502, non-success statuses carry
// the upstream body verbatim.
func mapUpstreamError(err error, unreachableMsg string) error {
	var transportErr *clients.TransportError
	if errors.As(err, &transportErr) {
		return apperrors.NewHttpError(http.StatusBadGateway, unreachableMsg, err, nil)
	}
	var upstreamErr *clients.UpstreamError
	if errors.As(err, &upstreamErr) {
		return apperrors.NewHttpError(upstreamErr.StatusCode, upstreamErr.Body, err, nil)
	}
	return err
}

func upstreamStatus(err error) (int, bool) {
	var upstreamErr *clients.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode, true
	}
	return 0, false
}
