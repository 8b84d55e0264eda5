package search

import (
	"errors"

	"github.com/a-h/neosearch/neocities"
)

const (
	MessageMissingAPIKey  = "API key is not configured on the server."
	MessageListFailed     = "Failed to fetch file list from Neocities"
	MessageInternalServer = "An internal server error occurred."
)

// ErrorMessage returns the message that can be shown to the caller for a
// failed search. Only the reason given by the Neocities API for a failed
// listing is passed through; everything else is hidden.
func ErrorMessage(err error) string {
	var listErr *neocities.ListError
	if !errors.As(err, &listErr) {
		return MessageInternalServer
	}
	if listErr.Message == "" {
		return MessageListFailed + "."
	}
	return MessageListFailed + ": " + listErr.Message
}
