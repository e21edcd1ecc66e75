package domain

import "fmt"

// User-facing default messages. Internal error detail never leaks into
// these; unexpected failures are logged server-side and collapse to the
// Unknown message.
const (
	MsgSuccessful    = "The operation was successful"
	MsgNotFound      = "The requested resource was not found"
	MsgUnauthorized  = "You must be logged in to perform that action"
	MsgForbidden     = "You do not have permission to perform that action"
	MsgUnprocessable = "There was a problem with the data you entered. Please check for errors and try again"
	MsgConflict      = "The data you entered conflicts with existing application data. Please check for errors and try again"
	MsgConcurrency   = "Someone else updated the record before you. Please reload the page and try again"
	MsgUnknown       = "An unknown error has occurred"

	MsgInvalidState      = "Your request state is not valid. Please check your data and try again"
	MsgBeforeHookFailure = "One or more plugins failed to execute. Your operation could not be completed"

	MsgQueryFailed = "Failed to query database"

	MsgNetworkFailed   = "A network error occurred. Are you connected to the internet?"
	MsgNetworkTimeout  = "Network request timed out"
	MsgBadRequest      = "The request was malformed"
	MsgEmptyResponse   = "The request was successful, but the server's response was not understood"
	MsgServerNoPayload = "Server returned an empty response"
)

// EntityName is the static display-name pair for an entity type, supplied
// at startup instead of being derived from the type at runtime.
type EntityName struct {
	Singular string
	Plural   string
}

func (n EntityName) singular() string {
	if n.Singular == "" {
		return "record"
	}
	return n.Singular
}

func (n EntityName) plural() string {
	if n.Plural == "" {
		return n.singular() + "s"
	}
	return n.Plural
}

// CRUD message templates built over the display name.

func (n EntityName) CreateFailed() string {
	return fmt.Sprintf("Unable to create new %s", n.singular())
}

func (n EntityName) CreateSuccessful() string {
	return fmt.Sprintf("%s created successfully", n.singular())
}

func (n EntityName) ReadSingleFailed() string {
	return fmt.Sprintf("Unable to read %s", n.singular())
}

func (n EntityName) ReadMultipleFailed() string {
	return fmt.Sprintf("Unable to read %s", n.plural())
}

func (n EntityName) UpdateFailed() string {
	return fmt.Sprintf("Unable to update %s", n.singular())
}

func (n EntityName) UpdateSuccessful() string {
	return fmt.Sprintf("%s updated successfully", n.singular())
}

func (n EntityName) DeleteFailed() string {
	return fmt.Sprintf("Unable to delete %s", n.singular())
}

func (n EntityName) DeleteSuccessful() string {
	return fmt.Sprintf("%s deleted successfully", n.singular())
}

func (n EntityName) NotFoundByID(id fmt.Stringer) string {
	return fmt.Sprintf("%s with ID %s not found", n.singular(), id)
}

func (n EntityName) NoPermission() string {
	return fmt.Sprintf("You do not have permission to access this %s", n.singular())
}
