package domain

// WebResult is the response envelope every REST endpoint returns: the typed
// result (null on failure) plus the notifications generated during the
// request.
type WebResult[T any] struct {
	Result        T              `json:"result"`
	Notifications []Notification `json:"notifications"`
}
