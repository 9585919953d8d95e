package models

// HandlerResult is the discriminated union returned by every handler:
// either a QueryResult (read-only) or an ActionResult (side-effecting).
// The interface is sealed so the two variants are the only implementations.
type HandlerResult interface {
	isHandlerResult()
}

// QueryResult wraps the structured payload of a read-only handler.
type QueryResult struct {
	Data any `json:"data"`
}

func (QueryResult) isHandlerResult() {}

// ActionResult reports the outcome of a side-effecting handler.
// Detail is a human-readable reason, filled on both success and failure.
type ActionResult struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
	Payload any    `json:"payload,omitempty"`
}

func (ActionResult) isHandlerResult() {}
