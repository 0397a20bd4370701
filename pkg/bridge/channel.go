package bridge

import (
	"context"
	"fmt"
)

// Logical channel names the native side uses to route method invocations.
const (
	VisionChannel = "plugins.flutter.io/firebase_ml_vision"
	AuthChannel   = "plugins.flutter.io/firebase_auth"
)

// Channel sends a method invocation with serialized arguments to the native
// side and returns the deserialized result. Implementations own transport,
// scheduling and timeout details; callers own argument and result shapes.
type Channel interface {
	Invoke(ctx context.Context, channel, method string, args map[string]any) (any, error)
}

// Error is a failure reported by the native side. The binding does not
// interpret codes beyond carrying them; callers branch on Code if they
// need to.
type Error struct {
	Code    string
	Message string
	Details any
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bridge: %s", e.Code)
	}
	return fmt.Sprintf("bridge: %s: %s", e.Code, e.Message)
}

// callEnvelope is the JSON frame sent to the native side.
type callEnvelope struct {
	ID        string         `json:"id"`
	Channel   string         `json:"channel"`
	Method    string         `json:"method"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// replyEnvelope is the JSON frame received back.
type replyEnvelope struct {
	ID     string         `json:"id"`
	Result any            `json:"result,omitempty"`
	Error  *errorEnvelope `json:"error,omitempty"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (r *replyEnvelope) unwrap() (any, error) {
	if r.Error != nil {
		return nil, &Error{
			Code:    r.Error.Code,
			Message: r.Error.Message,
			Details: r.Error.Details,
		}
	}
	return r.Result, nil
}
