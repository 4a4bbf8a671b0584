package dispatch

import (
	"fmt"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/google/uuid"
)

// Task names consumed by the dispatch worker. Both tasks share the one
// default queue, so messages published in order for the same request
// are delivered in order.
const (
	TaskBroadcastNewRequest   = "broadcast_new_request"
	TaskNotifyRequestAccepted = "notify_request_accepted"
)

// RequestCreatedEvent announces a freshly created help request
type RequestCreatedEvent struct {
	RequestID string `json:"request_id"`
	ProfileID string `json:"profile_id"`
}

// RequestAcceptedEvent announces that a request found its acceptor
type RequestAcceptedEvent struct {
	RequestID string `json:"request_id"`
}

// Publisher announces lifecycle transitions to the background matching
// and notification workers. Delivery is at-least-once; consumers must
// dedupe on the request id. A cancelled-request event is deliberately
// not published since no consumer needs one; extending this interface
// is the place to add it.
type Publisher interface {
	PublishRequestCreated(event RequestCreatedEvent) error
	PublishRequestAccepted(event RequestAcceptedEvent) error
}

// MachineryPublisher enqueues lifecycle events as machinery tasks on
// the shared redis-backed queue
type MachineryPublisher struct {
	taskServer *machinery.Server
}

func NewMachineryPublisher(taskServer *machinery.Server) *MachineryPublisher {
	return &MachineryPublisher{
		taskServer: taskServer,
	}
}

func (p *MachineryPublisher) PublishRequestCreated(event RequestCreatedEvent) error {
	_, err := p.taskServer.SendTask(signature(TaskBroadcastNewRequest, event.RequestID,
		[]tasks.Arg{
			{Type: "string", Value: event.RequestID},
			{Type: "string", Value: event.ProfileID},
		},
	))
	return err
}

func (p *MachineryPublisher) PublishRequestAccepted(event RequestAcceptedEvent) error {
	_, err := p.taskServer.SendTask(signature(TaskNotifyRequestAccepted, event.RequestID,
		[]tasks.Arg{
			{Type: "string", Value: event.RequestID},
		},
	))
	return err
}

// signature builds a task signature whose UUID carries the request id
// so that workers can correlate and dedupe redelivered tasks
func signature(name, requestID string, args []tasks.Arg) *tasks.Signature {
	return &tasks.Signature{
		UUID: fmt.Sprintf("task_%s_%s_%s", name, requestID, uuid.New().String()),
		Name: name,
		Args: args,
	}
}
