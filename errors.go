package netsim

import "fmt"

// RouteError reports why Network.Route could not produce a route between
// two nodes.
type RouteError struct {
	From, To NodeId
	Reason   string
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("netsim: no route from %s to %s: %s", e.From, e.To, e.Reason)
}

func routeErrorUnknownNode(from, to, unknown NodeId) *RouteError {
	return &RouteError{From: from, To: to, Reason: fmt.Sprintf("node %s is not part of this network", unknown)}
}

func routeErrorNoLink(from, to NodeId) *RouteError {
	return &RouteError{From: from, To: to, Reason: "no link configured between these nodes"}
}

func routeErrorSelfLink(id NodeId) *RouteError {
	return &RouteError{From: id, To: id, Reason: "a link cannot connect a node to itself"}
}

// SendError reports why Network.Send rejected a packet before it ever
// entered the tick engine.
type SendError struct {
	Reason   string
	SelfSend bool
	Route    *RouteError
}

func (e *SendError) Error() string {
	if e.Route != nil {
		return fmt.Sprintf("netsim: send failed: %v", e.Route)
	}
	return fmt.Sprintf("netsim: send failed: %s", e.Reason)
}

func (e *SendError) Unwrap() error {
	if e.Route != nil {
		return e.Route
	}
	return nil
}

func sendErrorSenderBufferFull(id NodeId) *SendError {
	return &SendError{Reason: fmt.Sprintf("sender %s's upload buffer is full", id)}
}

func sendErrorSelfSend(id NodeId) *SendError {
	return &SendError{SelfSend: true, Reason: fmt.Sprintf("packet.from and packet.to are both %s", id)}
}

func sendErrorRoute(route *RouteError) *SendError {
	return &SendError{Route: route}
}
