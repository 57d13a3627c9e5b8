package status

import "net/url"

// Kind enumerates the states the form message slot can be in. The slot is a
// tagged variant so rendering can match exhaustively instead of sniffing
// strings.
type Kind int

const (
	Idle Kind = iota
	Validating
	InProgress
	Success
	Failure
)

type Status struct {
	Kind    Kind
	Message string
}

// FromQuery recovers the form status carried across a redirect.
func FromQuery(q url.Values) Status {
	switch {
	case q.Get("ok") != "":
		return Status{Kind: Success, Message: q.Get("ok")}
	case q.Get("err") != "":
		return Status{Kind: Validating, Message: q.Get("err")}
	case q.Get("fail") != "":
		return Status{Kind: Failure, Message: q.Get("fail")}
	}
	return Status{Kind: Idle}
}

// Query encodes the status as a query fragment for a redirect target.
func (s Status) Query() string {
	switch s.Kind {
	case Success:
		return "ok=" + url.QueryEscape(s.Message)
	case Validating:
		return "err=" + url.QueryEscape(s.Message)
	case Failure:
		return "fail=" + url.QueryEscape(s.Message)
	case InProgress, Idle:
		return ""
	}
	return ""
}

func OK(message string) Status      { return Status{Kind: Success, Message: message} }
func Invalid(message string) Status { return Status{Kind: Validating, Message: message} }
func Failed(message string) Status  { return Status{Kind: Failure, Message: message} }
