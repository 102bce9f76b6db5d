package habitat

import "fmt"

// Kind classifies a fetch failure. The event loop treats every kind the
// same way (keep the old value, flag it stale); kinds exist so the log line
// says what actually went wrong.
type Kind int

const (
	// KindNetwork covers transport failures: unreachable host, timeout,
	// connection reset.
	KindNetwork Kind = iota
	// KindProtocol covers a reachable service answering wrongly: non-2xx
	// status or a non-zero envelope code.
	KindProtocol
	// KindDecode covers unusable bodies: malformed JSON or a success
	// envelope missing the rows the caller needs.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindProtocol:
		return "protocol"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by both fetch operations. The
// fallback sources construct it too, the way os wraps everything in
// fs.PathError, so the whole data layer fails with one shape.
type Error struct {
	Op     string
	Kind   Kind
	Status int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s fetch: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
