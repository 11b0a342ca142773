package fsops

// Status is the closed result kind returned by every Manager operation.
// Underlying OS errors are never surfaced past the facade; they are
// downgraded to one of these kinds at the call site.
type Status int

const (
	// Success means the operation completed and any results are valid.
	Success Status = iota
	// NoMatches means a search completed but found nothing.
	NoMatches
	// InvalidRequest means the path exists but is the wrong kind for the
	// operation (or already exists where it must not).
	InvalidRequest
	// NotFound means the path does not exist.
	NotFound
	// InternalError covers every other OS-level failure: permission
	// denied, I/O errors, races where a path vanishes mid-operation.
	InternalError
)

// Code returns the numeric code historically associated with each kind
// (200, 204, 400, 404, 500). The numbers are display/scripting shorthand
// only; nothing here speaks HTTP.
func (s Status) Code() int {
	switch s {
	case Success:
		return 200
	case NoMatches:
		return 204
	case InvalidRequest:
		return 400
	case NotFound:
		return 404
	case InternalError:
		return 500
	default:
		return 0
	}
}

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case NoMatches:
		return "no matches"
	case InvalidRequest:
		return "invalid request"
	case NotFound:
		return "not found"
	case InternalError:
		return "internal error"
	default:
		return "unknown"
	}
}
