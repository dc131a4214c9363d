package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyDecided       = errors.New("leave request has already been decided")
	ErrNotAuthorized        = errors.New("you are not authorized to decide this leave request")
	ErrOverlappingLeave     = errors.New("an overlapping leave request already exists")
)
