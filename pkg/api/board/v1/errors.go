package v1

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// ErrorDomain is set on every ErrorInfo the board API returns.
const ErrorDomain = "board.v1"

const (
	ReasonNoteNotFound       = "NOTE_NOT_FOUND"
	ReasonConnectionNotFound = "CONNECTION_NOT_FOUND"
	ReasonMemberNotFound     = "MEMBER_NOT_FOUND"
	ReasonAttendanceNotFound = "ATTENDANCE_NOT_FOUND"
	ReasonSelfConnection     = "SELF_CONNECTION"
	ReasonInvalidArgument    = "INVALID_ARGUMENT"
)

// ErrorReason extracts the ErrorInfo reason from a status error.
func ErrorReason(err error) (string, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return "", false
	}

	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.GetReason(), true
		}
	}

	return "", false
}
