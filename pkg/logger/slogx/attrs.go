package slogx

import "log/slog"

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("err", "")
	}
	return slog.String("err", err.Error())
}

func MemberID(id string) slog.Attr {
	return slog.String("member_id", id)
}

func NoteID(id string) slog.Attr {
	return slog.String("note_id", id)
}

func ConnectionID(id string) slog.Attr {
	return slog.String("connection_id", id)
}
