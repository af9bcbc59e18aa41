package attendance

import "context"

// AttendanceService is the student-facing check-in flow. The acting
// student is taken from the JWT claims in ctx.
type AttendanceService interface {
	// VerifyCode resolves a raw code against the active sessions and
	// returns a preview of the matching slot. The code is folded to
	// upper case before hashing. A student already marked PRESENT for
	// the session is rejected here, before any check-in attempt
	VerifyCode(ctx context.Context, req VerifyCodeRequest) (SessionPreview, error)

	// CheckIn runs the full decision pipeline and upserts the record.
	// A spoofed submission produces a cheating report and no record
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// MyRecords lists the acting student's attendance history
	MyRecords(ctx context.Context) ([]RecordResponse, error)

	// SlotStatus reports whether a session is open for the slot and
	// whether the acting student already checked in
	SlotStatus(ctx context.Context, slotID string) (SlotStatusResponse, error)
}
