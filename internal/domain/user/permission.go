package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Attendance
	PermissionSessionOpen        Permission = "attendance.session_open"
	PermissionAttendanceCheckIn  Permission = "attendance.check_in"
	PermissionAttendanceViewOwn  Permission = "attendance.view_own"
	PermissionAttendanceViewSlot Permission = "attendance.view_slot"

	// Schedules
	PermissionScheduleViewOwn Permission = "schedule.view_own"
	PermissionScheduleManage  Permission = "schedule.manage"

	// Reference data
	PermissionMasterManage    Permission = "master.manage"
	PermissionClassroomManage Permission = "classroom.manage"
	PermissionUserManage      Permission = "user.manage"

	// Cheating reports
	PermissionReportView   Permission = "report.view"
	PermissionReportReview Permission = "report.review"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionScheduleManage,
		PermissionMasterManage,
		PermissionClassroomManage,
		PermissionUserManage,
		PermissionReportView,
		PermissionReportReview,
	},
	RoleLecturer: {
		PermissionViewOwnProfile,
		PermissionSessionOpen,
		PermissionScheduleViewOwn,
		PermissionAttendanceViewSlot,
		PermissionReportView,
		PermissionReportReview,
	},
	RoleStudent: {
		PermissionViewOwnProfile,
		PermissionAttendanceCheckIn,
		PermissionAttendanceViewOwn,
		PermissionScheduleViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
