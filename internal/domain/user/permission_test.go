package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleAdmin, PermissionMasterManage))
	assert.True(t, HasPermission(RoleLecturer, PermissionSessionOpen))
	assert.True(t, HasPermission(RoleLecturer, PermissionReportReview))
	assert.True(t, HasPermission(RoleStudent, PermissionAttendanceCheckIn))

	assert.False(t, HasPermission(RoleStudent, PermissionSessionOpen))
	assert.False(t, HasPermission(RoleLecturer, PermissionUserManage))
	assert.False(t, HasPermission(RoleStudent, PermissionReportView))
	assert.False(t, HasPermission(Role("ghost"), PermissionViewOwnProfile))
}
