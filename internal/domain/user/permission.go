package user

type Permission string

const (
	// Attendance
	PermissionAttendanceCheckIn  Permission = "attendance.check_in"
	PermissionAttendanceCheckOut Permission = "attendance.check_out"
	PermissionAttendanceViewAll  Permission = "attendance.view_all"

	// Sessions
	PermissionSessionOpen     Permission = "session.open"
	PermissionSessionClose    Permission = "session.close"
	PermissionSessionValidate Permission = "session.validate"

	// Bags
	PermissionBagRecord   Permission = "bag.record"
	PermissionBagProgress Permission = "bag.progress"
	PermissionBagViewAll  Permission = "bag.view_all"

	// Workers
	PermissionWorkerEnroll  Permission = "worker.enroll"
	PermissionWorkerManage  Permission = "worker.manage"
	PermissionWorkerViewAll Permission = "worker.view_all"

	// Master data
	PermissionMasterManage Permission = "master.manage"
	PermissionMasterView   Permission = "master.view"

	// Rate cards
	PermissionRateCardManage Permission = "ratecard.manage"

	// Reports
	PermissionReportsView Permission = "reports.view"

	// Users
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceCheckIn,
		PermissionAttendanceCheckOut,
		PermissionAttendanceViewAll,
		PermissionSessionOpen,
		PermissionSessionClose,
		PermissionSessionValidate,
		PermissionBagRecord,
		PermissionBagProgress,
		PermissionBagViewAll,
		PermissionWorkerEnroll,
		PermissionWorkerManage,
		PermissionWorkerViewAll,
		PermissionMasterManage,
		PermissionMasterView,
		PermissionRateCardManage,
		PermissionReportsView,
		PermissionUserManage,
	},
	RoleSupervisor: {
		PermissionAttendanceCheckIn,
		PermissionAttendanceCheckOut,
		PermissionAttendanceViewAll,
		PermissionSessionOpen,
		PermissionSessionClose,
		PermissionBagRecord,
		PermissionBagViewAll,
		PermissionWorkerEnroll,
		PermissionWorkerManage,
		PermissionWorkerViewAll,
		PermissionMasterView,
		PermissionReportsView,
	},
	RoleExporter: {
		PermissionBagViewAll,
		PermissionMasterView,
	},
}

// HasPermission checks whether role carries permission
func HasPermission(role Role, permission Permission) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
