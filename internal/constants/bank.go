package constants

const (
	// Bootstrap admin registered at bank construction so the first
	// session can authorize further admins. Override via config
	// (admin.username / admin.password) or CHACHING_ADMIN_* env vars.
	BootstrapAdminUsername = "owner"
	BootstrapAdminPassword = "verysecurePassword43"
)

const (
	MaxUsernameLen = 100
	MaxNicknameLen = 100
)
