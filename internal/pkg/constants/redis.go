package constants

// Session storage key formats. The prefix defaults to "rideflex", giving
// rideflex_token and rideflex_user.
const (
	KeySessionToken = "%s_token"
	KeySessionUser  = "%s_user"
)

// Rate limiting
const (
	KeyLoginRateLimit = "rate:login"
)
