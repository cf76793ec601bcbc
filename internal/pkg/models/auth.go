package models

// User is the admin profile returned by the auth endpoints
type User struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
	Claims    []string `json:"claims,omitempty"`
}

// FullName returns the display name of the user
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /api/auth/login
type LoginResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Token        string `json:"token,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	User         *User  `json:"user,omitempty"`
}

// SessionData is the durable token/user pair. Both fields are set or neither is.
type SessionData struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Valid reports whether the pair is complete
func (s *SessionData) Valid() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// LoginResult is what the console reports back after a sign-in attempt
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// HasRole reports whether the user holds role
func (u *User) HasRole(role string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasClaim reports whether the user holds claim
func (u *User) HasClaim(claim string) bool {
	if u == nil {
		return false
	}
	for _, c := range u.Claims {
		if c == claim {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the user
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	out.Roles = append([]string(nil), u.Roles...)
	out.Claims = append([]string(nil), u.Claims...)
	return &out
}
