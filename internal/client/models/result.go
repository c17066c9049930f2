package models

// Result is the uniform envelope returned by every session client operation.
// Token is set only by a successful authenticate.
type Result struct {
	Success bool
	Message string
	User    *User
	Token   string
}

// Fixed user-facing messages. Callers never learn why a login failed.
const (
	MsgRegistered         = "Registration completed successfully"
	MsgEmailExists        = "Email already exists"
	MsgRegistrationFailed = "Registration error. Please try again"

	MsgLoginSuccessful    = "Login successful"
	MsgInvalidCredentials = "Invalid email or password"
	MsgLoginFailed        = "Login error. Please try again"

	MsgUserNotFound = "User not found"
	MsgProfileError = "Error fetching user information"

	MsgLoggedOut = "Logout successful"
)

func Ok(msg string, u *User) Result {
	return Result{Success: true, Message: msg, User: u}
}

func Fail(msg string) Result {
	return Result{Success: false, Message: msg}
}
