package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// repository errors
const (
	ErrUserNotFound   = Error("user not found")
	ErrUserExists     = Error("user already exists")
	ErrRecipeNotFound = Error("recipe not found")
	ErrTokenNotFound  = Error("refresh token not found")
)

// service errors
const (
	ErrInvalidCredentials = Error("invalid username or password")
	ErrValidation         = Error("validation failed")
)

// snapshot errors
const (
	ErrSnapshotFormat  = Error("malformed snapshot document")
	ErrSnapshotMissing = Error("snapshot file not found")
)
