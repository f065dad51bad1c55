package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// identity errors
const ErrHostnameUnavailable = Error("hostname unavailable")
