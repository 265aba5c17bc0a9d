package services

// Caller exposes the identity behind the current request. Every operation
// receives it explicitly.
type Caller interface {
	CallerIdentity() (string, bool)
}

// Identity is a Caller holding a resolved user id. The zero value is the
// anonymous caller.
type Identity string

// Anonymous is the caller of a request without valid credentials.
const Anonymous Identity = ""

func (i Identity) CallerIdentity() (string, bool) {
	return string(i), i != ""
}

func identityOf(caller Caller) (string, bool) {
	if caller == nil {
		return "", false
	}
	return caller.CallerIdentity()
}
