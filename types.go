package twitterx

import "net/url"

// DefaultPageLimit is the number of items requested per page when a Page
// does not specify one.
const DefaultPageLimit = 20

// Section selects which search vertical a query runs against.
type Section string

const (
	SectionTop    Section = "top"
	SectionLatest Section = "latest"
	SectionPeople Section = "people"
	SectionPhotos Section = "photos"
	SectionVideos Section = "videos"
)

// Page carries pagination controls for list-shaped operations. The zero
// value requests the first page with the default limit.
type Page struct {
	// Limit is the maximum number of items to return. Zero means
	// DefaultPageLimit.
	Limit int

	// Cursor is the opaque pagination token from a previous response.
	// When empty the cursor parameter is omitted from the request
	// entirely, never sent as an empty string.
	Cursor string
}

func (p Page) limit() int {
	if p.Limit <= 0 {
		return DefaultPageLimit
	}
	return p.Limit
}

// UserIdentity identifies a user by username or by numeric user id. At least
// one must be set; operations taking a UserIdentity fail with
// ErrMissingUserIdentifier otherwise. When both are set, both are forwarded.
type UserIdentity struct {
	Username string
	UserID   string
}

// ByUsername identifies a user by handle.
func ByUsername(username string) UserIdentity {
	return UserIdentity{Username: username}
}

// ByUserID identifies a user by numeric id.
func ByUserID(userID string) UserIdentity {
	return UserIdentity{UserID: userID}
}

// validate enforces the username-or-id precondition uniformly across all
// user-scoped operations.
func (u UserIdentity) validate() error {
	if u.Username == "" && u.UserID == "" {
		return ErrMissingUserIdentifier
	}
	return nil
}

// apply adds the identity to the outgoing query parameters.
func (u UserIdentity) apply(params url.Values) {
	if u.Username != "" {
		params.Set("username", u.Username)
	}
	if u.UserID != "" {
		params.Set("user_id", u.UserID)
	}
}
