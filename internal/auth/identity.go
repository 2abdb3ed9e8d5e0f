package auth

// OAuthIdentity is the user information returned by an OAuth provider.
// Users are keyed by (Provider, ProviderID).
type OAuthIdentity struct {
	Provider   string
	Email      string
	Name       *string
	AvatarURL  *string
	ProviderID string
}
