// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService hashes and verifies passwords. Only the legacy numeric-id
// credential path uses it; the active login flow is OAuth-based.
type PasswordService interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
