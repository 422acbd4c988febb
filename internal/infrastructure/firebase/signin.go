package firebase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// SignInWithEmailPassword exchanges the credentials for an ID token through
// the identitytoolkit REST API; the admin SDK has no password sign-in.
func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	if f.apiKey == "" {
		return "", &AuthError{Code: "CONFIGURATION_NOT_FOUND"}
	}

	payload := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", signInEndpoint, f.apiKey)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", &AuthError{Code: "NETWORK_REQUEST_FAILED", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return "", &AuthError{Code: "UNKNOWN"}
		}
		// Firebase appends detail after a colon, e.g.
		// "WEAK_PASSWORD : Password should be at least 6 characters".
		code := strings.TrimSpace(strings.SplitN(errResp.Error.Message, ":", 2)[0])
		return "", &AuthError{Code: code}
	}

	var result struct {
		IDToken string `json:"idToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.IDToken, nil
}
