package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/varunisrani/thinkaiback-sub000/internal/config"
)

const (
	AuthPort       = 3000
	authTimeout    = 5 * time.Minute
	callbackPath   = "/oauth/callback"
	tokenDirName   = ".thinkaiback/tokens"
	tokenFilePerms = 0600 // Read/write for owner only
	tokenDirPerms  = 0700 // Read/write/execute for owner only
	tokenInfoURL   = "https://oauth2.googleapis.com/tokeninfo"
)

// ScopeSheets is the only Google scope the planner needs: it writes stripboards
const ScopeSheets = "https://www.googleapis.com/auth/spreadsheets"

func requiredScopes() []string {
	return []string{ScopeSheets}
}

// GetOAuthConfig creates an OAuth2 config from the OAuth client configuration
func GetOAuthConfig(oauthCfg *config.OAuthClientConfig) (*oauth2.Config, error) {
	oauthConfigJSON, err := json.Marshal(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal oauth config: %w", err)
	}

	googleConfig, err := google.ConfigFromJSON(oauthConfigJSON, requiredScopes()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create google config: %w", err)
	}

	// Override redirect URI to use our local server
	googleConfig.RedirectURL = fmt.Sprintf("http://localhost:%d%s", AuthPort, callbackPath)

	return googleConfig, nil
}

// TokenStore persists one OAuth token per environment as JSON files in a directory
type TokenStore struct {
	dir string
}

// NewTokenStore returns a store rooted at dir
func NewTokenStore(dir string) *TokenStore {
	return &TokenStore{dir: dir}
}

// DefaultTokenStore returns the store under the user's home directory
func DefaultTokenStore() (*TokenStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewTokenStore(filepath.Join(homeDir, tokenDirName)), nil
}

func (s *TokenStore) path(env string) string {
	return filepath.Join(s.dir, fmt.Sprintf("token-%s.json", env))
}

// Load reads the token for env. A missing file is not an error: it returns nil.
func (s *TokenStore) Load(env string) (*oauth2.Token, error) {
	data, err := os.ReadFile(s.path(env))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}

	return &token, nil
}

// Save writes the token for env with owner-only permissions
func (s *TokenStore) Save(env string, token *oauth2.Token) error {
	if err := os.MkdirAll(s.dir, tokenDirPerms); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := os.WriteFile(s.path(env), data, tokenFilePerms); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// Delete removes the token for env if there is one
func (s *TokenStore) Delete(env string) error {
	if err := os.Remove(s.path(env)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete token file: %w", err)
	}
	return nil
}

// Authenticator hands out a Sheets token, reusing the cached one while it is
// valid and running the browser flow otherwise. It is safe for concurrent use and
// runs at most one flow at a time.
type Authenticator struct {
	config *oauth2.Config
	store  *TokenStore
	logger *zap.Logger

	// prompt receives the authorization URL
	prompt io.Writer
	// checkScopes is replaced in tests
	checkScopes func(ctx context.Context, token *oauth2.Token) error

	mu     sync.Mutex
	cached *oauth2.Token
}

// NewAuthenticator creates an authenticator that prints the authorization URL to stderr
func NewAuthenticator(oauthConfig *oauth2.Config, store *TokenStore, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		config:      oauthConfig,
		store:       store,
		logger:      logger,
		prompt:      os.Stderr,
		checkScopes: validateTokenScopes,
	}
}

// Token returns a valid token for env. Stored tokens are refreshed when expired
// and discarded when they lack a required scope.
func (a *Authenticator) Token(ctx context.Context, env string) (*oauth2.Token, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cached != nil && a.cached.Valid() {
		return a.cached, nil
	}

	token, err := a.storedToken(ctx, env)
	if err != nil {
		return nil, err
	}
	if token != nil {
		a.cached = token
		return token, nil
	}

	a.logger.Info("No valid token found - starting OAuth flow")
	authURL := a.config.AuthCodeURL("state", oauth2.AccessTypeOffline)
	fmt.Fprintf(a.prompt, "\nVisit this URL to authorize the application:\n%s\n\n", authURL)

	code, err := listenForAuthCallback(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get authorization code: %w", err)
	}

	token, err = a.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	if err := a.checkScopes(ctx, token); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if err := a.store.Save(env, token); err != nil {
		// The token is still usable for this run
		a.logger.Warn("Failed to save token", zap.Error(err))
	}

	a.cached = token
	return token, nil
}

// storedToken returns the stored token when it is usable, refreshing it if needed.
// A nil token with a nil error means a new flow is required.
func (a *Authenticator) storedToken(ctx context.Context, env string) (*oauth2.Token, error) {
	token, err := a.store.Load(env)
	if err != nil {
		a.logger.Warn("Failed to load stored token", zap.Error(err))
		return nil, nil
	}
	if token == nil {
		return nil, nil
	}

	if !token.Valid() {
		if token.RefreshToken == "" {
			return nil, nil
		}
		refreshed, err := a.config.TokenSource(ctx, token).Token()
		if err != nil {
			a.logger.Warn("Failed to refresh stored token", zap.Error(err))
			return nil, nil
		}
		if err := a.store.Save(env, refreshed); err != nil {
			a.logger.Warn("Failed to save refreshed token", zap.Error(err))
		}
		a.logger.Debug("Token refreshed")
		token = refreshed
	}

	if err := a.checkScopes(ctx, token); err != nil {
		a.logger.Warn("Stored token is missing required scopes, discarding it", zap.Error(err))
		if err := a.store.Delete(env); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return token, nil
}

// missingScopes returns the required scopes absent from a space separated grant
func missingScopes(granted string) []string {
	grantedScopes := strings.Fields(granted)
	var missing []string
	for _, required := range requiredScopes() {
		if !slices.Contains(grantedScopes, required) {
			missing = append(missing, required)
		}
	}
	return missing
}

// validateTokenScopes checks that the token has all required scopes by calling Google's tokeninfo endpoint
func validateTokenScopes(ctx context.Context, token *oauth2.Token) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tokenInfoURL+"?access_token="+token.AccessToken, nil)
	if err != nil {
		return fmt.Errorf("failed to create tokeninfo request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call tokeninfo endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("tokeninfo request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenInfo struct {
		Scope string `json:"scope"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenInfo); err != nil {
		return fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	if missing := missingScopes(tokenInfo.Scope); len(missing) > 0 {
		return fmt.Errorf("token is missing required scopes: %v", missing)
	}

	return nil
}

// callbackHandler sends the authorization code, or an error, from the redirect
func callbackHandler(codeChan chan<- string, errChan chan<- error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			http.Error(w, "Authorization failed", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><head><title>Authorization Successful</title></head>
<body><h1>Authorization successful!</h1><p>You can close this window and return to the terminal.</p></body></html>`)

		codeChan <- code
	})
}

// listenForAuthCallback starts a local HTTP server and waits for the OAuth callback
func listenForAuthCallback(ctx context.Context) (string, error) {
	codeChan := make(chan string, 1)
	errChan := make(chan error, 1)

	mux := http.NewServeMux()
	mux.Handle(callbackPath, callbackHandler(codeChan, errChan))
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", AuthPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	timeoutCtx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	var code string
	var authErr error

	select {
	case code = <-codeChan:
	case authErr = <-errChan:
	case <-timeoutCtx.Done():
		authErr = fmt.Errorf("authorization timeout after %v", authTimeout)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)

	if authErr != nil {
		return "", authErr
	}

	return code, nil
}
