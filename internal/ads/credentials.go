package ads

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gopkg.in/yaml.v3"

	"github.com/digiti/google-ads-mcp/internal/auth"
)

// DefaultCredentialsFile is the fallback google-ads.yaml path, relative to the
// working directory, used when GOOGLE_ADS_CREDENTIALS is not set.
const DefaultCredentialsFile = "google-ads.yaml"

// ErrNoCredentials is returned when no credential source resolves. The message
// enumerates every supported source so a misconfigured deployment is
// diagnosable from the error alone.
var ErrNoCredentials = errors.New(
	"no Google Ads credentials found. Provide either:\n" +
		"  1. A bearer access token on the request (Authorization header in HTTP mode)\n" +
		"  2. Environment variables: GOOGLE_ADS_DEVELOPER_TOKEN, GOOGLE_ADS_CLIENT_ID, " +
		"GOOGLE_ADS_CLIENT_SECRET, GOOGLE_ADS_REFRESH_TOKEN\n" +
		"  3. A google-ads.yaml file (set path via GOOGLE_ADS_CREDENTIALS env var)")

// Credentials holds the OAuth and developer-token material needed to build a
// client handle.
type Credentials struct {
	DeveloperToken  string `yaml:"developer_token"`
	ClientID        string `yaml:"client_id"`
	ClientSecret    string `yaml:"client_secret"`
	RefreshToken    string `yaml:"refresh_token"`
	LoginCustomerID string `yaml:"login_customer_id"`
}

// Complete reports whether the refresh-token flow can be built from these
// credentials.
func (c Credentials) Complete() bool {
	return c.DeveloperToken != "" && c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// CredentialsFromEnv reads the GOOGLE_ADS_* environment variables.
func CredentialsFromEnv() Credentials {
	return Credentials{
		DeveloperToken:  os.Getenv("GOOGLE_ADS_DEVELOPER_TOKEN"),
		ClientID:        os.Getenv("GOOGLE_ADS_CLIENT_ID"),
		ClientSecret:    os.Getenv("GOOGLE_ADS_CLIENT_SECRET"),
		RefreshToken:    os.Getenv("GOOGLE_ADS_REFRESH_TOKEN"),
		LoginCustomerID: os.Getenv("GOOGLE_ADS_LOGIN_CUSTOMER_ID"),
	}
}

// Resolver produces authenticated client handles. Resolution order, first
// match wins:
//
//  1. a per-request bearer access token carried in the context
//     (handle cached per token so repeated requests share one connection),
//  2. complete environment credentials (handle cached for the process),
//  3. a google-ads.yaml credentials file (handle cached for the process).
//
// The resolver is an explicit dependency constructed at startup and passed
// through the request context, not a package-level singleton. It owns every
// handle it hands out; Close releases all of them.
type Resolver struct {
	env             Credentials
	credentialsFile string

	mu      sync.Mutex
	cached  *Client
	byToken map[string]*Client
}

// NewResolver builds a resolver over the given environment credentials and
// credentials file path. An empty path falls back to DefaultCredentialsFile.
func NewResolver(env Credentials, credentialsFile string) *Resolver {
	if credentialsFile == "" {
		credentialsFile = DefaultCredentialsFile
	}
	return &Resolver{
		env:             env,
		credentialsFile: credentialsFile,
		byToken:         make(map[string]*Client),
	}
}

// Client resolves a handle for the current request.
func (r *Resolver) Client(ctx context.Context) (*Client, error) {
	if token, ok := auth.AccessTokenFromContext(ctx); ok && token != "" {
		return r.clientFromToken(token)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil {
		return r.cached, nil
	}

	client, err := r.buildStaticClient()
	if err != nil {
		return nil, err
	}
	r.cached = client
	return client, nil
}

// clientFromToken resolves a handle for an externally issued bearer token.
// Handles are cached per token, keyed by a digest so the raw secret is not
// held as a map key. The developer token comes from the environment, else the
// credentials file; when neither furnishes one the handle is still built and
// the remote service rejects it at call time (deferred failure, matching the
// upstream behavior).
func (r *Resolver) clientFromToken(token string) (*Client, error) {
	key := tokenKey(token)

	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.byToken[key]; ok {
		return client, nil
	}

	developerToken := r.env.DeveloperToken
	if developerToken == "" {
		if fileCreds, err := loadCredentialsFile(r.credentialsFile); err == nil {
			developerToken = fileCreds.DeveloperToken
		}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client, err := NewClient(ts, developerToken, r.env.LoginCustomerID)
	if err != nil {
		return nil, err
	}
	r.byToken[key] = client
	return client, nil
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// buildStaticClient resolves sources 2 and 3. Caller holds r.mu.
func (r *Resolver) buildStaticClient() (*Client, error) {
	creds := r.env
	if !creds.Complete() {
		fileCreds, err := loadCredentialsFile(r.credentialsFile)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, ErrNoCredentials
			}
			return nil, fmt.Errorf("failed to load credentials file %s: %w", r.credentialsFile, err)
		}
		if fileCreds.LoginCustomerID == "" {
			fileCreds.LoginCustomerID = r.env.LoginCustomerID
		}
		creds = fileCreds
	}

	cfg := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     google.Endpoint,
	}
	ts := cfg.TokenSource(context.Background(), &oauth2.Token{RefreshToken: creds.RefreshToken})
	return NewClient(ts, creds.DeveloperToken, creds.LoginCustomerID)
}

func loadCredentialsFile(path string) (Credentials, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, err
	}
	var creds Credentials
	if err := yaml.Unmarshal(raw, &creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return creds, nil
}

// Close releases every handle the resolver has handed out.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	if r.cached != nil {
		errs = append(errs, r.cached.Close())
		r.cached = nil
	}
	for key, client := range r.byToken {
		errs = append(errs, client.Close())
		delete(r.byToken, key)
	}
	return errors.Join(errs...)
}
