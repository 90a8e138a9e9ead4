package security

import (
	"sync"

	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=./security_mock.go -package=security -source=security.go

// TokenKind is the token kind used by Tablet's authentication scheme. Only
// tokens of this kind are candidates for import.
const TokenKind = "tablet-authn-data"

// Token is an opaque, time-limited authentication credential. Kind
// identifies the protocol family; Service identifies the target cluster,
// encoded as its master address string.
type Token struct {
	Kind    string
	Service string
	Secret  []byte
}

// Credentials is an ordered set of named tokens. Tokens enumerate in
// insertion order so an import scan is deterministic within a process.
type Credentials struct {
	names  []string
	tokens map[string]Token
}

func NewCredentials() *Credentials {
	return &Credentials{tokens: make(map[string]Token)}
}

// AddToken stores tok under name. Re-adding a name replaces the token but
// keeps its original position in enumeration order.
func (c *Credentials) AddToken(name string, tok Token) {
	if _, ok := c.tokens[name]; !ok {
		c.names = append(c.names, name)
	}
	c.tokens[name] = tok
}

// Tokens returns every token in insertion order.
func (c *Credentials) Tokens() []Token {
	toks := make([]Token, 0, len(c.names))
	for _, name := range c.names {
		toks = append(toks, c.tokens[name])
	}
	return toks
}

// Provider is a read-only view of the ambient credential context of the
// current execution principal. A nil snapshot means the principal has no
// credential context at all, which is a valid state for interactive runs.
type Provider interface {
	Credentials() []*Credentials
}

// client is the slice of the cluster handle the importer needs.
type client interface {
	ServiceID() string
	ImportAuthentication(secret []byte)
}

// ImportCredentials scans every token across every credential object of the
// ambient context and imports the first one whose kind is TokenKind and
// whose service equals the client's own service identifier exactly. Tokens
// for other services are skipped, not errors: a job may hold tokens for two
// clusters at once. No provider, no context, or no match is a silent no-op;
// at most one import happens per call.
func ImportCredentials(p Provider, c client) {
	if p == nil {
		return
	}
	credSet := p.Credentials()
	if credSet == nil {
		return
	}

	service := c.ServiceID()
	for _, creds := range credSet {
		for _, tok := range creds.Tokens() {
			if tok.Kind != TokenKind {
				continue
			}
			if tok.Service != service {
				log.Debug().
					Str("service", tok.Service).
					Str("expected", service).
					Msg("Skipping credentials for another service")
				continue
			}
			log.Debug().Str("service", service).Msg("Importing credentials")
			c.ImportAuthentication(tok.Secret)
			return
		}
	}
}

// Registry is a process-wide credential registry populated by the job
// runner before worker code executes. It satisfies Provider and preserves
// insertion order; this layer only ever reads it.
type Registry struct {
	mu    sync.RWMutex
	creds []*Credentials
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a credential object to the registry.
func (r *Registry) Add(creds *Credentials) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creds = append(r.creds, creds)
}

// Credentials returns a snapshot of the registered credential objects in
// insertion order.
func (r *Registry) Credentials() []*Credentials {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*Credentials, len(r.creds))
	copy(snapshot, r.creds)
	return snapshot
}
