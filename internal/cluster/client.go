package cluster

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/resolver"
	"google.golang.org/grpc/resolver/manual"

	"github.com/tablelink/tablelink/internal/config"
	"github.com/tablelink/tablelink/internal/security"
)

// authnMetadataKey carries the imported delegation token on every RPC.
const authnMetadataKey = "tablet-authn-token"

const roundRobinServiceConfig = `{"loadBalancingConfig":[{"round_robin":{}}]}`

// authState is the mutable authentication state of a Client. It satisfies
// the transport's per-RPC credential interface; until a secret is imported
// it attaches nothing.
type authState struct {
	mu     sync.RWMutex
	secret []byte
}

func (a *authState) GetRequestMetadata(_ context.Context, _ ...string) (map[string]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.secret == nil {
		return nil, nil
	}
	return map[string]string{
		authnMetadataKey: base64.StdEncoding.EncodeToString(a.secret),
	}, nil
}

func (a *authState) RequireTransportSecurity() bool { return false }

func (a *authState) set(secret []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.secret = secret
}

// Client is a connected handle to a Tablet cluster's master endpoints.
// Ownership belongs to the caller that requested it; handles are not
// pooled, cached, or shared by this layer.
type Client struct {
	id      string
	masters string
	conn    *grpc.ClientConn
	auth    *authState
}

type Config struct {
	// Conf is the overlaid job configuration the masters are resolved from.
	Conf *config.Config
	// Credentials is the ambient credential context scanned after the
	// handle is constructed. Optional: interactive runs may have none.
	Credentials security.Provider
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Conf == nil {
		errGrp = append(errGrp, fmt.Errorf("configuration required"))
	}
	return errors.Join(errGrp...)
}

// New resolves the cluster's master addresses, constructs a connected
// client handle against them, and imports any matching ambient credential
// before handing the handle to the caller. Transport errors surface wrapped
// in ErrConnect; the caller decides on retry.
func New(cfg *Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	masters, err := ResolveMasterAddresses(cfg.Conf)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()

	// Each handle carries its own resolver seeded with the comma-split
	// master list; round-robin spreads calls across the masters.
	rb := manual.NewBuilderWithScheme("tablet-" + id)
	endpoints := strings.Split(masters, ",")
	addrs := make([]resolver.Address, 0, len(endpoints))
	for _, ep := range endpoints {
		if ep = strings.TrimSpace(ep); ep != "" {
			addrs = append(addrs, resolver.Address{Addr: ep})
		}
	}
	rb.InitialState(resolver.State{Addresses: addrs})

	auth := &authState{}
	conn, err := grpc.NewClient(
		rb.Scheme()+":///"+masters,
		grpc.WithResolvers(rb),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithPerRPCCredentials(auth),
		grpc.WithDefaultServiceConfig(roundRobinServiceConfig),
	)
	if err != nil {
		return nil, newError(ErrConnect, "masters %s: %v", masters, err)
	}
	conn.Connect()

	client := &Client{
		id:      id,
		masters: masters,
		conn:    conn,
		auth:    auth,
	}

	security.ImportCredentials(cfg.Credentials, client)

	log.Debug().
		Str("client", id).
		Str("masters", masters).
		Msg("Constructed cluster client")

	return client, nil
}

// ServiceID is the identifier ambient security tokens are matched against:
// the cluster's master address string, verbatim.
func (c *Client) ServiceID() string {
	return c.masters
}

// ImportAuthentication installs a previously obtained delegation-token
// secret so the handle authenticates without a fresh handshake.
func (c *Client) ImportAuthentication(secret []byte) {
	c.auth.set(secret)
}

// Conn exposes the underlying connection for the record readers and
// writers built on top of this handle.
func (c *Client) Conn() *grpc.ClientConn {
	return c.conn
}

func (c *Client) Close() error {
	return c.conn.Close()
}
