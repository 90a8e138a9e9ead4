package cluster

import (
	"context"
	"encoding/base64"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"

	"github.com/tablelink/tablelink/internal/config"
	"github.com/tablelink/tablelink/internal/security"
)

func TestNew_InvalidConfig(t *testing.T) {
	got, err := New(&Config{})
	require.Error(t, err)
	require.Nil(t, got)
	require.Equal(t, "configuration required", err.Error())
}

func TestNew_MissingMasters(t *testing.T) {
	got, err := New(&Config{Conf: config.New()})
	require.ErrorIs(t, err, ErrMissingMasters)
	require.Nil(t, got)
}

func TestNew_ConnectError(t *testing.T) {
	req := require.New(t)

	// a control character in the configured masters makes the dial target
	// unparsable, so construction fails in the transport
	conf := config.New()
	conf.Set(MasterAddressesKey, "127.0.0.1:7051\nbad")

	got, err := New(&Config{Conf: conf})
	req.ErrorIs(err, ErrConnect)
	req.Nil(got)
}

func TestNew_Real(t *testing.T) {
	// bind to a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	srv := grpc.NewServer()
	go func() {
		_ = srv.Serve(listener)
	}()
	defer srv.GracefulStop()

	conf := config.New()
	conf.Set(MasterAddressesKey, listener.Addr().String())

	client, err := New(&Config{Conf: conf})
	require.NoError(t, err)
	defer client.Close()

	require.Equal(t, listener.Addr().String(), client.ServiceID())
	require.NotNil(t, client.Conn())

	// wait for the handle to reach a ready connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for state := client.Conn().GetState(); state != connectivity.Ready; state = client.Conn().GetState() {
		require.True(t, client.Conn().WaitForStateChange(ctx, state), "connection never became ready")
	}
}

func TestNew_ImportsMatchingCredential(t *testing.T) {
	req := require.New(t)

	reg := security.NewRegistry()
	creds := security.NewCredentials()
	creds.AddToken("other", security.Token{
		Kind:    security.TokenKind,
		Service: "otherhost:7051",
		Secret:  []byte("wrong-cluster"),
	})
	creds.AddToken("target", security.Token{
		Kind:    security.TokenKind,
		Service: "127.0.0.1:7051",
		Secret:  []byte("delegated"),
	})
	reg.Add(creds)

	conf := config.New()
	conf.Set(MasterAddressesKey, "127.0.0.1:7051")

	client, err := New(&Config{Conf: conf, Credentials: reg})
	req.NoError(err)
	defer client.Close()

	md, err := client.auth.GetRequestMetadata(context.Background())
	req.NoError(err)
	req.Equal(base64.StdEncoding.EncodeToString([]byte("delegated")), md[authnMetadataKey])
}

func TestClient_ImportAuthentication(t *testing.T) {
	req := require.New(t)

	conf := config.New()
	conf.Set(MasterAddressesKey, "127.0.0.1:7051")

	client, err := New(&Config{Conf: conf})
	req.NoError(err)
	defer client.Close()

	// no secret imported yet: nothing attached to RPCs
	md, err := client.auth.GetRequestMetadata(context.Background())
	req.NoError(err)
	req.Nil(md)

	client.ImportAuthentication([]byte("secret"))
	md, err = client.auth.GetRequestMetadata(context.Background())
	req.NoError(err)
	req.Equal(base64.StdEncoding.EncodeToString([]byte("secret")), md[authnMetadataKey])
}

func TestAuthState_RequireTransportSecurity(t *testing.T) {
	require.False(t, (&authState{}).RequireTransportSecurity())
}
