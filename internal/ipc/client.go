package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"syslang/internal/language"
)

const dialTimeout = 2 * time.Second

// Client provides RPC access to a running server.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, dialTimeout)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) call(method string, req, resp any) error {
	return c.client.Call(ServiceName+"."+method, req, resp)
}

// SystemLanguage returns the server's detected language. explain asks for the
// per-source attempts as well.
func (c *Client) SystemLanguage(explain bool) (*SystemLanguageResponse, error) {
	var resp SystemLanguageResponse
	if err := c.call("GetSystemLanguage", SystemLanguageRequest{Explain: explain}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// InitialLanguage returns the language the host should start in.
func (c *Client) InitialLanguage() (*InitialLanguageResponse, error) {
	var resp InitialLanguageResponse
	if err := c.call("GetInitialLanguage", InitialLanguageRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoadLanguage returns the saved preference.
func (c *Client) LoadLanguage() (*LoadLanguageResponse, error) {
	var resp LoadLanguageResponse
	if err := c.call("LoadLanguage", LoadLanguageRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SaveLanguage stores tag as the user's choice.
func (c *Client) SaveLanguage(tag language.Tag) (*SaveLanguageResponse, error) {
	var resp SaveLanguageResponse
	if err := c.call("SaveLanguage", SaveLanguageRequest{Language: tag.String()}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClearLanguage forgets the saved preference.
func (c *Client) ClearLanguage() (*ClearLanguageResponse, error) {
	var resp ClearLanguageResponse
	if err := c.call("ClearLanguage", ClearLanguageRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
