package vault

import (
	"strings"
	"sync"

	vaultapi "github.com/hashicorp/vault/api"

	"github.com/sanLimbu/taskphotos/internal"
)

// Provider ...
type Provider struct {
	path    string
	client  *vaultapi.Logical
	mu      sync.Mutex
	secrets map[string]string
}

// New instantiates the Vault client.
func New(token, addr, path string) (*Provider, error) {
	config := &vaultapi.Config{
		Address: addr,
	}

	client, err := vaultapi.NewClient(config)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "vaultapi.NewClient")
	}

	client.SetToken(token)

	return &Provider{
		path:   path,
		client: client.Logical(),
	}, nil
}

// Get retrieves the value using the `<path>:<key>` format, a bare key is read from the default path.
func (p *Provider) Get(v string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.secrets == nil {
		p.secrets = make(map[string]string)
	}

	if res, ok := p.secrets[v]; ok {
		return res, nil
	}

	path, key := p.path, v
	if i := strings.LastIndex(v, ":"); i >= 0 {
		path, key = v[:i], v[i+1:]
	}

	secret, err := p.client.Read(path)
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.Read")
	}

	if secret == nil {
		return "", internal.NewErrorf(internal.ErrorCodeNotFound, "no secret at %s", path)
	}

	data := secret.Data
	// KV version 2 nests values under "data".
	if nested, ok := secret.Data["data"].(map[string]interface{}); ok {
		data = nested
	}

	res, ok := data[key].(string)
	if !ok {
		return "", internal.NewErrorf(internal.ErrorCodeNotFound, "key %s not found in %s", key, path)
	}

	p.secrets[v] = res

	return res, nil
}
