package camomile

import (
	"encoding/json"

	"github.com/camomile-project/camomile-go/api"
)

// Metadata is a tree of arbitrary values attached to a corpus, layer or
// medium, addressed by dotted paths ("annotation.status"). Values are
// returned undecoded; DecodeMetadata maps them onto caller structs.

func (c *Client) CorpusMetadata(id, path string) (json.RawMessage, error) {
	return c.metadata("corpus", id, path)
}

func (c *Client) SetCorpusMetadata(id string, value interface{}) error {
	return c.setMetadata("corpus", id, value)
}

func (c *Client) DeleteCorpusMetadata(id, path string) error {
	return c.deleteMetadata("corpus", id, path)
}

// CorpusMetadataKeys lists the child keys under path; "" lists the root.
func (c *Client) CorpusMetadataKeys(id, path string) ([]string, error) {
	return c.metadataKeys("corpus", id, path)
}

func (c *Client) LayerMetadata(id, path string) (json.RawMessage, error) {
	return c.metadata("layer", id, path)
}

func (c *Client) SetLayerMetadata(id string, value interface{}) error {
	return c.setMetadata("layer", id, value)
}

func (c *Client) DeleteLayerMetadata(id, path string) error {
	return c.deleteMetadata("layer", id, path)
}

func (c *Client) LayerMetadataKeys(id, path string) ([]string, error) {
	return c.metadataKeys("layer", id, path)
}

func (c *Client) MediumMetadata(id, path string) (json.RawMessage, error) {
	return c.metadata("medium", id, path)
}

func (c *Client) SetMediumMetadata(id string, value interface{}) error {
	return c.setMetadata("medium", id, value)
}

func (c *Client) DeleteMediumMetadata(id, path string) error {
	return c.deleteMetadata("medium", id, path)
}

func (c *Client) MediumMetadataKeys(id, path string) ([]string, error) {
	return c.metadataKeys("medium", id, path)
}

func (c *Client) metadata(kind, id, path string) (json.RawMessage, error) {
	var value json.RawMessage
	err := c.get(kind+"/"+id+"/metadata/"+path, nil, &value)
	return value, err
}

func (c *Client) setMetadata(kind, id string, value interface{}) error {
	return c.post(kind+"/"+id+"/metadata", value, nil)
}

func (c *Client) deleteMetadata(kind, id, path string) error {
	return c.del(kind+"/"+id+"/metadata/"+path, nil)
}

// The trailing dot is the server's convention for "list child keys".
func (c *Client) metadataKeys(kind, id, path string) ([]string, error) {
	route := kind + "/" + id + "/metadata/"
	if path != "" {
		route += path + "."
	}
	var keys []string
	err := c.get(route, nil, &keys)
	return keys, err
}

// DecodeMetadata maps a decoded metadata value (or any loosely-typed JSON
// value) onto the caller's struct.
func DecodeMetadata(raw json.RawMessage, v interface{}) error {
	var tree interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return err
	}
	return api.DecodeLoose(tree, v)
}
