package scsdk

// Resource is a named group of related API actions exposed through the
// client.
type Resource interface {
	Name() string
}

// ResourceFactory builds a resource bound to a client.
type ResourceFactory func(*Client) Resource

// Registry is an explicit registration table mapping resource names to
// factories. It is built statically at startup and injected into the
// client constructor; there is no runtime discovery.
type Registry map[string]ResourceFactory

// DefaultRegistry returns the standard resource table.
func DefaultRegistry() Registry {
	return Registry{
		"orders":   func(c *Client) Resource { return &OrdersService{client: c} },
		"products": func(c *Client) Resource { return &ProductsService{client: c} },
	}
}

// Resource returns the named resource, or nil if the registry does not
// contain it.
func (c *Client) Resource(name string) Resource {
	return c.resources[name]
}

// Orders returns the orders resource.
func (c *Client) Orders() *OrdersService {
	r, _ := c.Resource("orders").(*OrdersService)
	return r
}

// Products returns the products resource.
func (c *Client) Products() *ProductsService {
	r, _ := c.Resource("products").(*ProductsService)
	return r
}
