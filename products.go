package scsdk

import "context"

// ProductsService groups the product-related API actions.
type ProductsService struct {
	client *Client
}

// Name implements Resource.
func (s *ProductsService) Name() string { return "products" }

// List retrieves products. Supports the query options from, to, count and
// skip plus provider filters such as Search or Filter.
func (s *ProductsService) List(ctx context.Context, options Options) ([]byte, error) {
	return s.client.Get(ctx, "GetProducts", options)
}

// Create submits a new product as an XML payload.
func (s *ProductsService) Create(ctx context.Context, productXML string) ([]byte, error) {
	return s.client.Post(ctx, "CreateProduct", productXML, nil)
}

// Update modifies an existing product via an XML payload.
func (s *ProductsService) Update(ctx context.Context, productXML string) ([]byte, error) {
	return s.client.Post(ctx, "UpdateProduct", productXML, nil)
}

// Brands retrieves the brand list.
func (s *ProductsService) Brands(ctx context.Context, options Options) ([]byte, error) {
	return s.client.Get(ctx, "GetBrands", options)
}

// CategoryTree retrieves the full category tree.
func (s *ProductsService) CategoryTree(ctx context.Context) ([]byte, error) {
	return s.client.Get(ctx, "GetCategoryTree", nil)
}
