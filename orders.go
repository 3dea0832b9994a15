package scsdk

import "context"

// OrdersService groups the order-related API actions.
type OrdersService struct {
	client *Client
}

// Name implements Resource.
func (s *OrdersService) Name() string { return "orders" }

// List retrieves orders. Supports the query options from, to, count and
// skip plus provider filters such as Status or CreatedAfter.
func (s *OrdersService) List(ctx context.Context, options Options) ([]byte, error) {
	return s.client.Get(ctx, "GetOrders", options)
}

// Get retrieves a single order by id.
func (s *OrdersService) Get(ctx context.Context, orderID string) ([]byte, error) {
	return s.client.Get(ctx, "GetOrder", Options{"OrderId": orderID})
}

// Items retrieves the line items of an order.
func (s *OrdersService) Items(ctx context.Context, orderID string) ([]byte, error) {
	return s.client.Get(ctx, "GetOrderItems", Options{"OrderId": orderID})
}

// SetStatusToPackedByMarketplace marks order items as packed. itemsXML is
// the provider's OrderItemIds payload.
func (s *OrdersService) SetStatusToPackedByMarketplace(ctx context.Context, itemsXML string, options Options) ([]byte, error) {
	return s.client.Post(ctx, "SetStatusToPackedByMarketplace", itemsXML, options)
}
