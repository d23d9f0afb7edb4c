package mailchimp

import (
	"context"
	"encoding/json"
)

func storePath(storeID string, rest ...string) string {
	return path(append([]string{"ecommerce", "stores", storeID}, rest...)...)
}

// ListStores retrieves connected stores, newest first
func (m *Mailchimp) ListStores(ctx context.Context) (*StoresResponse, error) {
	var resp StoresResponse
	if err := m.list(ctx, "stores", "/ecommerce/stores", "created_at", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetStore retrieves a single store
func (m *Mailchimp) GetStore(ctx context.Context, storeID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "store", storePath(storeID))
}

// ListProducts retrieves the products of a store
func (m *Mailchimp) ListProducts(ctx context.Context, storeID string) (*ProductsResponse, error) {
	var resp ProductsResponse
	if err := m.list(ctx, "products", storePath(storeID, "products"), "created_at", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProduct retrieves a single product
func (m *Mailchimp) GetProduct(ctx context.Context, storeID, productID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "product", storePath(storeID, "products", productID))
}

// ListProductVariants retrieves the variants of a product
func (m *Mailchimp) ListProductVariants(ctx context.Context, storeID, productID string) (json.RawMessage, error) {
	return m.listRaw(ctx, "product variants", storePath(storeID, "products", productID, "variants"), "created_at", SortDesc)
}

// GetProductVariant retrieves a single product variant
func (m *Mailchimp) GetProductVariant(ctx context.Context, storeID, productID, variantID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "product variant", storePath(storeID, "products", productID, "variants", variantID))
}

// ListOrders retrieves the orders of a store, latest processed first
func (m *Mailchimp) ListOrders(ctx context.Context, storeID string) (*OrdersResponse, error) {
	var resp OrdersResponse
	if err := m.list(ctx, "orders", storePath(storeID, "orders"), "processed_at_foreign", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetOrder retrieves a single order
func (m *Mailchimp) GetOrder(ctx context.Context, storeID, orderID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "order", storePath(storeID, "orders", orderID))
}

// GetOrderLines retrieves the line items of an order
func (m *Mailchimp) GetOrderLines(ctx context.Context, storeID, orderID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "order lines", storePath(storeID, "orders", orderID, "lines"))
}

// ListCustomers retrieves the customers of a store
func (m *Mailchimp) ListCustomers(ctx context.Context, storeID string) (json.RawMessage, error) {
	return m.listRaw(ctx, "customers", storePath(storeID, "customers"), "created_at", SortDesc)
}

// GetCustomer retrieves a single customer
func (m *Mailchimp) GetCustomer(ctx context.Context, storeID, customerID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "customer", storePath(storeID, "customers", customerID))
}

// ListCarts retrieves the carts of a store
func (m *Mailchimp) ListCarts(ctx context.Context, storeID string) (json.RawMessage, error) {
	return m.listRaw(ctx, "carts", storePath(storeID, "carts"), "created_at", SortDesc)
}

// GetCart retrieves a single cart
func (m *Mailchimp) GetCart(ctx context.Context, storeID, cartID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "cart", storePath(storeID, "carts", cartID))
}

// GetCartLines retrieves the line items of a cart
func (m *Mailchimp) GetCartLines(ctx context.Context, storeID, cartID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "cart lines", storePath(storeID, "carts", cartID, "lines"))
}

// ListPromoRules retrieves the promo rules of a store
func (m *Mailchimp) ListPromoRules(ctx context.Context, storeID string) (json.RawMessage, error) {
	return m.listRaw(ctx, "promo rules", storePath(storeID, "promo-rules"), "created_at", SortDesc)
}

// GetPromoRule retrieves a single promo rule
func (m *Mailchimp) GetPromoRule(ctx context.Context, storeID, promoRuleID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "promo rule", storePath(storeID, "promo-rules", promoRuleID))
}

// ListPromoCodes retrieves the promo codes of a promo rule
func (m *Mailchimp) ListPromoCodes(ctx context.Context, storeID, promoRuleID string) (json.RawMessage, error) {
	return m.listRaw(ctx, "promo codes", storePath(storeID, "promo-rules", promoRuleID, "promo-codes"), "created_at", SortDesc)
}

// GetPromoCode retrieves a single promo code
func (m *Mailchimp) GetPromoCode(ctx context.Context, storeID, promoRuleID, promoCodeID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "promo code", storePath(storeID, "promo-rules", promoRuleID, "promo-codes", promoCodeID))
}
