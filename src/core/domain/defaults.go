package domain

// DefaultChoicesQuery is the statement served by the choices endpoint and CLI
// when no other query is configured.
const DefaultChoicesQuery = "SELECT sku, description FROM products"
