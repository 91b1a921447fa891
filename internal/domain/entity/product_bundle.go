package entity

// ProductBundle arista del kit: el producto padre requiere QuantityRequired unidades del hijo.
// El conjunto de aristas de una empresa debe formar un DAG.
type ProductBundle struct {
	ID               int64
	ParentProductID  int64
	ChildProductID   int64
	QuantityRequired int
}
