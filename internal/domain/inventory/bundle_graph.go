package inventory

import "github.com/jhoicas/inventory-alerts-api/internal/domain/entity"

// WouldCreateCycle indica si agregar la arista parent -> child cerraría un ciclo en el
// conjunto de aristas de kits (incluye el caso parent == child).
func WouldCreateCycle(edges []*entity.ProductBundle, parentID, childID int64) bool {
	if parentID == childID {
		return true
	}
	adj := make(map[int64][]int64, len(edges))
	for _, e := range edges {
		adj[e.ParentProductID] = append(adj[e.ParentProductID], e.ChildProductID)
	}
	// Hay ciclo si desde el hijo ya se llega al padre.
	seen := map[int64]bool{childID: true}
	queue := []int64{childID}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, next := range adj[n] {
			if next == parentID {
				return true
			}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}
