// File: bfsorder.go
// Role: BFS traversal order over the dual skeleton, reusing the teacher's
// own bfs package rather than hand-rolling a second BFS implementation.

package ratcatcher

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/carvewidth/bfs"
	"github.com/katalvlaran/carvewidth/core"
)

// bfsDualOrder returns dual-vertex ids in BFS order starting from dual
// vertex 0, by delegating to bfs.BFS over the unweighted skeleton and
// parsing its decimal vertex names back into ids.
func bfsDualOrder(skeleton *core.Graph) ([]int, error) {
	res, err := bfs.BFS(skeleton, "0")
	if err != nil {
		return nil, fmt.Errorf("ratcatcher: bfsDualOrder: %w", err)
	}
	order := make([]int, len(res.Order))
	for i, name := range res.Order {
		id, err := strconv.Atoi(name)
		if err != nil {
			return nil, fmt.Errorf("ratcatcher: bfsDualOrder: %w", err)
		}
		order[i] = id
	}

	return order, nil
}
