package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aglyzov/go-spatial/quadtree"
)

func main() {
	logger := zap.NewExample()
	defer logger.Sync()

	q, err := quadtree.New[quadtree.Point](4, quadtree.WithLogger(logger))
	if err != nil {
		logger.Fatal("new quadtree", zap.Error(err))
	}

	for _, p := range []quadtree.Point{{X: 1, Y: 1}, {X: 5, Y: 5}, {X: 10, Y: 10}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 8, Y: 8}} {
		q.Add(p)
	}

	for _, quad := range q.Quads() {
		fmt.Printf("quad (%2d,%2d) side %2d -> %v\n", quad.X, quad.Y, quad.Side, quad.Item)
	}

	println("------")

	fmt.Printf("R(0,0 - 6,6) -> %v\n", q.RectSearch(0, 0, 6, 6, nil))

	if nn, ok := q.NearestNeighbor(quadtree.Point{X: 0, Y: 0}); ok {
		fmt.Printf("NN(0,0)      -> %v\n", nn)
	}

	println("------")

	q.Remove(quadtree.Point{X: 10, Y: 10})
	q.Remove(quadtree.Point{X: 8, Y: 8})

	for _, quad := range q.Quads() {
		fmt.Printf("quad (%2d,%2d) side %2d -> %v\n", quad.X, quad.Y, quad.Side, quad.Item)
	}
}
