package structures_test

import (
	"slices"
	"testing"

	"github.com/zefrenchwan/nrm-simulator/structures"
)

func TestGraphAdd(t *testing.T) {
	graph := structures.NewDVGraph[string, int]()
	graph.Link("a", "b", 10)
	if graph.AddNode("a") {
		t.Log("should return false because node exists")
		t.Fail()
	}

	if !graph.AddNode("c") {
		t.Log("should return true because node did not exist")
		t.Fail()
	}

	nodes := graph.Nodes()
	slices.Sort(nodes)

	if slices.Compare(nodes, []string{"a", "b", "c"}) != 0 {
		t.Log("nodes missing")
		t.Fail()
	}
}

func TestGraphTolerateCycles(t *testing.T) {
	graph := structures.NewDVGraph[string, int]()
	graph.Link("a", "b", 10)
	graph.Link("b", "a", 10)

	if values, found := graph.Neighbors("a"); !found {
		t.Log("expected node a")
		t.Fail()
	} else if values["b"] != 10 {
		t.Log("expected a -> b link")
		t.Fail()
	}

	if values, found := graph.Neighbors("b"); !found {
		t.Log("expected node b")
		t.Fail()
	} else if values["a"] != 10 {
		t.Log("expected b -> a link, graph should tolerate the cycle")
		t.Fail()
	}
}

func TestGraphWalk(t *testing.T) {
	graph := structures.NewDVGraph[string, int]()
	graph.Link("a", "b", 1)
	graph.Link("b", "c", 1)
	graph.Link("c", "a", 1)

	var visited []string
	graph.Walk("a", func(source string) {
		visited = append(visited, source)
	})

	slices.Sort(visited)
	if slices.Compare(visited, []string{"a", "b", "c"}) != 0 {
		t.Log("expected to visit a, b and c exactly once each")
		t.Fail()
	}
}
