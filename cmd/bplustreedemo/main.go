// Command bplustreedemo is a tiny, non-interactive walkthrough of the
// bplustree package. It is a convenience entry point, not part of the
// library's contract: the core is a library, and this binary is the kind
// of command-line harness spec.md places outside that core's scope.
package main

import (
	"fmt"

	"github.com/l00pss/bplustree/bplustree"
)

func main() {
	tree, err := bplustree.New[int, string](4)
	if err != nil {
		panic(err)
	}

	fmt.Println("=== B+ Tree Demo ===")
	fmt.Println("\nInserting values...")
	for _, kv := range []struct {
		key   int
		value string
	}{
		{10, "Value-10"}, {20, "Value-20"}, {5, "Value-5"},
		{15, "Value-15"}, {25, "Value-25"}, {1, "Value-1"},
		{30, "Value-30"}, {12, "Value-12"}, {18, "Value-18"},
	} {
		tree.Insert(kv.key, kv.value)
	}
	fmt.Printf("Total entries: %d\n", tree.Size())

	fmt.Println("\n--- Get ---")
	if value, found := tree.Get(15); found {
		fmt.Printf("Key 15: %s\n", value)
	}
	if _, found := tree.Get(99); !found {
		fmt.Println("Key 99: not found")
	}

	fmt.Println("\n--- Range Query [10, 25) ---")
	it := tree.Range(10, 25)
	for {
		entry, ok, err := it.Next()
		if err != nil {
			panic(err)
		}
		if !ok {
			break
		}
		fmt.Printf("  %d -> %s\n", entry.Key, entry.Value)
	}

	fmt.Println("\n--- Update ---")
	tree.Insert(10, "Updated-10")
	if value, found := tree.Get(10); found {
		fmt.Printf("Key 10 updated: %s\n", value)
	}

	fmt.Println("\n--- Delete ---")
	if _, err := tree.Delete(5); err != nil {
		fmt.Printf("delete 5: %v\n", err)
	}
	fmt.Printf("After deleting key 5, total entries: %d\n", tree.Size())

	fmt.Println("\n--- All Entries (Sorted) ---")
	all := tree.Iterate()
	for {
		entry, ok, err := all.Next()
		if err != nil {
			panic(err)
		}
		if !ok {
			break
		}
		fmt.Printf("  %d -> %s\n", entry.Key, entry.Value)
	}

	fmt.Println("\n--- Structure ---")
	fmt.Println(tree.DebugDump())

	if err := tree.Validate(); err != nil {
		fmt.Printf("validation failed: %v\n", err)
	} else {
		fmt.Println("tree is internally consistent")
	}
}
