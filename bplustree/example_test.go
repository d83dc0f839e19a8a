package bplus_test

import (
	"fmt"

	bplus "ShowroomDB/bplustree"
)

func Example() {
	tree := bplus.MustNew[string](bplus.DefaultOrder)

	students := []struct {
		id    string
		name  string
		grade string
	}{
		{"S003", "Charlie Brown", "A"},
		{"S001", "Alice Johnson", "A"},
		{"S005", "Eve Wilson", "B"},
		{"S002", "Bob Smith", "B"},
		{"S004", "Diana Prince", "C"},
	}
	for _, s := range students {
		tree.Insert([]byte(s.id), s.name+"|"+s.grade)
	}

	for _, id := range []string{"S001", "S999"} {
		if rec, ok := tree.Search([]byte(id)); ok {
			fmt.Printf("Found %s: %s\n", id, rec)
		} else {
			fmt.Printf("Student %s not found\n", id)
		}
	}

	for id, rec := range tree.All() {
		fmt.Printf("%s -> %s\n", id, rec)
	}
	fmt.Println("height:", tree.Height())

	// Output:
	// Found S001: Alice Johnson|A
	// Student S999 not found
	// S001 -> Alice Johnson|A
	// S002 -> Bob Smith|B
	// S003 -> Charlie Brown|A
	// S004 -> Diana Prince|C
	// S005 -> Eve Wilson|B
	// height: 2
}
