// Inspect the shape of a B+ tree built from a list of keys.
// Usage: go run ./cmd/inspect [-order N] [-delete k1,k2] key...
// Example: echo "A B C D E F G H" | go run ./cmd/inspect -delete A,B
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	bplus "ShowroomDB/bplustree"
	"ShowroomDB/cli"
)

func main() {
	order := flag.Int("order", bplus.DefaultOrder, "tree order (max children per internal node)")
	deletes := flag.String("delete", "", "comma-separated keys to delete after inserting")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-order N] [-delete k1,k2] [key...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Keys are read from stdin when none are given.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	tree, err := bplus.NewBPlusTree[struct{}](*order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	keys := flag.Args()
	if len(keys) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			keys = append(keys, scanner.Text())
		}
	}
	for _, k := range keys {
		tree.Insert([]byte(k), struct{}{})
	}
	cli.Dump(os.Stdout, tree)

	if *deletes != "" {
		for _, k := range strings.Split(*deletes, ",") {
			if !tree.Delete([]byte(k)) {
				fmt.Fprintf(os.Stderr, "delete %s: not found\n", k)
			}
		}
		fmt.Printf("\nafter deleting %s:\n", *deletes)
		cli.Dump(os.Stdout, tree)
	}

	cli.Stats(os.Stdout, tree)
	fmt.Printf("in order: %s\n", bytes.Join(tree.Keys(), []byte(" ")))
	if err := tree.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
