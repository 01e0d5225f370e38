/*
Command bptree builds a B-tree or B+tree from keys and prints it.

Keys are taken from the command line, from a text file or from an HTML file.
After loading, keys given with --delete are removed again. The resulting tree
is printed as an indented dump, as Graphviz DOT, as statistics, or as a list
of keys in columns.

	bptree -m 4 -v classic -n 1 2 3 4 5 6 7 8 9 10 11 12 13 -d 8,7,6,5,4,2
	bptree -m 8 -f README.txt -o keys
	bptree -m 3 -o dot a b c d e f | dot -Tsvg > tree.svg

Configuration is read from a NestedText file `bptree.nt` (or `config.nt`) at
the usual configuration locations, e.g.

	bptree:
	  order: 6
	  variant: linked
	tracelevel:
	  bptree: Info

Command line flags take precedence.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

func main() {
	Execute()
}
