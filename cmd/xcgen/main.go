// Command xcgen generates typed accessors from an Xcode string catalog and
// reports the catalog keys that the sources never reference.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
