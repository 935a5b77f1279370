// Command rx converts rx descriptions into regular expressions.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
